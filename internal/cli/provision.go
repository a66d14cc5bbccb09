package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"zavasearch/internal/usecase"
)

var provisionCmd = &cobra.Command{
	Use:   "provision",
	Short: "Create or update the search index schema",
	Long: `Create the product index on the search service, or update its definition
in place if it already exists. The vector field dimensionality is taken from
the configured embedding model.

Examples:
  zavasearch provision
  zavasearch provision --config prod.yaml`,
	RunE: runProvision,
}

func init() {
	rootCmd.AddCommand(provisionCmd)
}

func runProvision(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	client, err := newSearchClient(cfg)
	if err != nil {
		return err
	}

	embedder, err := newEmbedder(cfg)
	if err != nil {
		return err
	}

	uploadUC := usecase.NewUploadUseCase(client, client, embedder, nil, cfg.Embedding.BatchSize, cfg.Search.BatchSize)

	fmt.Printf("Creating or updating index '%s'...\n", cfg.Search.IndexName)
	if err := uploadUC.ProvisionIndex(); err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	fmt.Printf("Index '%s' created/updated successfully.\n", cfg.Search.IndexName)

	return nil
}
