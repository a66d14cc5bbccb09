package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"zavasearch/internal/adapter/render"
	"zavasearch/internal/usecase"
)

var (
	vectorTop int
	vectorKNN int
)

var vectorSearchCmd = &cobra.Command{
	Use:   "vector-search <query>",
	Short: "Run a vector similarity query against the index",
	Long: `Embed the query text with the configured embedding model and run a
nearest-neighbor query over the embedding field, printing the results as a
table.

Examples:
  zavasearch vector-search "100 foot hose that won't break"
  zavasearch vector-search "quiet leaf blower" --top 10 --knn 100`,
	Args: cobra.MinimumNArgs(1),
	RunE: runVectorSearch,
}

func init() {
	rootCmd.AddCommand(vectorSearchCmd)
	vectorSearchCmd.Flags().IntVar(&vectorTop, "top", 0, "number of results (default from config)")
	vectorSearchCmd.Flags().IntVar(&vectorKNN, "knn", 0, "nearest-neighbor candidates (default from config)")
}

func runVectorSearch(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	query := strings.Join(args, " ")

	client, err := newSearchClient(cfg)
	if err != nil {
		return err
	}

	embedder, err := newEmbedder(cfg)
	if err != nil {
		return err
	}

	top := cfg.Query.Top
	if vectorTop > 0 {
		top = vectorTop
	}
	knn := cfg.Query.KNN
	if vectorKNN > 0 {
		knn = vectorKNN
	}

	searchUC := usecase.NewSearchUseCase(client, embedder)
	hits, err := searchUC.Vector(query, top, knn)
	if err != nil {
		return fmt.Errorf("vector search failed: %w", err)
	}

	if len(hits) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	title := fmt.Sprintf("Vector search results for '%s'", query)
	fmt.Println(render.ProductTable(hits, title, false))

	return nil
}
