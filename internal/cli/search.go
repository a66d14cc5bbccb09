package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"zavasearch/internal/adapter/render"
	"zavasearch/internal/usecase"
)

var (
	searchTop      int
	searchSemantic bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run a keyword query against the index",
	Long: `Run a full-text keyword query against the product index and print the
results as a table. With --semantic the service reranks results using the
semantic configuration and a reranker score column is shown.

Examples:
  zavasearch search "25 foot hose"
  zavasearch search "water plants efficiently without waste" --semantic --top 10`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVar(&searchTop, "top", 0, "number of results (default from config)")
	searchCmd.Flags().BoolVar(&searchSemantic, "semantic", false, "enable semantic ranking")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	query := strings.Join(args, " ")

	client, err := newSearchClient(cfg)
	if err != nil {
		return err
	}

	top := cfg.Query.Top
	if searchTop > 0 {
		top = searchTop
	}

	searchUC := usecase.NewSearchUseCase(client, nil)
	hits, err := searchUC.Keyword(query, top, searchSemantic)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(hits) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	title := fmt.Sprintf("Keyword search results for '%s'", query)
	if searchSemantic {
		title = fmt.Sprintf("Semantic search results for '%s'", query)
	}
	fmt.Println(render.ProductTable(hits, title, searchSemantic))

	return nil
}
