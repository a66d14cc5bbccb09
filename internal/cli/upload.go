package cli

import (
	"fmt"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"zavasearch/internal/adapter/cache"
	"zavasearch/internal/adapter/catalog"
	"zavasearch/internal/port"
	"zavasearch/internal/usecase"
)

var uploadSkipIndex bool

var uploadCmd = &cobra.Command{
	Use:   "upload [file ...]",
	Short: "Embed product data and upload it to the index",
	Long: `Load product records from JSON files, generate an embedding for each record,
and upload everything to the search index in batches. Without file arguments
the configured data.includes glob patterns are used.

Examples:
  zavasearch upload
  zavasearch upload zava_product_data/product_data_flat.json
  zavasearch upload --skip-index   # index already provisioned`,
	RunE: runUpload,
}

func init() {
	rootCmd.AddCommand(uploadCmd)
	uploadCmd.Flags().BoolVar(&uploadSkipIndex, "skip-index", false, "do not create/update the index schema first")
}

func runUpload(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	client, err := newSearchClient(cfg)
	if err != nil {
		return err
	}

	embedder, err := newEmbedder(cfg)
	if err != nil {
		return err
	}

	var vectorCache port.VectorCache
	if cfg.Cache.Enabled {
		path := cfg.Cache.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(GetRootDir(), path)
		}
		c, err := cache.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open embedding cache: %w", err)
		}
		defer c.Close()
		vectorCache = c
	}

	// Resolve product data files.
	files := args
	if len(files) == 0 {
		files, err = catalog.Expand(GetRootDir(), cfg.Data.Includes)
		if err != nil {
			return err
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no product data files matched %v", cfg.Data.Includes)
	}

	fmt.Printf("Loading product data from %d file(s)...\n", len(files))
	products, err := catalog.Load(files)
	if err != nil {
		return err
	}
	fmt.Printf("Loaded %d products.\n", len(products))

	uploadUC := usecase.NewUploadUseCase(client, client, embedder, vectorCache, cfg.Embedding.BatchSize, cfg.Search.BatchSize)

	if !uploadSkipIndex {
		fmt.Printf("Creating or updating index '%s'...\n", cfg.Search.IndexName)
		if err := uploadUC.ProvisionIndex(); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
		fmt.Printf("Index '%s' created/updated successfully.\n", cfg.Search.IndexName)
	}

	fmt.Printf("\nGenerating embeddings for %d products...\n", len(products))
	embedBar := newProgressBar(len(products), "Embedding")
	embedded, cacheHits, err := uploadUC.EmbedProducts(products, func(done, total int) {
		embedBar.Set(done)
	})
	if err != nil {
		return fmt.Errorf("embedding failed: %w", err)
	}

	fmt.Printf("\nUploading %d products...\n", len(products))
	uploadBar := newProgressBar(len(products), "Uploading")
	batches, err := uploadUC.UploadProducts(products, func(done, total int) {
		uploadBar.Set(done)
	})
	if err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	fmt.Printf("\nUpload complete:\n")
	fmt.Printf("  Index:          %s\n", cfg.Search.IndexName)
	fmt.Printf("  Products:       %d\n", len(products))
	fmt.Printf("  Embeddings:     %d\n", embedded)
	if cacheHits > 0 {
		fmt.Printf("  Cache hits:     %d\n", cacheHits)
	}
	fmt.Printf("  Upload batches: %d\n", batches)

	return nil
}

// newProgressBar creates a progress bar with the shared theme.
func newProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]"+description+"[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}
