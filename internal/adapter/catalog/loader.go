package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"zavasearch/internal/domain"
)

// Expand resolves doublestar glob patterns relative to root into a sorted,
// de-duplicated list of file paths.
func Expand(root string, patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(filepath.Join(root, pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// Load reads product records from the given JSON files. Each file holds a
// JSON array of products.
func Load(paths []string) ([]domain.Product, error) {
	var products []domain.Product

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read product data %s: %w", path, err)
		}

		var records []domain.Product
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to parse product data %s: %w", path, err)
		}

		for _, p := range records {
			if p.SKU == "" {
				return nil, fmt.Errorf("product without sku in %s", path)
			}
		}
		products = append(products, records...)
	}

	return products, nil
}
