package domain

import "strings"

// Product is one catalog record as it appears in the product data files and
// in the search index. Embedding is empty on disk and filled in before upload.
type Product struct {
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	StockLevel  int       `json:"stock_level"`
	Categories  []string  `json:"categories"`
	Embedding   []float32 `json:"embedding,omitempty"`
}

// EmbeddingText returns the text that is embedded for the product: name,
// description and the categories joined with spaces.
func (p Product) EmbeddingText() string {
	return p.Name + " " + p.Description + " " + strings.Join(p.Categories, " ")
}

// SearchHit is a product returned by the index together with its relevance
// scores. RerankerScore is only present when semantic ranking was requested.
type SearchHit struct {
	Product
	Score         float64  `json:"@search.score"`
	RerankerScore *float64 `json:"@search.rerankerScore,omitempty"`
}
