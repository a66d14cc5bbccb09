package port

import "zavasearch/internal/domain"

// IndexAdmin provisions the product index on the search service.
type IndexAdmin interface {
	// CreateOrUpdateIndex creates the index if it does not exist, or updates
	// its definition in place. The vector field is declared with the given
	// dimensionality, which must match the embedding model in use.
	CreateOrUpdateIndex(dimensions int) error
}

// DocumentUploader uploads product documents to the index.
type DocumentUploader interface {
	// UploadProducts uploads the given products in a single request.
	// Callers are responsible for batching to the service limit.
	UploadProducts(products []domain.Product) error
}

// SearchOptions controls a single query against the index.
type SearchOptions struct {
	Top      int  // number of results to return
	KNN      int  // nearest-neighbor candidate count (vector search only)
	Semantic bool // enable semantic ranking (keyword search only)
}

// Searcher runs queries against the index.
type Searcher interface {
	// KeywordSearch runs a full-text query.
	KeywordSearch(query string, opts SearchOptions) ([]domain.SearchHit, error)

	// VectorSearch runs a nearest-neighbor query with a pre-computed vector.
	VectorSearch(vector []float32, opts SearchOptions) ([]domain.SearchHit, error)
}
