package usecase

import (
	"fmt"

	"zavasearch/internal/domain"
	"zavasearch/internal/port"
)

// SearchUseCase issues sample queries against the index.
type SearchUseCase struct {
	searcher port.Searcher
	embedder port.Embedder // required for vector queries only
}

// NewSearchUseCase creates a search use case. embedder may be nil when only
// keyword queries are issued.
func NewSearchUseCase(searcher port.Searcher, embedder port.Embedder) *SearchUseCase {
	return &SearchUseCase{searcher: searcher, embedder: embedder}
}

// Keyword runs a full-text query, optionally with semantic ranking.
func (u *SearchUseCase) Keyword(query string, top int, semantic bool) ([]domain.SearchHit, error) {
	return u.searcher.KeywordSearch(query, port.SearchOptions{
		Top:      top,
		Semantic: semantic,
	})
}

// Vector embeds the query text and runs a nearest-neighbor query.
func (u *SearchUseCase) Vector(query string, top, knn int) ([]domain.SearchHit, error) {
	if u.embedder == nil {
		return nil, fmt.Errorf("vector search requires an embedder")
	}

	vectors, err := u.embedder.Embed([]string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(vectors) != 1 || len(vectors[0]) == 0 {
		return nil, fmt.Errorf("embedder returned no vector for query")
	}

	return u.searcher.VectorSearch(vectors[0], port.SearchOptions{
		Top: top,
		KNN: knn,
	})
}
