package usecase

import (
	"fmt"

	"zavasearch/internal/domain"
	"zavasearch/internal/port"
)

// ProgressFunc reports pipeline progress: done items out of total.
type ProgressFunc func(done, total int)

// UploadUseCase runs the provision / embed / upload pipeline. Calls are
// sequential and the first error aborts the run.
type UploadUseCase struct {
	admin       port.IndexAdmin
	uploader    port.DocumentUploader
	embedder    port.Embedder
	cache       port.VectorCache // optional
	embedBatch  int
	uploadBatch int
}

// UploadResult summarizes a completed pipeline run.
type UploadResult struct {
	Products  int // products processed
	Embedded  int // embeddings requested from the model
	CacheHits int // embeddings served from the local cache
	Batches   int // upload requests issued
}

// NewUploadUseCase creates the pipeline. cache may be nil.
func NewUploadUseCase(admin port.IndexAdmin, uploader port.DocumentUploader, embedder port.Embedder, cache port.VectorCache, embedBatch, uploadBatch int) *UploadUseCase {
	if embedBatch <= 0 {
		embedBatch = 100
	}
	if uploadBatch <= 0 {
		uploadBatch = 1000
	}
	return &UploadUseCase{
		admin:       admin,
		uploader:    uploader,
		embedder:    embedder,
		cache:       cache,
		embedBatch:  embedBatch,
		uploadBatch: uploadBatch,
	}
}

// ProvisionIndex creates or updates the index with the embedder's dimension.
func (u *UploadUseCase) ProvisionIndex() error {
	return u.admin.CreateOrUpdateIndex(u.embedder.Dimension())
}

// EmbedProducts fills in the Embedding field of every product, consulting the
// cache first when one is configured. Returns the number of embeddings
// generated by the model and the number of cache hits.
func (u *UploadUseCase) EmbedProducts(products []domain.Product, progress ProgressFunc) (embedded, cacheHits int, err error) {
	total := len(products)
	done := 0

	// Indices of products that still need a model call.
	var pending []int
	model := u.embedder.ModelName()

	for i := range products {
		text := products[i].EmbeddingText()
		if u.cache != nil {
			vec, ok, err := u.cache.Get(model, text)
			if err != nil {
				return embedded, cacheHits, fmt.Errorf("cache lookup failed: %w", err)
			}
			if ok {
				products[i].Embedding = vec
				cacheHits++
				done++
				if progress != nil {
					progress(done, total)
				}
				continue
			}
		}
		pending = append(pending, i)
	}

	for start := 0; start < len(pending); start += u.embedBatch {
		end := start + u.embedBatch
		if end > len(pending) {
			end = len(pending)
		}
		batch := pending[start:end]

		texts := make([]string, len(batch))
		for j, idx := range batch {
			texts[j] = products[idx].EmbeddingText()
		}

		vectors, err := u.embedder.Embed(texts)
		if err != nil {
			return embedded, cacheHits, fmt.Errorf("embedding batch failed: %w", err)
		}
		if len(vectors) != len(batch) {
			return embedded, cacheHits, fmt.Errorf("embedder returned %d vectors for %d texts", len(vectors), len(batch))
		}

		for j, idx := range batch {
			products[idx].Embedding = vectors[j]
			if u.cache != nil {
				if err := u.cache.Put(model, texts[j], vectors[j]); err != nil {
					return embedded, cacheHits, fmt.Errorf("cache store failed: %w", err)
				}
			}
		}

		embedded += len(batch)
		done += len(batch)
		if progress != nil {
			progress(done, total)
		}
	}

	return embedded, cacheHits, nil
}

// UploadProducts uploads products in fixed-size batches. Returns the number
// of upload requests issued.
func (u *UploadUseCase) UploadProducts(products []domain.Product, progress ProgressFunc) (int, error) {
	total := len(products)
	batches := 0

	for start := 0; start < total; start += u.uploadBatch {
		end := start + u.uploadBatch
		if end > total {
			end = total
		}

		if err := u.uploader.UploadProducts(products[start:end]); err != nil {
			return batches, fmt.Errorf("upload batch %d failed: %w", batches+1, err)
		}
		batches++
		if progress != nil {
			progress(end, total)
		}
	}

	return batches, nil
}

// Run embeds and uploads products. Provisioning is a separate step so callers
// can skip it for an existing index.
func (u *UploadUseCase) Run(products []domain.Product, embedProgress, uploadProgress ProgressFunc) (UploadResult, error) {
	result := UploadResult{Products: len(products)}

	embedded, cacheHits, err := u.EmbedProducts(products, embedProgress)
	result.Embedded = embedded
	result.CacheHits = cacheHits
	if err != nil {
		return result, err
	}

	batches, err := u.UploadProducts(products, uploadProgress)
	result.Batches = batches
	if err != nil {
		return result, err
	}

	return result, nil
}
