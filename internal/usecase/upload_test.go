package usecase

import (
	"errors"
	"fmt"
	"testing"

	"zavasearch/internal/domain"
)

type fakeAdmin struct {
	dimensions int
	calls      int
	err        error
}

func (f *fakeAdmin) CreateOrUpdateIndex(dimensions int) error {
	f.dimensions = dimensions
	f.calls++
	return f.err
}

type fakeUploader struct {
	batches [][]domain.Product
	err     error
}

func (f *fakeUploader) UploadProducts(products []domain.Product) error {
	if f.err != nil {
		return f.err
	}
	batch := make([]domain.Product, len(products))
	copy(batch, products)
	f.batches = append(f.batches, batch)
	return nil
}

type fakeEmbedder struct {
	dimension int
	calls     int
	texts     []string
}

func (f *fakeEmbedder) Embed(texts []string) ([][]float32, error) {
	f.calls++
	f.texts = append(f.texts, texts...)
	vectors := make([][]float32, len(texts))
	for i := range texts {
		vectors[i] = []float32{float32(len(texts[i]))}
	}
	return vectors, nil
}

func (f *fakeEmbedder) Dimension() int    { return f.dimension }
func (f *fakeEmbedder) ModelName() string { return "fake-model" }

type fakeCache struct {
	entries map[string][]float32
	puts    int
}

func (f *fakeCache) key(model, text string) string { return model + "\x00" + text }

func (f *fakeCache) Get(model, text string) ([]float32, bool, error) {
	v, ok := f.entries[f.key(model, text)]
	return v, ok, nil
}

func (f *fakeCache) Put(model, text string, vector []float32) error {
	if f.entries == nil {
		f.entries = make(map[string][]float32)
	}
	f.entries[f.key(model, text)] = vector
	f.puts++
	return nil
}

func (f *fakeCache) Close() error { return nil }

func makeProducts(n int) []domain.Product {
	products := make([]domain.Product, n)
	for i := range products {
		products[i] = domain.Product{
			SKU:  fmt.Sprintf("SKU-%d", i),
			Name: fmt.Sprintf("Product %d", i),
		}
	}
	return products
}

func TestProvisionIndex_UsesEmbedderDimension(t *testing.T) {
	admin := &fakeAdmin{}
	uc := NewUploadUseCase(admin, &fakeUploader{}, &fakeEmbedder{dimension: 3072}, nil, 0, 0)

	if err := uc.ProvisionIndex(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if admin.dimensions != 3072 {
		t.Errorf("expected dimension 3072 passed to admin, got %d", admin.dimensions)
	}
}

func TestEmbedProducts_FillsEmbeddings(t *testing.T) {
	embedder := &fakeEmbedder{dimension: 1}
	uc := NewUploadUseCase(&fakeAdmin{}, &fakeUploader{}, embedder, nil, 2, 0)

	products := makeProducts(5)
	embedded, cacheHits, err := uc.EmbedProducts(products, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if embedded != 5 {
		t.Errorf("expected 5 embedded, got %d", embedded)
	}
	if cacheHits != 0 {
		t.Errorf("expected no cache hits, got %d", cacheHits)
	}
	if embedder.calls != 3 {
		t.Errorf("expected 3 embedder calls for batch size 2, got %d", embedder.calls)
	}
	for i, p := range products {
		if len(p.Embedding) == 0 {
			t.Errorf("product %d missing embedding", i)
		}
	}
	if embedder.texts[0] != products[0].EmbeddingText() {
		t.Errorf("expected embedding text %q, got %q", products[0].EmbeddingText(), embedder.texts[0])
	}
}

func TestEmbedProducts_CacheHitsSkipEmbedder(t *testing.T) {
	embedder := &fakeEmbedder{dimension: 1}
	cache := &fakeCache{}
	products := makeProducts(3)
	cache.Put("fake-model", products[1].EmbeddingText(), []float32{42})

	uc := NewUploadUseCase(&fakeAdmin{}, &fakeUploader{}, embedder, cache, 10, 0)

	embedded, cacheHits, err := uc.EmbedProducts(products, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cacheHits != 1 {
		t.Errorf("expected 1 cache hit, got %d", cacheHits)
	}
	if embedded != 2 {
		t.Errorf("expected 2 embedded, got %d", embedded)
	}
	if products[1].Embedding[0] != 42 {
		t.Errorf("expected cached vector on product 1, got %v", products[1].Embedding)
	}
	// Misses are written back.
	if cache.puts != 3 {
		t.Errorf("expected 3 cache puts (1 seed + 2 writes), got %d", cache.puts)
	}
	for _, text := range embedder.texts {
		if text == products[1].EmbeddingText() {
			t.Error("cached product should not reach the embedder")
		}
	}
}

func TestEmbedProducts_Progress(t *testing.T) {
	uc := NewUploadUseCase(&fakeAdmin{}, &fakeUploader{}, &fakeEmbedder{}, nil, 2, 0)
	products := makeProducts(5)

	var last, calls int
	_, _, err := uc.EmbedProducts(products, func(done, total int) {
		if total != 5 {
			t.Errorf("expected total 5, got %d", total)
		}
		if done < last {
			t.Errorf("progress went backwards: %d after %d", done, last)
		}
		last = done
		calls++
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if last != 5 {
		t.Errorf("expected final progress 5, got %d", last)
	}
	if calls == 0 {
		t.Error("expected progress callbacks")
	}
}

func TestUploadProducts_Batching(t *testing.T) {
	tests := []struct {
		products    int
		batchSize   int
		wantBatches []int
	}{
		{0, 2, nil},
		{1, 2, []int{1}},
		{2, 2, []int{2}},
		{3, 2, []int{2, 1}},
		{5, 5, []int{5}},
	}

	for _, tt := range tests {
		uploader := &fakeUploader{}
		uc := NewUploadUseCase(&fakeAdmin{}, uploader, &fakeEmbedder{}, nil, 0, tt.batchSize)

		batches, err := uc.UploadProducts(makeProducts(tt.products), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if batches != len(tt.wantBatches) {
			t.Errorf("%d products, batch %d: expected %d batches, got %d", tt.products, tt.batchSize, len(tt.wantBatches), batches)
		}
		for i, want := range tt.wantBatches {
			if len(uploader.batches[i]) != want {
				t.Errorf("%d products, batch %d: batch %d has %d items, expected %d", tt.products, tt.batchSize, i, len(uploader.batches[i]), want)
			}
		}
	}
}

func TestUploadProducts_PropagatesError(t *testing.T) {
	uploader := &fakeUploader{err: errors.New("service down")}
	uc := NewUploadUseCase(&fakeAdmin{}, uploader, &fakeEmbedder{}, nil, 0, 2)

	if _, err := uc.UploadProducts(makeProducts(3), nil); err == nil {
		t.Error("expected upload error to propagate")
	}
}

func TestRun(t *testing.T) {
	uploader := &fakeUploader{}
	uc := NewUploadUseCase(&fakeAdmin{}, uploader, &fakeEmbedder{dimension: 1}, nil, 2, 2)

	result, err := uc.Run(makeProducts(5), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Products != 5 {
		t.Errorf("expected 5 products, got %d", result.Products)
	}
	if result.Embedded != 5 {
		t.Errorf("expected 5 embedded, got %d", result.Embedded)
	}
	if result.Batches != 3 {
		t.Errorf("expected 3 upload batches, got %d", result.Batches)
	}
	// Uploaded documents carry their embeddings.
	for _, batch := range uploader.batches {
		for _, p := range batch {
			if len(p.Embedding) == 0 {
				t.Errorf("uploaded product %s missing embedding", p.SKU)
			}
		}
	}
}
