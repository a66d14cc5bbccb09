package port

// Embedder generates vector embeddings for text.
type Embedder interface {
	// Embed generates embeddings for the given texts.
	// Returns a slice of vectors, one per input text.
	Embed(texts []string) ([][]float32, error)

	// Dimension returns the embedding vector dimension.
	Dimension() int

	// ModelName returns the name of the embedding model.
	ModelName() string
}

// VectorCache remembers embeddings across runs so unchanged products are not
// re-embedded. Keys are derived from the model name and the embedded text.
type VectorCache interface {
	// Get returns the cached vector for the given model/text pair, if any.
	Get(model, text string) ([]float32, bool, error)

	// Put stores a vector for the given model/text pair.
	Put(model, text string, vector []float32) error

	Close() error
}
