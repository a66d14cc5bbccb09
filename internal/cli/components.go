package cli

import (
	"fmt"
	"time"

	"zavasearch/config"
	"zavasearch/internal/adapter/embedding"
	"zavasearch/internal/adapter/searchindex"
	"zavasearch/internal/port"
)

// newEmbedder builds the embedder selected by the config.
func newEmbedder(cfg *config.Config) (port.Embedder, error) {
	ec := cfg.Embedding
	timeout := time.Duration(ec.TimeoutSecs) * time.Second

	var embedder port.Embedder
	var err error

	switch ec.Provider {
	case "azure":
		embedder, err = embedding.NewAzureOpenAIEmbedder(ec.ResolveEndpoint(), ec.Deployment, ec.APIKeyEnv, ec.APIVersion, ec.Model, ec.Dimension, timeout)
	case "openai":
		if base := ec.ResolveEndpoint(); base != "" {
			embedder, err = embedding.NewOpenAICompatibleEmbedder(ec.APIKeyEnv, ec.Model, base, ec.Dimension, timeout)
		} else {
			embedder, err = embedding.NewOpenAIEmbedder(ec.APIKeyEnv, ec.Model, ec.Dimension, timeout)
		}
	case "mock":
		dimension := ec.Dimension
		if dimension <= 0 {
			dimension = 1536
		}
		embedder = embedding.NewMockEmbedder(dimension)
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", ec.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	if oa, ok := embedder.(*embedding.OpenAIEmbedder); ok && ec.BatchSize > 0 {
		oa.SetBatchSize(ec.BatchSize)
	}

	return embedder, nil
}

// newSearchClient builds the search service client from the config.
func newSearchClient(cfg *config.Config) (*searchindex.Client, error) {
	endpoint, err := cfg.Search.ResolveEndpoint()
	if err != nil {
		return nil, err
	}
	apiKey, err := cfg.Search.ResolveAPIKey()
	if err != nil {
		return nil, err
	}

	client, err := searchindex.NewClient(searchindex.Config{
		Endpoint:   endpoint,
		APIKey:     apiKey,
		IndexName:  cfg.Search.IndexName,
		APIVersion: cfg.Search.APIVersion,
		Timeout:    time.Duration(cfg.Search.TimeoutSecs) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create search client: %w", err)
	}
	return client, nil
}
