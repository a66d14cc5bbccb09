package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the zavasearch tool.
type Config struct {
	Search    SearchConfig    `yaml:"search"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Data      DataConfig      `yaml:"data"`
	Cache     CacheConfig     `yaml:"cache"`
	Query     QueryConfig     `yaml:"query"`
}

// SearchConfig holds connection details for the search service.
type SearchConfig struct {
	Endpoint    string `yaml:"endpoint"`     // e.g. https://myservice.search.windows.net
	EndpointEnv string `yaml:"endpoint_env"` // env var consulted when endpoint is empty
	APIKeyEnv   string `yaml:"api_key_env"`  // env var holding the admin key
	IndexName   string `yaml:"index_name"`
	APIVersion  string `yaml:"api_version"`
	BatchSize   int    `yaml:"batch_size"` // documents per upload request
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// EmbeddingConfig holds embedding configuration.
type EmbeddingConfig struct {
	Provider    string `yaml:"provider"`     // "openai", "azure", "mock"
	Endpoint    string `yaml:"endpoint"`     // base URL ("azure": resource endpoint)
	EndpointEnv string `yaml:"endpoint_env"` // env var consulted when endpoint is empty
	Deployment  string `yaml:"deployment"`   // Azure deployment name
	APIKeyEnv   string `yaml:"api_key_env"`
	APIVersion  string `yaml:"api_version"` // Azure only
	Model       string `yaml:"model"`       // e.g. "text-embedding-3-large"
	Dimension   int    `yaml:"dimension"`   // 0 = derive from model
	BatchSize   int    `yaml:"batch_size"`  // texts per embedding request
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// DataConfig selects the product data files to load.
type DataConfig struct {
	Includes []string `yaml:"includes"` // doublestar glob patterns
}

// CacheConfig holds the optional local embedding cache settings.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// QueryConfig holds query defaults.
type QueryConfig struct {
	Top int `yaml:"top"` // results per query
	KNN int `yaml:"knn"` // nearest-neighbor candidates for vector queries
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			EndpointEnv: "AZURE_SEARCH_SERVICE_ENDPOINT",
			APIKeyEnv:   "AZURE_SEARCH_ADMIN_KEY",
			IndexName:   "zava-products-index",
			APIVersion:  "2024-07-01",
			BatchSize:   1000,
			TimeoutSecs: 60,
		},
		Embedding: EmbeddingConfig{
			Provider:    "azure",
			EndpointEnv: "AZURE_OPENAI_ENDPOINT",
			Deployment:  "text-embedding-3-large",
			APIKeyEnv:   "AZURE_OPENAI_API_KEY",
			APIVersion:  "2024-10-21",
			Model:       "text-embedding-3-large",
			BatchSize:   100,
			TimeoutSecs: 60,
		},
		Data: DataConfig{
			Includes: []string{"zava_product_data/*.json"},
		},
		Cache: CacheConfig{
			Enabled: false,
			Path:    filepath.Join(".zavasearch", "embeddings.db"),
		},
		Query: QueryConfig{
			Top: 5,
			KNN: 50,
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for zavasearch.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "zavasearch.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".zavasearch", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ResolveEndpoint returns the configured search endpoint, falling back to the
// environment variable named by endpoint_env.
func (s SearchConfig) ResolveEndpoint() (string, error) {
	if s.Endpoint != "" {
		return s.Endpoint, nil
	}
	if v := os.Getenv(s.EndpointEnv); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("search endpoint not set (config search.endpoint or env %s)", s.EndpointEnv)
}

// ResolveAPIKey returns the admin key from the environment.
func (s SearchConfig) ResolveAPIKey() (string, error) {
	if v := os.Getenv(s.APIKeyEnv); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("search admin key not found in environment variable: %s", s.APIKeyEnv)
}

// ResolveEndpoint returns the configured embedding endpoint, falling back to
// the environment variable named by endpoint_env. An empty result is valid for
// providers with a fixed base URL.
func (e EmbeddingConfig) ResolveEndpoint() string {
	if e.Endpoint != "" {
		return e.Endpoint
	}
	return os.Getenv(e.EndpointEnv)
}
