package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Search.IndexName != "zava-products-index" {
		t.Errorf("expected IndexName=zava-products-index, got %s", cfg.Search.IndexName)
	}
	if cfg.Search.BatchSize != 1000 {
		t.Errorf("expected Search.BatchSize=1000, got %d", cfg.Search.BatchSize)
	}
	if cfg.Embedding.Model != "text-embedding-3-large" {
		t.Errorf("expected Model=text-embedding-3-large, got %s", cfg.Embedding.Model)
	}
	if cfg.Query.Top != 5 {
		t.Errorf("expected Query.Top=5, got %d", cfg.Query.Top)
	}
	if cfg.Query.KNN != 50 {
		t.Errorf("expected Query.KNN=50, got %d", cfg.Query.KNN)
	}
	if cfg.Cache.Enabled {
		t.Error("expected cache disabled by default")
	}
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	if err != nil {
		t.Errorf("expected no error for non-existent file, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoad_ValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "zavasearch.yaml")

	content := `
search:
  index_name: test-index
  batch_size: 100
embedding:
  provider: mock
  dimension: 8
query:
  top: 3
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Search.IndexName != "test-index" {
		t.Errorf("expected IndexName=test-index, got %s", cfg.Search.IndexName)
	}
	if cfg.Search.BatchSize != 100 {
		t.Errorf("expected BatchSize=100, got %d", cfg.Search.BatchSize)
	}
	if cfg.Embedding.Provider != "mock" {
		t.Errorf("expected Provider=mock, got %s", cfg.Embedding.Provider)
	}
	if cfg.Query.Top != 3 {
		t.Errorf("expected Top=3, got %d", cfg.Query.Top)
	}
	// Untouched sections keep their defaults.
	if cfg.Query.KNN != 50 {
		t.Errorf("expected KNN default 50, got %d", cfg.Query.KNN)
	}
}

func TestLoadFromDir(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "zavasearch.yaml")

	content := `
search:
  index_name: dir-index
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(tmpDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Search.IndexName != "dir-index" {
		t.Errorf("expected IndexName=dir-index, got %s", cfg.Search.IndexName)
	}
}

func TestLoadFromDir_NoConfig(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Search.IndexName != "zava-products-index" {
		t.Errorf("expected default index name, got %s", cfg.Search.IndexName)
	}
}

func TestSearchConfig_ResolveEndpoint(t *testing.T) {
	sc := SearchConfig{Endpoint: "https://explicit.example.net", EndpointEnv: "ZAVASEARCH_TEST_ENDPOINT"}
	got, err := sc.ResolveEndpoint()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://explicit.example.net" {
		t.Errorf("expected explicit endpoint, got %s", got)
	}

	sc.Endpoint = ""
	t.Setenv("ZAVASEARCH_TEST_ENDPOINT", "https://env.example.net")
	got, err = sc.ResolveEndpoint()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "https://env.example.net" {
		t.Errorf("expected env endpoint, got %s", got)
	}

	t.Setenv("ZAVASEARCH_TEST_ENDPOINT", "")
	if _, err := sc.ResolveEndpoint(); err == nil {
		t.Error("expected error when endpoint unset")
	}
}

func TestSave(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.yaml")

	cfg := DefaultConfig()
	cfg.Search.IndexName = "saved-index"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.Search.IndexName != "saved-index" {
		t.Errorf("expected saved index name, got %s", loaded.Search.IndexName)
	}
}
