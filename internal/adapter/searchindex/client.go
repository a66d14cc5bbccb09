package searchindex

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"zavasearch/internal/domain"
	"zavasearch/internal/port"
)

// Client is a minimal REST client to the search service. One client is bound
// to one index. Errors are returned as-is; callers decide whether to abort.
type Client struct {
	endpoint   string
	apiKey     string
	indexName  string
	apiVersion string
	client     *http.Client
}

// Config configures the search service client.
type Config struct {
	Endpoint   string // service endpoint, e.g. https://myservice.search.windows.net
	APIKey     string // admin key for index management and upload, query key suffices for search
	IndexName  string
	APIVersion string
	Timeout    time.Duration
}

// NewClient creates a search service client from the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("search endpoint not set")
	}
	if cfg.APIKey == "" {
		return nil, errors.New("search API key not set")
	}
	if cfg.IndexName == "" {
		return nil, errors.New("search index name not set")
	}
	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = "2024-07-01"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		endpoint:   strings.TrimSuffix(cfg.Endpoint, "/"),
		apiKey:     cfg.APIKey,
		indexName:  cfg.IndexName,
		apiVersion: apiVersion,
		client:     &http.Client{Timeout: timeout},
	}, nil
}

// IndexName returns the index this client is bound to.
func (c *Client) IndexName() string {
	return c.indexName
}

// CreateOrUpdateIndex creates or updates the product index definition.
func (c *Client) CreateOrUpdateIndex(dimensions int) error {
	if dimensions <= 0 {
		return errors.New("invalid embedding dimension")
	}
	schema := ProductIndexSchema(c.indexName, dimensions)
	url := fmt.Sprintf("%s/indexes/%s?api-version=%s", c.endpoint, c.indexName, c.apiVersion)
	return c.doJSON(http.MethodPut, url, schema, nil)
}

// uploadDoc wraps a product with the indexing action for the batch API.
type uploadDoc struct {
	Action string `json:"@search.action"`
	domain.Product
}

type uploadResponse struct {
	Value []uploadResult `json:"value"`
}

type uploadResult struct {
	Key          string `json:"key"`
	Status       bool   `json:"status"`
	ErrorMessage string `json:"errorMessage"`
	StatusCode   int    `json:"statusCode"`
}

// UploadProducts uploads the given products in a single indexing request.
// The service rejects batches above its documented limit, so callers batch.
func (c *Client) UploadProducts(products []domain.Product) error {
	if len(products) == 0 {
		return nil
	}

	docs := make([]uploadDoc, len(products))
	for i, p := range products {
		docs[i] = uploadDoc{Action: "upload", Product: p}
	}

	url := fmt.Sprintf("%s/indexes/%s/docs/index?api-version=%s", c.endpoint, c.indexName, c.apiVersion)

	var resp uploadResponse
	if err := c.doJSON(http.MethodPost, url, map[string]any{"value": docs}, &resp); err != nil {
		return err
	}

	var failed []string
	for _, r := range resp.Value {
		if !r.Status {
			failed = append(failed, fmt.Sprintf("%s (%d: %s)", r.Key, r.StatusCode, r.ErrorMessage))
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("upload rejected %d of %d documents: %s", len(failed), len(products), strings.Join(failed, "; "))
	}
	return nil
}

// searchRequest is the query body for the documents search API.
type searchRequest struct {
	Search                string        `json:"search,omitempty"`
	Top                   int           `json:"top,omitempty"`
	QueryType             string        `json:"queryType,omitempty"`
	SemanticConfiguration string        `json:"semanticConfiguration,omitempty"`
	VectorQueries         []vectorQuery `json:"vectorQueries,omitempty"`
}

type vectorQuery struct {
	Kind   string    `json:"kind"`
	Vector []float32 `json:"vector"`
	K      int       `json:"k"`
	Fields string    `json:"fields"`
}

type searchResponse struct {
	Value []domain.SearchHit `json:"value"`
}

// KeywordSearch runs a full-text query against the index.
func (c *Client) KeywordSearch(query string, opts port.SearchOptions) ([]domain.SearchHit, error) {
	req := searchRequest{
		Search: query,
		Top:    opts.Top,
	}
	if opts.Semantic {
		req.QueryType = "semantic"
		req.SemanticConfiguration = SemanticConfigName
	}
	return c.search(req)
}

// VectorSearch runs a nearest-neighbor query over the embedding field.
func (c *Client) VectorSearch(vector []float32, opts port.SearchOptions) ([]domain.SearchHit, error) {
	if len(vector) == 0 {
		return nil, errors.New("empty query vector")
	}
	k := opts.KNN
	if k <= 0 {
		k = 50
	}
	req := searchRequest{
		Top: opts.Top,
		VectorQueries: []vectorQuery{
			{
				Kind:   "vector",
				Vector: vector,
				K:      k,
				Fields: "embedding",
			},
		},
	}
	return c.search(req)
}

func (c *Client) search(req searchRequest) ([]domain.SearchHit, error) {
	url := fmt.Sprintf("%s/indexes/%s/docs/search?api-version=%s", c.endpoint, c.indexName, c.apiVersion)
	var resp searchResponse
	if err := c.doJSON(http.MethodPost, url, req, &resp); err != nil {
		return nil, err
	}
	return resp.Value, nil
}

// doJSON sends body as JSON and optionally decodes the response into out.
func (c *Client) doJSON(method, url string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest(method, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		msg := string(respBody)
		if len(msg) > 300 {
			msg = msg[:300]
		}
		return fmt.Errorf("search service returned status %d for %s %s: %s", resp.StatusCode, method, url, msg)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}
	return nil
}
