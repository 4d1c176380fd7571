// ABOUTME: HTTP client for the brand-visibility backend
// ABOUTME: Wraps the research, brand CRUD, and artifact status endpoints behind typed methods
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/harperreed/beacon/models"
)

// APIError is a logical failure: the backend answered with a well-formed
// envelope whose success flag is false. Distinct from transport errors so
// callers can surface the server's own message.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "request failed"
	}
	return e.Message
}

// envelope is the backend's uniform response shape.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Client talks to the backend. All methods take a context and issue exactly
// one request; retry policy belongs to the caller.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a backend client from config.
func NewClient(cfg *Config) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// ResearchRequest is the input to the research endpoint.
type ResearchRequest struct {
	BrandName  string `json:"brandName"`
	Country    string `json:"country,omitempty"`
	WebsiteURL string `json:"websiteUrl"`
}

// Research runs the backend's brand research and returns the nested
// competitor/prompt shape consumed by the ingest transform.
func (c *Client) Research(ctx context.Context, req ResearchRequest) (*models.ResearchResult, error) {
	var result models.ResearchResult
	if err := c.do(ctx, http.MethodPost, "/onboarding-v2/research", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateBrandResult is the data half of a successful create response.
type CreateBrandResult struct {
	Brand      models.Brand `json:"brand"`
	ArtifactID string       `json:"artifact_id"`
	Message    string       `json:"message,omitempty"`
}

// CreateBrand submits the assembled onboarding payload.
func (c *Client) CreateBrand(ctx context.Context, payload models.SubmissionPayload) (*CreateBrandResult, error) {
	var result CreateBrandResult
	if err := c.do(ctx, http.MethodPost, "/brands", payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListBrands returns all brands visible to the caller.
func (c *Client) ListBrands(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	if err := c.do(ctx, http.MethodGet, "/brands", nil, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

// GetBrand fetches one brand by id.
func (c *Client) GetBrand(ctx context.Context, id string) (*models.Brand, error) {
	var brand models.Brand
	if err := c.do(ctx, http.MethodGet, "/brands/"+id, nil, &brand); err != nil {
		return nil, err
	}
	return &brand, nil
}

// BrandUpdate carries the editable brand fields; empty fields are omitted.
type BrandUpdate struct {
	Name       string   `json:"name,omitempty"`
	Industry   string   `json:"industry,omitempty"`
	Collectors []string `json:"collectors,omitempty"`
}

// UpdateBrand applies a partial update to a brand.
func (c *Client) UpdateBrand(ctx context.Context, id string, update BrandUpdate) (*models.Brand, error) {
	var brand models.Brand
	if err := c.do(ctx, http.MethodPut, "/brands/"+id, update, &brand); err != nil {
		return nil, err
	}
	return &brand, nil
}

// ArtifactStatuses lists the data-collection jobs attached to a brand.
func (c *Client) ArtifactStatuses(ctx context.Context, brandID string) ([]models.ArtifactStatus, error) {
	var statuses []models.ArtifactStatus
	if err := c.do(ctx, http.MethodGet, "/brands/"+brandID+"/artifacts", nil, &statuses); err != nil {
		return nil, err
	}
	return statuses, nil
}

// do issues one request and decodes the envelope. A false success flag comes
// back as *APIError; anything else is a transport failure.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("unreadable response (status %d): %w", resp.StatusCode, err)
	}

	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = fmt.Sprintf("request failed with status %d", resp.StatusCode)
		}
		return &APIError{Message: msg}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}
