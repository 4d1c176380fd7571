// ABOUTME: Brand MCP tool handlers
// ABOUTME: Implements list_brands, get_brand, and brand_status tools over the backend API
package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/beacon/models"
)

// BrandAPI is the backend surface the brand tools need.
type BrandAPI interface {
	ListBrands(ctx context.Context) ([]models.Brand, error)
	GetBrand(ctx context.Context, id string) (*models.Brand, error)
	ArtifactStatuses(ctx context.Context, brandID string) ([]models.ArtifactStatus, error)
}

type BrandHandlers struct {
	api BrandAPI
}

func NewBrandHandlers(api BrandAPI) *BrandHandlers {
	return &BrandHandlers{api: api}
}

type ListBrandsInput struct {
	Query string `json:"query,omitempty" jsonschema:"Filter brands by name substring"`
}

type BrandOutput struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	WebsiteURL string   `json:"website_url,omitempty"`
	Industry   string   `json:"industry,omitempty"`
	Collectors []string `json:"collectors,omitempty"`
	CreatedAt  string   `json:"created_at"`
}

type ListBrandsOutput struct {
	Brands []BrandOutput `json:"brands"`
}

func (h *BrandHandlers) ListBrands(ctx context.Context, request *mcp.CallToolRequest, input ListBrandsInput) (*mcp.CallToolResult, ListBrandsOutput, error) {
	brands, err := h.api.ListBrands(ctx)
	if err != nil {
		return nil, ListBrandsOutput{}, fmt.Errorf("failed to list brands: %w", err)
	}

	out := ListBrandsOutput{Brands: []BrandOutput{}}
	for _, brand := range brands {
		if input.Query != "" && !strings.Contains(strings.ToLower(brand.Name), strings.ToLower(input.Query)) {
			continue
		}
		out.Brands = append(out.Brands, brandToOutput(brand))
	}
	return nil, out, nil
}

type GetBrandInput struct {
	BrandID string `json:"brand_id" jsonschema:"ID of the brand to fetch"`
}

func (h *BrandHandlers) GetBrand(ctx context.Context, request *mcp.CallToolRequest, input GetBrandInput) (*mcp.CallToolResult, BrandOutput, error) {
	if input.BrandID == "" {
		return nil, BrandOutput{}, fmt.Errorf("brand_id is required")
	}

	brand, err := h.api.GetBrand(ctx, input.BrandID)
	if err != nil {
		return nil, BrandOutput{}, fmt.Errorf("failed to get brand: %w", err)
	}
	return nil, brandToOutput(*brand), nil
}

type BrandStatusInput struct {
	BrandID string `json:"brand_id" jsonschema:"ID of the brand whose collection jobs to inspect"`
}

type ArtifactStatusOutput struct {
	ArtifactID string `json:"artifact_id"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	QueryCount int    `json:"query_count,omitempty"`
	StartedAt  string `json:"started_at,omitempty"`
	FinishedAt string `json:"finished_at,omitempty"`
}

type BrandStatusOutput struct {
	Statuses []ArtifactStatusOutput `json:"statuses"`
}

func (h *BrandHandlers) BrandStatus(ctx context.Context, request *mcp.CallToolRequest, input BrandStatusInput) (*mcp.CallToolResult, BrandStatusOutput, error) {
	if input.BrandID == "" {
		return nil, BrandStatusOutput{}, fmt.Errorf("brand_id is required")
	}

	statuses, err := h.api.ArtifactStatuses(ctx, input.BrandID)
	if err != nil {
		return nil, BrandStatusOutput{}, fmt.Errorf("failed to get artifact statuses: %w", err)
	}

	out := BrandStatusOutput{Statuses: []ArtifactStatusOutput{}}
	for _, s := range statuses {
		out.Statuses = append(out.Statuses, ArtifactStatusOutput{
			ArtifactID: s.ArtifactID,
			Status:     s.Status,
			Message:    s.Message,
			QueryCount: s.QueryCount,
			StartedAt:  formatTime(s.StartedAt),
			FinishedAt: formatTime(s.FinishedAt),
		})
	}
	return nil, out, nil
}

func brandToOutput(brand models.Brand) BrandOutput {
	return BrandOutput{
		ID:         brand.ID,
		Name:       brand.Name,
		WebsiteURL: brand.WebsiteURL,
		Industry:   brand.Industry,
		Collectors: brand.Collectors,
		CreatedAt:  brand.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02T15:04:05Z07:00")
}
