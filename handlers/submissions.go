// ABOUTME: Submission history MCP tool handlers
// ABOUTME: Implements list_submissions over the local history database
package handlers

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/beacon/db"
)

type SubmissionHandlers struct {
	db *sql.DB
}

func NewSubmissionHandlers(database *sql.DB) *SubmissionHandlers {
	return &SubmissionHandlers{db: database}
}

type ListSubmissionsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Maximum number of results (default 10)"`
}

type SubmissionOutput struct {
	ID              string `json:"id"`
	BrandID         string `json:"brand_id"`
	BrandName       string `json:"brand_name"`
	ArtifactID      string `json:"artifact_id,omitempty"`
	Flavor          string `json:"flavor"`
	BrandedCount    int    `json:"branded_count"`
	NeutralCount    int    `json:"neutral_count"`
	CompetitorCount int    `json:"competitor_count"`
	SubmittedAt     string `json:"submitted_at"`
}

type ListSubmissionsOutput struct {
	Submissions []SubmissionOutput `json:"submissions"`
}

func (h *SubmissionHandlers) ListSubmissions(_ context.Context, request *mcp.CallToolRequest, input ListSubmissionsInput) (*mcp.CallToolResult, ListSubmissionsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = 10
	}

	subs, err := db.ListSubmissions(h.db, limit)
	if err != nil {
		return nil, ListSubmissionsOutput{}, fmt.Errorf("failed to list submissions: %w", err)
	}

	out := ListSubmissionsOutput{Submissions: []SubmissionOutput{}}
	for _, sub := range subs {
		out.Submissions = append(out.Submissions, SubmissionOutput{
			ID:              sub.ID,
			BrandID:         sub.BrandID,
			BrandName:       sub.BrandName,
			ArtifactID:      sub.ArtifactID,
			Flavor:          sub.Flavor,
			BrandedCount:    sub.BrandedCount,
			NeutralCount:    sub.NeutralCount,
			CompetitorCount: sub.CompetitorCount,
			SubmittedAt:     sub.SubmittedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return nil, out, nil
}
