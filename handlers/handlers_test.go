// ABOUTME: Tests for MCP tool handlers
// ABOUTME: Exercises brand, submission, and synonym tools with a fake API and in-memory SQLite
package handlers

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/beacon/db"
	"github.com/harperreed/beacon/models"
)

type fakeBrandAPI struct {
	brands   []models.Brand
	statuses []models.ArtifactStatus
	err      error
}

func (f *fakeBrandAPI) ListBrands(context.Context) ([]models.Brand, error) {
	return f.brands, f.err
}

func (f *fakeBrandAPI) GetBrand(_ context.Context, id string) (*models.Brand, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, b := range f.brands {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeBrandAPI) ArtifactStatuses(context.Context, string) ([]models.ArtifactStatus, error) {
	return f.statuses, f.err
}

func TestListBrandsFiltersByQuery(t *testing.T) {
	api := &fakeBrandAPI{brands: []models.Brand{
		{ID: "1", Name: "On The Beach"},
		{ID: "2", Name: "Initech"},
	}}
	h := NewBrandHandlers(api)

	_, out, err := h.ListBrands(context.Background(), nil, ListBrandsInput{Query: "beach"})
	require.NoError(t, err)
	require.Len(t, out.Brands, 1)
	assert.Equal(t, "On The Beach", out.Brands[0].Name)
}

func TestGetBrandRequiresID(t *testing.T) {
	h := NewBrandHandlers(&fakeBrandAPI{})
	_, _, err := h.GetBrand(context.Background(), nil, GetBrandInput{})
	assert.Error(t, err)
}

func TestBrandStatusFormatsTimestamps(t *testing.T) {
	started := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	api := &fakeBrandAPI{statuses: []models.ArtifactStatus{
		{ArtifactID: "a-1", Status: models.ArtifactStatusRunning, StartedAt: &started},
	}}
	h := NewBrandHandlers(api)

	_, out, err := h.BrandStatus(context.Background(), nil, BrandStatusInput{BrandID: "b-1"})
	require.NoError(t, err)
	require.Len(t, out.Statuses, 1)
	assert.Equal(t, "running", out.Statuses[0].Status)
	assert.Equal(t, "2025-03-01T12:00:00Z", out.Statuses[0].StartedAt)
	assert.Empty(t, out.Statuses[0].FinishedAt)
}

func TestListSubmissions(t *testing.T) {
	database, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	require.NoError(t, db.InitSchema(database))

	require.NoError(t, db.RecordSubmission(database, &db.Submission{
		BrandID: "b-1", BrandName: "Acme", Flavor: "research", BrandedCount: 3,
	}))

	h := NewSubmissionHandlers(database)
	_, out, err := h.ListSubmissions(context.Background(), nil, ListSubmissionsInput{})
	require.NoError(t, err)
	require.Len(t, out.Submissions, 1)
	assert.Equal(t, "Acme", out.Submissions[0].BrandName)
	assert.Equal(t, 3, out.Submissions[0].BrandedCount)
}

func TestGenerateSynonyms(t *testing.T) {
	h := NewSynonymHandlers()

	_, out, err := h.GenerateSynonyms(context.Background(), nil, GenerateSynonymsInput{
		Name: "On The Beach Group plc",
		URL:  "https://www.onthebeach.co.uk",
	})
	require.NoError(t, err)
	assert.Contains(t, out.Synonyms, "OTB")
	assert.Contains(t, out.Synonyms, "onthebeach.co.uk")

	_, _, err = h.GenerateSynonyms(context.Background(), nil, GenerateSynonymsInput{})
	assert.Error(t, err)
}
