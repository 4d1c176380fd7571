// ABOUTME: Tests for submission history and artifact status persistence
// ABOUTME: Uses in-memory SQLite to verify inserts, ordering, and upserts
package db

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/beacon/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	require.NoError(t, InitSchema(database))
	return database
}

func TestRecordAndListSubmissions(t *testing.T) {
	database := setupTestDB(t)

	first := &Submission{
		BrandID:         "b-1",
		BrandName:       "Acme",
		ArtifactID:      "a-1",
		Flavor:          "research",
		BrandedCount:    4,
		NeutralCount:    7,
		CompetitorCount: 2,
	}
	require.NoError(t, RecordSubmission(database, first))
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.SubmittedAt.IsZero())

	time.Sleep(5 * time.Millisecond)
	second := &Submission{BrandID: "b-2", BrandName: "Initech", Flavor: "import"}
	require.NoError(t, RecordSubmission(database, second))

	subs, err := ListSubmissions(database, 10)
	require.NoError(t, err)
	require.Len(t, subs, 2)
	// Newest first.
	assert.Equal(t, "Initech", subs[0].BrandName)
	assert.Equal(t, "Acme", subs[1].BrandName)
	assert.Equal(t, 7, subs[1].NeutralCount)
	assert.Empty(t, subs[0].ArtifactID)
}

func TestListSubmissionsLimit(t *testing.T) {
	database := setupTestDB(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, RecordSubmission(database, &Submission{
			BrandID: "b", BrandName: "Brand", Flavor: "research",
		}))
	}

	subs, err := ListSubmissions(database, 3)
	require.NoError(t, err)
	assert.Len(t, subs, 3)
}

func TestUpsertArtifactStatus(t *testing.T) {
	database := setupTestDB(t)

	started := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, UpsertArtifactStatus(database, models.ArtifactStatus{
		ArtifactID: "a-1",
		BrandID:    "b-1",
		Status:     models.ArtifactStatusRunning,
		QueryCount: 12,
		StartedAt:  &started,
	}))

	// Second upsert for the same artifact replaces the row.
	finished := started.Add(time.Minute)
	require.NoError(t, UpsertArtifactStatus(database, models.ArtifactStatus{
		ArtifactID: "a-1",
		BrandID:    "b-1",
		Status:     models.ArtifactStatusCompleted,
		Message:    "done",
		QueryCount: 12,
		StartedAt:  &started,
		FinishedAt: &finished,
	}))

	statuses, err := GetArtifactStatuses(database, "b-1")
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, models.ArtifactStatusCompleted, statuses[0].Status)
	assert.Equal(t, "done", statuses[0].Message)
	require.NotNil(t, statuses[0].FinishedAt)
}

func TestGetArtifactStatusesEmpty(t *testing.T) {
	database := setupTestDB(t)

	statuses, err := GetArtifactStatuses(database, "missing")
	require.NoError(t, err)
	assert.Empty(t, statuses)
}
