// ABOUTME: Submission history and artifact status persistence
// ABOUTME: Records successful onboarding submissions and caches backend job status locally
package db

import (
	"crypto/rand"
	"database/sql"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/harperreed/beacon/models"
)

// Submission is one successfully submitted onboarding, recorded locally so
// the admin commands work without a round trip.
type Submission struct {
	ID              string    `json:"id"`
	BrandID         string    `json:"brand_id"`
	BrandName       string    `json:"brand_name"`
	ArtifactID      string    `json:"artifact_id,omitempty"`
	Flavor          string    `json:"flavor"`
	BrandedCount    int       `json:"branded_count"`
	NeutralCount    int       `json:"neutral_count"`
	CompetitorCount int       `json:"competitor_count"`
	SubmittedAt     time.Time `json:"submitted_at"`
}

// RecordSubmission inserts a submission row, assigning a ULID id and the
// current timestamp.
func RecordSubmission(db *sql.DB, sub *Submission) error {
	sub.ID = ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
	sub.SubmittedAt = time.Now().UTC()

	_, err := db.Exec(`
		INSERT INTO submissions (id, brand_id, brand_name, artifact_id, flavor, branded_count, neutral_count, competitor_count, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, sub.ID, sub.BrandID, sub.BrandName, sub.ArtifactID, sub.Flavor, sub.BrandedCount, sub.NeutralCount, sub.CompetitorCount, sub.SubmittedAt)

	return err
}

// ListSubmissions returns submissions newest first.
func ListSubmissions(db *sql.DB, limit int) ([]Submission, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.Query(`
		SELECT id, brand_id, brand_name, artifact_id, flavor, branded_count, neutral_count, competitor_count, submitted_at
		FROM submissions ORDER BY submitted_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []Submission
	for rows.Next() {
		var sub Submission
		var artifactID sql.NullString
		if err := rows.Scan(&sub.ID, &sub.BrandID, &sub.BrandName, &artifactID, &sub.Flavor,
			&sub.BrandedCount, &sub.NeutralCount, &sub.CompetitorCount, &sub.SubmittedAt); err != nil {
			return nil, err
		}
		if artifactID.Valid {
			sub.ArtifactID = artifactID.String
		}
		subs = append(subs, sub)
	}
	return subs, rows.Err()
}

// UpsertArtifactStatus refreshes the cached status for one collection job.
func UpsertArtifactStatus(db *sql.DB, status models.ArtifactStatus) error {
	_, err := db.Exec(`
		INSERT INTO artifact_status (artifact_id, brand_id, status, message, query_count, started_at, finished_at, refreshed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(artifact_id) DO UPDATE SET
			status = excluded.status,
			message = excluded.message,
			query_count = excluded.query_count,
			started_at = excluded.started_at,
			finished_at = excluded.finished_at,
			refreshed_at = excluded.refreshed_at
	`, status.ArtifactID, status.BrandID, status.Status, status.Message, status.QueryCount,
		status.StartedAt, status.FinishedAt, time.Now().UTC())

	return err
}

// GetArtifactStatuses returns the cached job statuses for a brand.
func GetArtifactStatuses(db *sql.DB, brandID string) ([]models.ArtifactStatus, error) {
	rows, err := db.Query(`
		SELECT artifact_id, brand_id, status, message, query_count, started_at, finished_at
		FROM artifact_status WHERE brand_id = ? ORDER BY artifact_id
	`, brandID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []models.ArtifactStatus
	for rows.Next() {
		var status models.ArtifactStatus
		var message sql.NullString
		if err := rows.Scan(&status.ArtifactID, &status.BrandID, &status.Status, &message,
			&status.QueryCount, &status.StartedAt, &status.FinishedAt); err != nil {
			return nil, err
		}
		if message.Valid {
			status.Message = message.String
		}
		statuses = append(statuses, status)
	}
	return statuses, rows.Err()
}
