package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jobwell/jobsync-be/internal/model"
	"github.com/jobwell/jobsync-be/shared/postgresql"
)

// ErrNotFound is returned when a posting cannot be found.
var ErrNotFound = errors.New("job posting not found")

const selectColumns = `
	id, external_id, source, title, company,
	location, description, description_html,
	company_logo, company_url, apply_url,
	requirements, benefits,
	salary_min, salary_max, salary_currency,
	experience_level, tags,
	is_active, sync_status,
	published_at, last_synced_at, created_at, updated_at
`

// Storage handles read access for the API service.
type Storage struct {
	db *sqlx.DB
}

// NewStorage creates a new Storage instance.
func NewStorage(pg *postgresql.Client) *Storage {
	return &Storage{db: pg.GetDB()}
}

// GetJobByID fetches a single posting.
func (s *Storage) GetJobByID(ctx context.Context, id string) (*model.JobPosting, error) {
	var posting model.JobPosting
	query := `SELECT ` + selectColumns + ` FROM job_postings WHERE id = $1`

	err := s.db.GetContext(ctx, &posting, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}

	return &posting, nil
}

// JobFilter narrows a posting listing.
type JobFilter struct {
	Source     string
	SyncStatus string
	PageSize   int
	Cursor     *JobCursor
}

// JobCursor is a keyset position on (created_at, id).
type JobCursor struct {
	CreatedAt time.Time
	ID        string
}

// ListActiveJobs lists active postings newest-first with keyset pagination.
// One extra row beyond PageSize is fetched so the caller can detect more
// results.
func (s *Storage) ListActiveJobs(ctx context.Context, filter JobFilter) ([]model.JobPosting, error) {
	query := `SELECT ` + selectColumns + ` FROM job_postings WHERE is_active = true`
	args := []interface{}{}
	argIdx := 1

	if filter.Source != "" {
		query += fmt.Sprintf(" AND source = $%d", argIdx)
		args = append(args, filter.Source)
		argIdx++
	}

	if filter.SyncStatus != "" {
		query += fmt.Sprintf(" AND sync_status = $%d", argIdx)
		args = append(args, filter.SyncStatus)
		argIdx++
	}

	if filter.Cursor != nil {
		query += fmt.Sprintf(" AND (created_at, id) < ($%d, $%d)", argIdx, argIdx+1)
		args = append(args, filter.Cursor.CreatedAt, filter.Cursor.ID)
		argIdx += 2
	}

	query += " ORDER BY created_at DESC, id DESC"
	query += fmt.Sprintf(" LIMIT $%d", argIdx)
	args = append(args, filter.PageSize+1)

	var postings []model.JobPosting
	if err := s.db.SelectContext(ctx, &postings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}

	return postings, nil
}
