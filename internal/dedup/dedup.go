package dedup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
)

// advisoryLockID identifies the Postgres advisory lock that serializes
// deduplication passes across all service instances.
const advisoryLockID int64 = 824600431

// ErrAlreadyRunning is returned when another deduplication pass holds the
// advisory lock.
var ErrAlreadyRunning = errors.New("deduplication already in progress")

// Result reports the outcome of a deduplication pass. Deleted counts the
// candidates actually removed after the referential guard; Kept counts the
// rank-1 rows, i.e. the number of distinct duplicate groups.
type Result struct {
	Deleted int `db:"deleted"`
	Kept    int `db:"kept"`
}

// Stats is a read-only estimate of a pass's effect.
type Stats struct {
	TotalJobs               int `db:"total_jobs"`
	UniqueJobs              int `db:"unique_jobs"`
	Duplicates              int `db:"duplicates"`
	DuplicatesWithRelations int `db:"duplicates_with_relations"`
}

// DuplicateGroup is one entry of a duplicates preview.
type DuplicateGroup struct {
	Title          string `db:"title"`
	Company        string `db:"company"`
	DuplicateCount int    `db:"duplicate_count"`
}

// Deduplicator performs bulk set-based deduplication of active job postings
// using window functions inside the database, so the 100k+ row table never
// has to be pulled into process memory.
type Deduplicator struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewDeduplicator creates a Deduplicator.
func NewDeduplicator(db *sqlx.DB, logger *slog.Logger) *Deduplicator {
	return &Deduplicator{db: db, logger: logger}
}

// dedupQuery ranks every active posting within its case-insensitive
// (title, company) group, excludes rank>1 rows referenced by saved jobs or
// applications, and deletes the rest — all in one statement so ranking and
// deletion see a single consistent snapshot.
var dedupQuery = fmt.Sprintf(`
	WITH ranked_jobs AS (
		SELECT
			id,
			ROW_NUMBER() OVER (
				PARTITION BY LOWER(title), LOWER(company)
				ORDER BY
					%s DESC,
					published_at DESC NULLS LAST,
					last_synced_at DESC,
					created_at ASC
			) AS rank
		FROM job_postings
		WHERE is_active = true
	),
	candidates AS (
		SELECT rj.id
		FROM ranked_jobs rj
		WHERE rj.rank > 1
		  AND NOT EXISTS (SELECT 1 FROM saved_jobs sj WHERE sj.job_id = rj.id)
		  AND NOT EXISTS (SELECT 1 FROM job_applications ja WHERE ja.job_id = rj.id)
	),
	removed AS (
		DELETE FROM job_postings
		WHERE id IN (SELECT id FROM candidates)
		RETURNING id
	)
	SELECT
		(SELECT COUNT(*) FROM removed) AS deleted,
		(SELECT COUNT(*) FROM ranked_jobs WHERE rank = 1) AS kept
`, qualityScoreSQL)

// Run executes one deduplication pass. It is idempotent: a second run with no
// intervening ingestion deletes nothing. Concurrent runs are rejected with
// ErrAlreadyRunning via a Postgres advisory lock.
func (d *Deduplicator) Run(ctx context.Context) (Result, error) {
	conn, err := d.db.Connx(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	var locked bool
	if err := conn.GetContext(ctx, &locked, "SELECT pg_try_advisory_lock($1)", advisoryLockID); err != nil {
		return Result{}, fmt.Errorf("failed to acquire advisory lock: %w", err)
	}
	if !locked {
		return Result{}, ErrAlreadyRunning
	}
	defer func() {
		// Release even when ctx was canceled mid-pass.
		if _, err := conn.ExecContext(context.WithoutCancel(ctx), "SELECT pg_advisory_unlock($1)", advisoryLockID); err != nil {
			d.logger.Warn("Failed to release dedup advisory lock",
				slog.Any("error", err),
			)
		}
	}()

	d.logger.Info("Starting deduplication pass")

	var result Result
	if err := conn.GetContext(ctx, &result, dedupQuery); err != nil {
		return Result{}, fmt.Errorf("failed to deduplicate job postings: %w", err)
	}

	d.logger.Info("Deduplication pass complete",
		slog.Int("deleted", result.Deleted),
		slog.Int("kept", result.Kept),
	)

	return result, nil
}

// statsQuery ranks by published_at only — cheaper than the full quality
// ordering, and group membership is identical either way.
const statsQuery = `
	WITH ranked_jobs AS (
		SELECT
			id,
			ROW_NUMBER() OVER (
				PARTITION BY LOWER(title), LOWER(company)
				ORDER BY published_at DESC NULLS LAST
			) AS rank
		FROM job_postings
		WHERE is_active = true
	),
	all_duplicates AS (
		SELECT id FROM ranked_jobs WHERE rank > 1
	),
	duplicates_with_relations AS (
		SELECT ad.id
		FROM all_duplicates ad
		WHERE EXISTS (SELECT 1 FROM saved_jobs sj WHERE sj.job_id = ad.id)
		   OR EXISTS (SELECT 1 FROM job_applications ja WHERE ja.job_id = ad.id)
	)
	SELECT
		(SELECT COUNT(*) FROM job_postings WHERE is_active = true) AS total_jobs,
		(SELECT COUNT(*) FROM ranked_jobs WHERE rank = 1) AS unique_jobs,
		(SELECT COUNT(*) FROM all_duplicates) AS duplicates,
		(SELECT COUNT(*) FROM duplicates_with_relations) AS duplicates_with_relations
`

// GetStats reports how many active rows a pass would examine, how many
// groups exist, how many rows are deletion candidates and how many of those
// the referential guard would preserve. Read-only.
func (d *Deduplicator) GetStats(ctx context.Context) (Stats, error) {
	var stats Stats
	if err := d.db.GetContext(ctx, &stats, statsQuery); err != nil {
		return Stats{}, fmt.Errorf("failed to get deduplication stats: %w", err)
	}
	return stats, nil
}

const previewQuery = `
	SELECT
		MAX(title) AS title,
		MAX(company) AS company,
		COUNT(*)::int AS duplicate_count
	FROM job_postings
	WHERE is_active = true
	GROUP BY LOWER(title), LOWER(company)
	HAVING COUNT(*) > 1
	ORDER BY COUNT(*) DESC
	LIMIT $1
`

// Preview lists the largest duplicate groups, capped at limit, using a
// representative casing of title and company for display.
func (d *Deduplicator) Preview(ctx context.Context, limit int) ([]DuplicateGroup, error) {
	groups := []DuplicateGroup{}
	if err := d.db.SelectContext(ctx, &groups, previewQuery, limit); err != nil {
		return nil, fmt.Errorf("failed to preview duplicates: %w", err)
	}
	return groups, nil
}
