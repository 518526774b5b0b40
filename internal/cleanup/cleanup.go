// Package cleanup contains bulk lifecycle maintenance for job postings:
// marking aged rows stale, removing expired rows and toggling whole sources.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jobwell/jobsync-be/internal/model"
)

// Default age thresholds in days.
const (
	DefaultStaleAfterDays  = 60
	DefaultExpireAfterDays = 90
)

// Cleaner runs bulk update/delete maintenance over the job_postings table.
type Cleaner struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewCleaner creates a Cleaner.
func NewCleaner(db *sqlx.DB, logger *slog.Logger) *Cleaner {
	return &Cleaner{db: db, logger: logger}
}

// MarkStale flags active postings published before the threshold as stale.
// Returns the number of rows updated.
func (c *Cleaner) MarkStale(ctx context.Context, olderThanDays int) (int64, error) {
	if olderThanDays <= 0 {
		olderThanDays = DefaultStaleAfterDays
	}
	cutoff := time.Now().AddDate(0, 0, -olderThanDays)

	query := `
		UPDATE job_postings
		SET sync_status = $1, updated_at = NOW()
		WHERE published_at < $2
		  AND sync_status = $3
		  AND is_active = true
	`

	res, err := c.db.ExecContext(ctx, query, model.SyncStatusStale, cutoff, model.SyncStatusActive)
	if err != nil {
		return 0, fmt.Errorf("failed to mark stale postings: %w", err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	c.logger.Info("Marked postings as stale",
		slog.Int64("count", count),
		slog.Int("older_than_days", olderThanDays),
	)

	return count, nil
}

// DeleteExpired removes stale postings published before the threshold,
// skipping any row referenced by a saved job or an application — the same
// referential guard the deduplicator applies.
func (c *Cleaner) DeleteExpired(ctx context.Context, olderThanDays int) (int64, error) {
	if olderThanDays <= 0 {
		olderThanDays = DefaultExpireAfterDays
	}
	cutoff := time.Now().AddDate(0, 0, -olderThanDays)

	query := `
		DELETE FROM job_postings jp
		WHERE jp.published_at < $1
		  AND jp.sync_status = $2
		  AND NOT EXISTS (SELECT 1 FROM saved_jobs sj WHERE sj.job_id = jp.id)
		  AND NOT EXISTS (SELECT 1 FROM job_applications ja WHERE ja.job_id = jp.id)
	`

	res, err := c.db.ExecContext(ctx, query, cutoff, model.SyncStatusStale)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired postings: %w", err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	c.logger.Info("Deleted expired postings",
		slog.Int64("count", count),
		slog.Int("older_than_days", olderThanDays),
	)

	return count, nil
}

// DeactivateSource hides every active posting from a source, e.g. when a
// feed is deprecated.
func (c *Cleaner) DeactivateSource(ctx context.Context, source string) (int64, error) {
	query := `
		UPDATE job_postings
		SET is_active = false, sync_status = $1, updated_at = NOW()
		WHERE source = $2
		  AND is_active = true
	`

	res, err := c.db.ExecContext(ctx, query, model.SyncStatusExpired, source)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate source postings: %w", err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	c.logger.Info("Deactivated source postings",
		slog.String("source", source),
		slog.Int64("count", count),
	)

	return count, nil
}

// ReactivateRecent restores stale postings that synced again within the
// window, undoing an over-eager MarkStale.
func (c *Cleaner) ReactivateRecent(ctx context.Context, sinceDays int) (int64, error) {
	if sinceDays <= 0 {
		sinceDays = 30
	}
	cutoff := time.Now().AddDate(0, 0, -sinceDays)

	query := `
		UPDATE job_postings
		SET sync_status = $1, is_active = true, updated_at = NOW()
		WHERE last_synced_at >= $2
		  AND sync_status = $3
	`

	res, err := c.db.ExecContext(ctx, query, model.SyncStatusActive, cutoff, model.SyncStatusStale)
	if err != nil {
		return 0, fmt.Errorf("failed to reactivate recent postings: %w", err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	c.logger.Info("Reactivated recently synced postings",
		slog.Int64("count", count),
	)

	return count, nil
}
