package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/jobwell/jobsync-be/internal/model"
)

// upsertColumnCount is the number of columns written per posting row.
const upsertColumnCount = 24

// Storage handles database writes for the ingestion worker.
type Storage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStorage creates a new Storage instance.
func NewStorage(db *sqlx.DB, logger *slog.Logger) *Storage {
	return &Storage{db: db, logger: logger}
}

// UpsertBatch writes a batch of normalized postings in a single
// INSERT ... ON CONFLICT statement keyed on (source, external_id). Existing
// rows are refreshed in place and reactivated; created_at is preserved.
// Returns how many rows were created vs updated.
func (s *Storage) UpsertBatch(ctx context.Context, postings []model.JobPosting) (created, updated int64, err error) {
	if len(postings) == 0 {
		return 0, 0, nil
	}

	existing, err := s.existingKeys(ctx, postings)
	if err != nil {
		return 0, 0, err
	}

	placeholders := make([]string, 0, len(postings))
	args := make([]interface{}, 0, len(postings)*upsertColumnCount)

	for i, p := range postings {
		offset := i * upsertColumnCount
		nums := make([]string, upsertColumnCount)
		for j := range nums {
			nums[j] = fmt.Sprintf("$%d", offset+j+1)
		}
		placeholders = append(placeholders, "("+strings.Join(nums, ", ")+")")

		args = append(args,
			p.ID, p.ExternalID, p.Source, p.Title, p.Company,
			p.Location, p.Description, p.DescriptionHTML,
			p.CompanyLogo, p.CompanyURL, p.ApplyURL,
			p.Requirements, p.Benefits,
			p.SalaryMin, p.SalaryMax, p.SalaryCurrency,
			p.ExperienceLevel, p.Tags,
			p.IsActive, p.SyncStatus,
			p.PublishedAt, p.LastSyncedAt, p.CreatedAt, p.UpdatedAt,
		)
	}

	query := `
		INSERT INTO job_postings (
			id, external_id, source, title, company,
			location, description, description_html,
			company_logo, company_url, apply_url,
			requirements, benefits,
			salary_min, salary_max, salary_currency,
			experience_level, tags,
			is_active, sync_status,
			published_at, last_synced_at, created_at, updated_at
		) VALUES ` + strings.Join(placeholders, ", ") + `
		ON CONFLICT (source, external_id) DO UPDATE SET
			title = EXCLUDED.title,
			company = EXCLUDED.company,
			location = EXCLUDED.location,
			description = EXCLUDED.description,
			description_html = EXCLUDED.description_html,
			company_logo = EXCLUDED.company_logo,
			company_url = EXCLUDED.company_url,
			apply_url = EXCLUDED.apply_url,
			requirements = EXCLUDED.requirements,
			benefits = EXCLUDED.benefits,
			salary_min = EXCLUDED.salary_min,
			salary_max = EXCLUDED.salary_max,
			salary_currency = EXCLUDED.salary_currency,
			experience_level = EXCLUDED.experience_level,
			tags = EXCLUDED.tags,
			is_active = true,
			sync_status = EXCLUDED.sync_status,
			published_at = EXCLUDED.published_at,
			last_synced_at = EXCLUDED.last_synced_at,
			updated_at = NOW()
	`

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return 0, 0, fmt.Errorf("failed to upsert posting batch: %w", err)
	}

	for _, p := range postings {
		if existing[p.Source+"\x00"+p.ExternalID] {
			updated++
		} else {
			created++
		}
	}

	s.logger.Debug("Posting batch upserted",
		slog.Int64("created", created),
		slog.Int64("updated", updated),
	)

	return created, updated, nil
}

// existingKeys returns the (source, external_id) pairs from the batch that
// already exist, so created and updated can be counted separately.
func (s *Storage) existingKeys(ctx context.Context, postings []model.JobPosting) (map[string]bool, error) {
	pairs := make([]string, 0, len(postings))
	args := make([]interface{}, 0, len(postings)*2)
	for i, p := range postings {
		pairs = append(pairs, fmt.Sprintf("($%d, $%d)", i*2+1, i*2+2))
		args = append(args, p.Source, p.ExternalID)
	}

	query := `
		SELECT source, external_id
		FROM job_postings
		WHERE (source, external_id) IN (` + strings.Join(pairs, ", ") + `)
	`

	rows := []struct {
		Source     string `db:"source"`
		ExternalID string `db:"external_id"`
	}{}
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query existing postings: %w", err)
	}

	existing := make(map[string]bool, len(rows))
	for _, r := range rows {
		existing[r.Source+"\x00"+r.ExternalID] = true
	}
	return existing, nil
}
