package ingest

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/jobwell/jobsync-be/internal/dedup"
	"github.com/jobwell/jobsync-be/internal/ingest/domain"
	"github.com/jobwell/jobsync-be/internal/model"
	"github.com/jobwell/jobsync-be/internal/normalizer"
)

// processBatch normalizes a raw batch, drops in-batch duplicates and upserts
// the winners in chunks. Storage failures are retryable; a later redelivery
// re-runs the same idempotent upsert.
func (w *Worker) processBatch(ctx context.Context, msg *domain.BatchMessage) error {
	start := time.Now()

	postings := make([]model.JobPosting, 0, len(msg.Postings))
	skipped := 0
	for _, raw := range msg.Postings {
		if raw.ExternalID == "" {
			skipped++
			continue
		}
		postings = append(postings, buildPosting(msg.Source, raw, start))
	}

	if len(postings) == 0 {
		return fmt.Errorf("%w: no posting carries an external id", domain.ErrEmptyBatch)
	}

	unique := dedup.DedupeBatch(collapseByExternalID(postings))

	var created, updated int64
	for i := 0; i < len(unique); i += w.batchSize {
		end := i + w.batchSize
		if end > len(unique) {
			end = len(unique)
		}

		c, u, err := w.storage.UpsertBatch(ctx, unique[i:end])
		if err != nil {
			return domain.NewRetryableError(fmt.Errorf("failed to upsert chunk: %w", err))
		}
		created += c
		updated += u
	}

	w.logger.Info("Batch processed",
		slog.String("source", msg.Source),
		slog.Int("received", len(msg.Postings)),
		slog.Int("unique", len(unique)),
		slog.Int("skipped", skipped),
		slog.Int64("created", created),
		slog.Int64("updated", updated),
		slog.Duration("duration", time.Since(start)),
	)

	return nil
}

// collapseByExternalID keeps one posting per external id, preserving the
// order of first occurrences. The batch shares one source, so external id is
// the upsert conflict key; ON CONFLICT DO UPDATE rejects a statement that
// touches the same row twice. The higher-ranked occurrence wins.
func collapseByExternalID(postings []model.JobPosting) []model.JobPosting {
	if len(postings) <= 1 {
		return postings
	}

	best := make(map[string]int, len(postings))
	order := make([]string, 0, len(postings))

	for i := range postings {
		id := postings[i].ExternalID
		j, ok := best[id]
		if !ok {
			best[id] = i
			order = append(order, id)
			continue
		}
		if dedup.Outranks(&postings[i], &postings[j]) {
			best[id] = i
		}
	}

	unique := make([]model.JobPosting, 0, len(order))
	for _, id := range order {
		unique = append(unique, postings[best[id]])
	}
	return unique
}

// buildPosting turns a raw connector posting into a normalized row. Every
// content field goes through the normalizer before it is stored or compared.
func buildPosting(source string, raw model.RawJobPosting, now time.Time) model.JobPosting {
	company := normalizer.NormalizeCompanyName(raw.Company)
	description := normalizer.NormalizeDescription(raw.Description, raw.DescriptionHTML)
	salary := normalizer.NormalizeSalary(raw.SalaryMin, raw.SalaryMax, raw.SalaryPeriod)

	companyURL := normalizer.NormalizeURL(raw.CompanyURL)
	logo := normalizer.NormalizeURL(raw.CompanyLogo)
	if logo == "" {
		logo = normalizer.CompanyLogoURL(company.Name, companyURL)
	}

	var location string
	if raw.Location != "" {
		location = normalizer.NormalizeLocation(raw.Location).Display
	}

	var publishedAt sql.NullTime
	if raw.PublishedAt != nil {
		publishedAt = sql.NullTime{Time: *raw.PublishedAt, Valid: true}
	}

	return model.JobPosting{
		ID:              uuid.New().String(),
		ExternalID:      raw.ExternalID,
		Source:          source,
		Title:           normalizer.NormalizeJobTitle(raw.Title),
		Company:         company.Name,
		Location:        nullString(location),
		Description:     description,
		DescriptionHTML: nullString(raw.DescriptionHTML),
		CompanyLogo:     nullString(logo),
		CompanyURL:      nullString(companyURL),
		ApplyURL:        nullString(normalizer.NormalizeURL(raw.ApplyURL)),
		Requirements:    nullString(raw.Requirements),
		Benefits:        nullString(raw.Benefits),
		SalaryMin:       nullAmount(salary.AnnualMin),
		SalaryMax:       nullAmount(salary.AnnualMax),
		SalaryCurrency:  nullString(raw.SalaryCurrency),
		ExperienceLevel: nullString(raw.ExperienceLevel),
		Tags:            normalizer.ExtractSkillsFromDescription(description, raw.Tags),
		IsActive:        true,
		SyncStatus:      model.SyncStatusActive,
		PublishedAt:     publishedAt,
		LastSyncedAt:    now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullAmount(f *float64) sql.NullInt64 {
	if f == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(math.Round(*f)), Valid: true}
}
