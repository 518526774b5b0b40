package dedup

import (
	"strings"

	"github.com/jobwell/jobsync-be/internal/model"
)

// GroupKey returns the duplicate-group key for a posting: the
// case-insensitive (title, company) pair.
func GroupKey(title, company string) string {
	return strings.ToLower(title) + "\x00" + strings.ToLower(company)
}

// Outranks reports whether a should be kept over b within a duplicate group.
// The ordering mirrors the SQL ranking exactly: higher quality score first,
// then later published_at (absent dates sort last), then later
// last_synced_at, then earlier created_at.
func Outranks(a, b *model.JobPosting) bool {
	sa, sb := QualityScore(a), QualityScore(b)
	if sa != sb {
		return sa > sb
	}

	switch {
	case a.PublishedAt.Valid && !b.PublishedAt.Valid:
		return true
	case !a.PublishedAt.Valid && b.PublishedAt.Valid:
		return false
	case a.PublishedAt.Valid && b.PublishedAt.Valid && !a.PublishedAt.Time.Equal(b.PublishedAt.Time):
		return a.PublishedAt.Time.After(b.PublishedAt.Time)
	}

	if !a.LastSyncedAt.Equal(b.LastSyncedAt) {
		return a.LastSyncedAt.After(b.LastSyncedAt)
	}

	return a.CreatedAt.Before(b.CreatedAt)
}

// DedupeBatch keeps the top-ranked posting per duplicate group within a
// single ingestion batch, preserving the input order of group first
// occurrences. The table-wide pass remains in SQL; this only prevents a
// batch from upserting the same posting twice.
func DedupeBatch(postings []model.JobPosting) []model.JobPosting {
	if len(postings) <= 1 {
		return postings
	}

	best := make(map[string]int, len(postings))
	order := make([]string, 0, len(postings))

	for i := range postings {
		key := GroupKey(postings[i].Title, postings[i].Company)
		j, ok := best[key]
		if !ok {
			best[key] = i
			order = append(order, key)
			continue
		}
		if Outranks(&postings[i], &postings[j]) {
			best[key] = i
		}
	}

	unique := make([]model.JobPosting, 0, len(order))
	for _, key := range order {
		unique = append(unique, postings[best[key]])
	}
	return unique
}
