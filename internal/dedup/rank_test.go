package dedup

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobwell/jobsync-be/internal/model"
)

func nt(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: true}
}

func TestGroupKey(t *testing.T) {
	assert.Equal(t, GroupKey("Backend Engineer", "Acme"), GroupKey("backend engineer", "ACME"))
	assert.NotEqual(t, GroupKey("Backend Engineer", "Acme"), GroupKey("Backend Engineer", "Initech"))

	// Title and company boundaries must not bleed into each other.
	assert.NotEqual(t, GroupKey("ab", "c"), GroupKey("a", "bc"))
}

func TestOutranks(t *testing.T) {
	day := 24 * time.Hour
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		a    model.JobPosting
		b    model.JobPosting
		want bool
	}{
		{
			name: "higher quality score wins",
			a:    model.JobPosting{Benefits: ns("401k")},
			b:    model.JobPosting{PublishedAt: nt(now)},
			want: true,
		},
		{
			name: "later published_at breaks score tie",
			a:    model.JobPosting{PublishedAt: nt(now)},
			b:    model.JobPosting{PublishedAt: nt(now.Add(-day))},
			want: true,
		},
		{
			name: "present published_at beats absent",
			a:    model.JobPosting{PublishedAt: nt(now.Add(-365 * day))},
			b:    model.JobPosting{},
			want: true,
		},
		{
			name: "later last_synced_at breaks published_at tie",
			a:    model.JobPosting{PublishedAt: nt(now), LastSyncedAt: now},
			b:    model.JobPosting{PublishedAt: nt(now), LastSyncedAt: now.Add(-time.Hour)},
			want: true,
		},
		{
			name: "earlier created_at breaks full tie",
			a:    model.JobPosting{LastSyncedAt: now, CreatedAt: now.Add(-day)},
			b:    model.JobPosting{LastSyncedAt: now, CreatedAt: now},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Outranks(&tt.a, &tt.b))
			if tt.want {
				assert.False(t, Outranks(&tt.b, &tt.a), "ordering must be asymmetric")
			}
		})
	}
}

func TestDedupeBatch(t *testing.T) {
	day := 24 * time.Hour
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// Three versions of the same posting: B has the highest score, A the
	// freshest date, C neither. B must win.
	a := model.JobPosting{
		ID: "a", Title: "Backend Engineer", Company: "Acme",
		PublishedAt: nt(now),
	}
	b := model.JobPosting{
		ID: "b", Title: "backend engineer", Company: "ACME",
		Description: strings.Repeat("x", 1500),
		PublishedAt: nt(now.Add(-7 * day)),
	}
	c := model.JobPosting{
		ID: "c", Title: "Backend Engineer", Company: "Acme",
		PublishedAt: nt(now.Add(-30 * day)),
	}
	other := model.JobPosting{
		ID: "d", Title: "Data Scientist", Company: "Initech",
	}

	unique := DedupeBatch([]model.JobPosting{a, b, other, c})

	require.Len(t, unique, 2)
	assert.Equal(t, "b", unique[0].ID, "highest quality version wins its group")
	assert.Equal(t, "d", unique[1].ID)
}

func TestDedupeBatch_PreservesOrderAndSmallInputs(t *testing.T) {
	assert.Empty(t, DedupeBatch(nil))

	single := []model.JobPosting{{ID: "only", Title: "T", Company: "C"}}
	assert.Equal(t, single, DedupeBatch(single))

	batch := []model.JobPosting{
		{ID: "1", Title: "A", Company: "X"},
		{ID: "2", Title: "B", Company: "X"},
		{ID: "3", Title: "C", Company: "X"},
	}
	unique := DedupeBatch(batch)
	require.Len(t, unique, 3)
	assert.Equal(t, "1", unique[0].ID)
	assert.Equal(t, "2", unique[1].ID)
	assert.Equal(t, "3", unique[2].ID)
}
