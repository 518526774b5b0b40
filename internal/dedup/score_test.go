package dedup

import (
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobwell/jobsync-be/internal/model"
)

func ns(s string) sql.NullString {
	return sql.NullString{String: s, Valid: true}
}

func ni(i int64) sql.NullInt64 {
	return sql.NullInt64{Int64: i, Valid: true}
}

func TestQualityScore(t *testing.T) {
	tests := []struct {
		name     string
		posting  model.JobPosting
		expected int
	}{
		{
			name:     "bare posting scores zero",
			posting:  model.JobPosting{},
			expected: 0,
		},
		{
			name: "each populated field adds one",
			posting: model.JobPosting{
				CompanyLogo: ns("https://logo.clearbit.com/acme.com"),
				CompanyURL:  ns("https://acme.com"),
				SalaryMin:   ni(100000),
			},
			expected: 3,
		},
		{
			name: "long description adds two",
			posting: model.JobPosting{
				Description: strings.Repeat("x", 1001),
			},
			expected: 2,
		},
		{
			name: "description at threshold earns no bonus",
			posting: model.JobPosting{
				Description: strings.Repeat("x", 1000),
			},
			expected: 0,
		},
		{
			name: "fully populated posting scores ten",
			posting: model.JobPosting{
				CompanyLogo:     ns("logo"),
				CompanyURL:      ns("url"),
				Requirements:    ns("reqs"),
				Benefits:        ns("bens"),
				SalaryMin:       ni(100000),
				SalaryMax:       ni(150000),
				DescriptionHTML: ns("<p>html</p>"),
				ExperienceLevel: ns("senior"),
				Description:     strings.Repeat("x", 1001),
			},
			// 8 one-point fields plus the 2-point description bonus.
			expected: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, QualityScore(&tt.posting))
		})
	}
}

func TestQualityScoreSQL_BonusThreshold(t *testing.T) {
	// The SQL expression interpolates descriptionBonusLength; the Go twin
	// compares against the same constant.
	assert.Contains(t, qualityScoreSQL, "LENGTH(description) > 1000")
}

func TestQualityScore_Monotonic(t *testing.T) {
	// Populating any additional field never lowers the score.
	base := model.JobPosting{Description: "short"}
	baseScore := QualityScore(&base)

	richer := base
	richer.Benefits = ns("health insurance")
	assert.Greater(t, QualityScore(&richer), baseScore)

	richer.Description = strings.Repeat("x", 2000)
	assert.Equal(t, baseScore+3, QualityScore(&richer))
}
