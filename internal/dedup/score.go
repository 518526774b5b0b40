// Package dedup identifies groups of active job postings that describe the
// same real-world posting and removes all but the highest-quality row per
// group, without touching rows referenced by saved jobs or applications.
package dedup

import (
	"fmt"

	"github.com/jobwell/jobsync-be/internal/model"
)

// descriptionBonusLength is the plain-description length above which a
// posting earns the two-point richness bonus.
const descriptionBonusLength = 1000

// qualityScoreSQL is the quality score as a SQL expression. It must stay in
// lockstep with QualityScore below — ranking, preview and stats all derive
// from this one formula.
var qualityScoreSQL = fmt.Sprintf(`(
			CASE WHEN company_logo IS NOT NULL THEN 1 ELSE 0 END +
			CASE WHEN company_url IS NOT NULL THEN 1 ELSE 0 END +
			CASE WHEN requirements IS NOT NULL THEN 1 ELSE 0 END +
			CASE WHEN benefits IS NOT NULL THEN 1 ELSE 0 END +
			CASE WHEN salary_min IS NOT NULL THEN 1 ELSE 0 END +
			CASE WHEN salary_max IS NOT NULL THEN 1 ELSE 0 END +
			CASE WHEN description_html IS NOT NULL THEN 1 ELSE 0 END +
			CASE WHEN experience_level IS NOT NULL THEN 1 ELSE 0 END +
			CASE WHEN LENGTH(description) > %d THEN 2 ELSE 0 END
		)`, descriptionBonusLength)

// QualityScore counts a posting's populated richness fields, plus a bonus of
// 2 when the plain description exceeds 1000 characters. Range 0-10. This is
// the Go twin of qualityScoreSQL.
func QualityScore(p *model.JobPosting) int {
	score := 0
	if p.CompanyLogo.Valid {
		score++
	}
	if p.CompanyURL.Valid {
		score++
	}
	if p.Requirements.Valid {
		score++
	}
	if p.Benefits.Valid {
		score++
	}
	if p.SalaryMin.Valid {
		score++
	}
	if p.SalaryMax.Valid {
		score++
	}
	if p.DescriptionHTML.Valid {
		score++
	}
	if p.ExperienceLevel.Valid {
		score++
	}
	if len(p.Description) > descriptionBonusLength {
		score += 2
	}
	return score
}
