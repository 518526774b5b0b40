// Package normalizer canonicalizes raw scraped job fields before they are
// written or compared. Every function is pure and total: malformed input
// degrades to a documented default instead of an error, and applying a
// function twice yields the same result as applying it once.
package normalizer

import (
	"regexp"
	"strings"
)

// DefaultTitle is returned when no title is present.
const DefaultTitle = "Untitled Position"

// titleAbbreviations maps whole-word abbreviations to their expanded form.
// Patterns with an optional trailing dot consume the dot as well, so
// "Sr. Engineer" becomes "Senior Engineer" rather than "Senior. Engineer".
var titleAbbreviations = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)\bSr\b\.?`), "Senior"},
	{regexp.MustCompile(`(?i)\bJr\b\.?`), "Junior"},
	{regexp.MustCompile(`(?i)\bMgr\b\.?`), "Manager"},
	{regexp.MustCompile(`(?i)\bDev\b\.?`), "Developer"},
	{regexp.MustCompile(`(?i)\bEng\b\.?`), "Engineer"},
	{regexp.MustCompile(`(?i)\bAdmin\b\.?`), "Administrator"},
	{regexp.MustCompile(`(?i)\bSys\b\.?`), "System"},
	{regexp.MustCompile(`(?i)\bDB\b\.?`), "Database"},
	{regexp.MustCompile(`(?i)\bDevops\b`), "DevOps"},
	{regexp.MustCompile(`(?i)\bFullstack\b`), "Full Stack"},
	{regexp.MustCompile(`(?i)\bFull-stack\b`), "Full Stack"},
	{regexp.MustCompile(`(?i)\bFront-end\b`), "Frontend"},
	{regexp.MustCompile(`(?i)\bBack-end\b`), "Backend"},
	{regexp.MustCompile(`(?i)\bQA\b`), "Quality Assurance"},
	{regexp.MustCompile(`(?i)\bML\b`), "Machine Learning"},
	{regexp.MustCompile(`(?i)\bAI\b`), "Artificial Intelligence"},
}

var (
	titleSlashRe      = regexp.MustCompile(`[/|]`)
	titleSpaceRe      = regexp.MustCompile(`\s+`)
	seniorityPrefixRe = regexp.MustCompile(`^(Senior|Junior|Lead|Principal|Staff)\s+(.+)$`)
	parentheticalRe   = regexp.MustCompile(`\s+\(([^)]+)\)$`)
)

// acronyms maps the upper-cased form of an allow-listed acronym to its
// canonical casing, preserved during title-casing.
var acronyms = map[string]string{
	"CEO": "CEO", "CTO": "CTO", "CFO": "CFO", "COO": "COO",
	"VP": "VP", "SVP": "SVP", "EVP": "EVP",
	"API": "API", "UI": "UI", "UX": "UX", "QA": "QA",
	"IT": "IT", "HR": "HR", "AI": "AI", "ML": "ML",
	"AWS": "AWS", "GCP": "GCP", "IOS": "iOS",
	"PHP": "PHP", "SQL": "SQL", "HTML": "HTML", "CSS": "CSS",
	"DEVOPS": "DevOps", "JAVASCRIPT": "JavaScript", "TYPESCRIPT": "TypeScript",
}

// minorWords stay lower-cased during title-casing unless they lead the title.
var minorWords = map[string]bool{
	"a": true, "an": true, "and": true, "as": true, "at": true,
	"but": true, "by": true, "for": true, "in": true, "of": true,
	"on": true, "or": true, "the": true, "to": true, "with": true,
}

// NormalizeJobTitle canonicalizes a raw job title: expands abbreviations,
// strips slashes and pipes, collapses whitespace, moves a leading seniority
// token into a trailing parenthetical and applies title-casing. Missing or
// empty input yields DefaultTitle.
func NormalizeJobTitle(title string) string {
	normalized := strings.TrimSpace(title)
	if normalized == "" {
		return DefaultTitle
	}

	for _, abbr := range titleAbbreviations {
		normalized = abbr.pattern.ReplaceAllString(normalized, abbr.replacement)
	}

	normalized = titleSlashRe.ReplaceAllString(normalized, " ")
	normalized = titleSpaceRe.ReplaceAllString(normalized, " ")
	normalized = strings.TrimSpace(normalized)

	// "Senior Backend Engineer" -> "Backend Engineer (Senior)"
	normalized = seniorityPrefixRe.ReplaceAllString(normalized, "$2 ($1)")
	normalized = parentheticalRe.ReplaceAllString(normalized, " ($1)")

	return toTitleCase(normalized)
}

// toTitleCase title-cases every word while preserving allow-listed acronyms,
// lower-casing minor words (except in first position) and leaving
// parenthesized words untouched.
func toTitleCase(s string) string {
	words := strings.Split(s, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		if canonical, ok := acronyms[strings.ToUpper(word)]; ok {
			words[i] = canonical
			continue
		}
		if strings.HasPrefix(word, "(") && strings.HasSuffix(word, ")") {
			continue
		}
		lower := strings.ToLower(word)
		if i > 0 && minorWords[lower] {
			words[i] = lower
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
