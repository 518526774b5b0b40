package normalizer

import (
	"regexp"
	"strings"
)

// DefaultCompanyName is returned when no company is present.
const DefaultCompanyName = "Unknown Company"

// CompanyName is the result of normalizing a raw company string. LegalSuffix
// is empty when the input carried no legal suffix.
type CompanyName struct {
	Name        string
	LegalSuffix string
	DisplayName string
}

var (
	legalSuffixRe = regexp.MustCompile(`(?i),?\s*(Inc\.?|LLC|Ltd\.?|Limited|Corporation|Corp\.?|Company|Co\.?|LLP|LP|PLC|GmbH|AG|S\.A\.?|N\.V\.?)\s*$`)
	thePrefixRe   = regexp.MustCompile(`(?i)^The\s+`)
	trademarkRe   = regexp.MustCompile(`[™®©]`)
	companySpace  = regexp.MustCompile(`\s+`)
)

// NormalizeCompanyName splits a trailing legal suffix into its own field,
// strips a leading "The", removes trademark glyphs and collapses whitespace.
// Title-casing is re-applied only when the input is uniformly upper- or
// lower-cased; mixed casing like "eBay" is preserved. Missing input yields
// DefaultCompanyName with no suffix.
func NormalizeCompanyName(company string) CompanyName {
	normalized := strings.TrimSpace(company)
	if normalized == "" {
		return CompanyName{Name: DefaultCompanyName, DisplayName: DefaultCompanyName}
	}

	var legalSuffix string
	if m := legalSuffixRe.FindStringSubmatch(normalized); m != nil {
		legalSuffix = m[1]
		normalized = strings.TrimSpace(legalSuffixRe.ReplaceAllString(normalized, ""))
	}

	normalized = thePrefixRe.ReplaceAllString(normalized, "")
	normalized = trademarkRe.ReplaceAllString(normalized, "")
	normalized = companySpace.ReplaceAllString(normalized, " ")
	normalized = strings.Trim(normalized, " .,")

	normalized = normalizeCapitalization(normalized)

	displayName := normalized
	if legalSuffix != "" {
		displayName = normalized + " " + legalSuffix
	}

	return CompanyName{
		Name:        normalized,
		LegalSuffix: legalSuffix,
		DisplayName: displayName,
	}
}

// normalizeCapitalization title-cases a string only when it is uniformly
// upper- or lower-cased. Mixed casing is assumed intentional.
func normalizeCapitalization(s string) string {
	if s == strings.ToUpper(s) || s == strings.ToLower(s) {
		return toTitleCase(s)
	}
	return s
}
