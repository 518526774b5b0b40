package normalizer

import (
	"net/url"
	"regexp"
	"strings"
)

const logoServiceBase = "https://logo.clearbit.com/"

var nonAlphanumRe = regexp.MustCompile(`[^a-z0-9]`)

// CompanyLogoURL derives a logo-service URL for a company. When a company URL
// is available its domain is used; otherwise a domain is guessed by slugifying
// the normalized company name. Best effort — the returned URL is not
// guaranteed to resolve. Missing company name yields "".
func CompanyLogoURL(companyName, companyURL string) string {
	if companyName == "" {
		return ""
	}

	if companyURL != "" {
		if u, err := url.Parse(companyURL); err == nil && u.Hostname() != "" {
			domain := strings.TrimPrefix(u.Hostname(), "www.")
			return logoServiceBase + domain
		}
	}

	name := NormalizeCompanyName(companyName).Name
	slug := nonAlphanumRe.ReplaceAllString(strings.ToLower(name), "")
	if slug == "" {
		return ""
	}
	return logoServiceBase + slug + ".com"
}
