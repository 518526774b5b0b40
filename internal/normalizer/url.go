package normalizer

import (
	"net/url"
	"regexp"
	"strings"
)

var schemeRe = regexp.MustCompile(`(?i)^https?://`)

// trackingParams are stripped from every normalized URL.
var trackingParams = []string{
	"utm_source",
	"utm_medium",
	"utm_campaign",
	"utm_term",
	"utm_content",
	"ref",
	"referrer",
	"fbclid",
	"gclid",
	"msclkid",
}

// NormalizeURL prepends https:// when no scheme is present, validates the
// URL and strips known tracking query parameters. Missing or unparseable
// input yields "".
func NormalizeURL(raw string) string {
	normalized := strings.TrimSpace(raw)
	if normalized == "" {
		return ""
	}

	if !schemeRe.MatchString(normalized) {
		normalized = "https://" + normalized
	}

	u, err := url.Parse(normalized)
	if err != nil || u.Host == "" {
		return ""
	}

	q := u.Query()
	for _, param := range trackingParams {
		q.Del(param)
	}
	u.RawQuery = q.Encode()

	return u.String()
}
