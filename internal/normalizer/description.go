package normalizer

import (
	"regexp"
	"strings"
)

var (
	// Block-level tags become line breaks so list items and paragraphs
	// survive tag stripping as separate lines.
	blockTagRe       = regexp.MustCompile(`(?i)</?(?:div|p|br|h[1-6]|li|tr)[^>]*>`)
	blockDoubleTagRe = regexp.MustCompile(`(?i)</?(?:ul|ol|table)[^>]*>`)
	anyTagRe         = regexp.MustCompile(`<[^>]*>`)

	multiNewlineRe = regexp.MustCompile(`\n\s*\n`)
	tripleNewline  = regexp.MustCompile(`\n{3,}`)
	spacesTabsRe   = regexp.MustCompile(`[ \t]+`)

	// Employer boilerplate stripped from descriptions.
	boilerplateRes = []*regexp.Regexp{
		regexp.MustCompile(`(?is)Equal\s+Opportunity\s+Employer.*?discrimination`),
		regexp.MustCompile(`(?is)We\s+are\s+an\s+equal\s+opportunity.*$`),
		regexp.MustCompile(`(?is)This\s+job\s+description\s+is\s+not.*$`),
	}

	htmlEntityReplacer = strings.NewReplacer(
		"&nbsp;", " ",
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
		"&rsquo;", "'",
		"&lsquo;", "'",
		"&rdquo;", `"`,
		"&ldquo;", `"`,
		"&mdash;", "—",
		"&ndash;", "–",
		"&hellip;", "...",
	)
)

// NormalizeDescription produces plain text from a job description, preferring
// the HTML variant when present. Block-level tags become newlines, remaining
// tags are stripped, a fixed set of HTML entities is decoded, known employer
// boilerplate is removed and whitespace is collapsed. Missing input yields "".
func NormalizeDescription(description, descriptionHTML string) string {
	if description == "" && descriptionHTML == "" {
		return ""
	}

	text := description
	if descriptionHTML != "" {
		text = descriptionHTML
	}
	text = stripHTMLPreservingStructure(text)

	for _, re := range boilerplateRes {
		text = re.ReplaceAllString(text, "")
	}

	text = tripleNewline.ReplaceAllString(text, "\n\n")
	text = spacesTabsRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// stripHTMLPreservingStructure strips tags while keeping paragraph and list
// structure as line breaks, then decodes common entities.
func stripHTMLPreservingStructure(html string) string {
	text := blockTagRe.ReplaceAllString(html, "\n")
	text = blockDoubleTagRe.ReplaceAllString(text, "\n\n")
	text = anyTagRe.ReplaceAllString(text, "")
	text = htmlEntityReplacer.Replace(text)
	text = multiNewlineRe.ReplaceAllString(text, "\n\n")
	text = spacesTabsRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
