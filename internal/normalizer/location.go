package normalizer

import (
	"regexp"
	"strings"
)

// DefaultLocationDisplay is the display value when no location is present.
const DefaultLocationDisplay = "Location Not Specified"

// Location is the parsed form of a raw location string. City, State and
// Country are empty when they could not be determined.
type Location struct {
	Raw      string
	City     string
	State    string
	Country  string
	IsRemote bool
	Display  string
}

var remoteRe = regexp.MustCompile(`(?i)\b(remote|work from home|wfh|anywhere)\b`)

// NormalizeLocation parses a raw location string. Remote-work phrasing short
// circuits to a remote location; otherwise the string is split on commas into
// city, state and country parts. A two-letter second part is treated as a US
// state abbreviation. The display string omits a redundant USA country
// suffix. Missing input yields an empty location with DefaultLocationDisplay.
func NormalizeLocation(location string) Location {
	normalized := strings.TrimSpace(location)
	if normalized == "" {
		return Location{Display: DefaultLocationDisplay}
	}

	if remoteRe.MatchString(normalized) {
		return Location{Raw: normalized, IsRemote: true, Display: "Remote"}
	}

	parts := strings.Split(normalized, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	loc := Location{Raw: normalized}
	switch {
	case len(parts) == 1:
		loc.City = parts[0]
	case len(parts) == 2:
		loc.City = parts[0]
		if len(parts[1]) == 2 {
			loc.State = strings.ToUpper(parts[1])
		} else {
			loc.Country = parts[1]
		}
	default:
		loc.City = parts[0]
		loc.State = parts[1]
		loc.Country = parts[2]
	}

	loc.Display = buildLocationDisplay(loc, normalized)
	return loc
}

func buildLocationDisplay(loc Location, fallback string) string {
	var b []string
	if loc.City != "" {
		b = append(b, loc.City)
	}
	if loc.State != "" {
		b = append(b, loc.State)
	}
	country := strings.ToLower(loc.Country)
	if loc.Country != "" && country != "usa" && country != "united states" {
		b = append(b, loc.Country)
	}
	if len(b) == 0 {
		return fallback
	}
	return strings.Join(b, ", ")
}
