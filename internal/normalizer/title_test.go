package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeJobTitle(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "abbreviations expanded and seniority moved to parenthetical",
			input:    "Sr. Software Dev.",
			expected: "Software Developer (Senior)",
		},
		{
			name:     "empty title falls back to default",
			input:    "",
			expected: "Untitled Position",
		},
		{
			name:     "whitespace-only title falls back to default",
			input:    "   \t ",
			expected: "Untitled Position",
		},
		{
			name:     "seniority prefix moved",
			input:    "Senior Backend Engineer",
			expected: "Backend Engineer (Senior)",
		},
		{
			name:     "lead prefix moved",
			input:    "Lead Data Scientist",
			expected: "Data Scientist (Lead)",
		},
		{
			name:     "slashes become spaces",
			input:    "Frontend/Backend Developer",
			expected: "Frontend Backend Developer",
		},
		{
			name:     "pipes become spaces and whitespace collapses",
			input:    "QA  |  Automation",
			expected: "Quality Assurance Automation",
		},
		{
			name:     "devops casing fixed",
			input:    "DEVOPS ENGINEER",
			expected: "DevOps Engineer",
		},
		{
			name:     "acronyms preserved during title casing",
			input:    "ios developer",
			expected: "iOS Developer",
		},
		{
			name:     "ml abbreviation expanded",
			input:    "ML Engineer",
			expected: "Machine Learning Engineer",
		},
		{
			name:     "minor words lower-cased except first",
			input:    "head of engineering",
			expected: "Head of Engineering",
		},
		{
			name:     "jr abbreviation with dot",
			input:    "Jr. Sys Admin",
			expected: "System Administrator (Junior)",
		},
		{
			name:     "fullstack variants normalized",
			input:    "Fullstack Developer",
			expected: "Full Stack Developer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeJobTitle(tt.input))
		})
	}
}

func TestNormalizeJobTitle_Idempotent(t *testing.T) {
	inputs := []string{
		"Sr. Software Dev.",
		"Senior Backend Engineer",
		"DEVOPS ENGINEER",
		"head of engineering",
		"Frontend/Backend Developer",
	}

	for _, input := range inputs {
		once := NormalizeJobTitle(input)
		twice := NormalizeJobTitle(once)
		assert.Equal(t, once, twice, "normalizing %q twice must be stable", input)
	}
}
