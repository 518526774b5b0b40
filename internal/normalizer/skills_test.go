package normalizer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkillsFromDescription(t *testing.T) {
	tests := []struct {
		name        string
		description string
		existing    []string
		expected    []string
	}{
		{
			name:        "empty description and tags",
			description: "",
			existing:    nil,
			expected:    []string{},
		},
		{
			name:        "keywords found in text",
			description: "We use Python and Docker on AWS.",
			existing:    nil,
			expected:    []string{"Python", "AWS", "Docker"},
		},
		{
			name:        "punctuated keywords match",
			description: "Looking for C++ and C# experience, plus Node.js and CI/CD pipelines.",
			existing:    nil,
			expected:    []string{"C++", "C#", "Node.js", "CI/CD"},
		},
		{
			name:        "nodejs without dot matches",
			description: "Strong Nodejs background required.",
			existing:    nil,
			expected:    []string{"Node.js"},
		},
		{
			name:        "existing tags kept first and deduplicated case-insensitively",
			description: "Python and Kubernetes shop.",
			existing:    []string{"python", "Leadership"},
			expected:    []string{"python", "Leadership", "Kubernetes"},
		},
		{
			name:        "substring does not match",
			description: "We value transparency and integrity.",
			existing:    nil,
			expected:    []string{},
		},
		{
			name:        "empty existing tags skipped",
			description: "Rust services.",
			existing:    []string{"", "Rust"},
			expected:    []string{"Rust"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractSkillsFromDescription(tt.description, tt.existing))
		})
	}
}

func TestExtractSkillsFromDescription_Cap(t *testing.T) {
	existing := make([]string, 0, 25)
	for i := 0; i < 25; i++ {
		existing = append(existing, fmt.Sprintf("tag-%d", i))
	}

	skills := ExtractSkillsFromDescription("Python, Go, Rust, Docker", existing)
	assert.Len(t, skills, MaxSkillTags)
	assert.Equal(t, "tag-0", skills[0])
}
