package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLocation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Location
	}{
		{
			name:     "empty input yields default display",
			input:    "",
			expected: Location{Display: "Location Not Specified"},
		},
		{
			name:  "remote phrasing short-circuits",
			input: "Remote (US)",
			expected: Location{
				Raw:      "Remote (US)",
				IsRemote: true,
				Display:  "Remote",
			},
		},
		{
			name:  "work from home counts as remote",
			input: "Work from home",
			expected: Location{
				Raw:      "Work from home",
				IsRemote: true,
				Display:  "Remote",
			},
		},
		{
			name:  "single part is a city",
			input: "London",
			expected: Location{
				Raw:     "London",
				City:    "London",
				Display: "London",
			},
		},
		{
			name:  "two-letter second part is a state",
			input: "Austin, tx",
			expected: Location{
				Raw:     "Austin, tx",
				City:    "Austin",
				State:   "TX",
				Display: "Austin, TX",
			},
		},
		{
			name:  "longer second part is a country",
			input: "Berlin, Germany",
			expected: Location{
				Raw:     "Berlin, Germany",
				City:    "Berlin",
				Country: "Germany",
				Display: "Berlin, Germany",
			},
		},
		{
			name:  "three parts with redundant USA dropped from display",
			input: "San Francisco, CA, USA",
			expected: Location{
				Raw:     "San Francisco, CA, USA",
				City:    "San Francisco",
				State:   "CA",
				Country: "USA",
				Display: "San Francisco, CA",
			},
		},
		{
			name:  "united states dropped from display",
			input: "Seattle, WA, United States",
			expected: Location{
				Raw:     "Seattle, WA, United States",
				City:    "Seattle",
				State:   "WA",
				Country: "United States",
				Display: "Seattle, WA",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeLocation(tt.input))
		})
	}
}
