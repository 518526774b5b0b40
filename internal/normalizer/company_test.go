package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCompanyName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected CompanyName
	}{
		{
			name:  "legal suffix split and The prefix stripped",
			input: "The Widget Co., Inc.",
			expected: CompanyName{
				Name:        "Widget Co",
				LegalSuffix: "Inc.",
				DisplayName: "Widget Co Inc.",
			},
		},
		{
			name:  "empty input falls back to default",
			input: "",
			expected: CompanyName{
				Name:        "Unknown Company",
				DisplayName: "Unknown Company",
			},
		},
		{
			name:  "llc suffix",
			input: "Acme Widgets LLC",
			expected: CompanyName{
				Name:        "Acme Widgets",
				LegalSuffix: "LLC",
				DisplayName: "Acme Widgets LLC",
			},
		},
		{
			name:  "gmbh suffix",
			input: "Beispiel GmbH",
			expected: CompanyName{
				Name:        "Beispiel",
				LegalSuffix: "GmbH",
				DisplayName: "Beispiel GmbH",
			},
		},
		{
			name:  "no suffix",
			input: "Initech",
			expected: CompanyName{
				Name:        "Initech",
				DisplayName: "Initech",
			},
		},
		{
			name:  "trademark glyphs removed",
			input: "Initech™",
			expected: CompanyName{
				Name:        "Initech",
				DisplayName: "Initech",
			},
		},
		{
			name:  "mixed casing preserved",
			input: "eBay Inc",
			expected: CompanyName{
				Name:        "eBay",
				LegalSuffix: "Inc",
				DisplayName: "eBay Inc",
			},
		},
		{
			name:  "uniform upper casing title-cased",
			input: "ACME WIDGETS",
			expected: CompanyName{
				Name:        "Acme Widgets",
				DisplayName: "Acme Widgets",
			},
		},
		{
			name:  "whitespace collapsed",
			input: "  Wide   Gap   Ltd ",
			expected: CompanyName{
				Name:        "Wide Gap",
				LegalSuffix: "Ltd",
				DisplayName: "Wide Gap Ltd",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeCompanyName(tt.input))
		})
	}
}

func TestNormalizeCompanyName_Idempotent(t *testing.T) {
	inputs := []string{"ACME WIDGETS", "eBay Inc", "Initech"}

	for _, input := range inputs {
		once := NormalizeCompanyName(input)
		twice := NormalizeCompanyName(once.Name)
		assert.Equal(t, once.Name, twice.Name, "normalizing %q twice must be stable", input)
	}
}
