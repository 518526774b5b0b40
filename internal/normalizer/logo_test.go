package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompanyLogoURL(t *testing.T) {
	tests := []struct {
		name       string
		company    string
		companyURL string
		expected   string
	}{
		{
			name:     "empty company yields empty",
			company:  "",
			expected: "",
		},
		{
			name:       "domain taken from company url",
			company:    "Acme",
			companyURL: "https://www.acme.com/about",
			expected:   "https://logo.clearbit.com/acme.com",
		},
		{
			name:       "www prefix stripped",
			company:    "Acme",
			companyURL: "https://www.jobs.acme.io",
			expected:   "https://logo.clearbit.com/jobs.acme.io",
		},
		{
			name:     "slug guessed from company name",
			company:  "Initech Systems",
			expected: "https://logo.clearbit.com/initechsystems.com",
		},
		{
			name:     "legal suffix excluded from slug",
			company:  "Acme Widgets LLC",
			expected: "https://logo.clearbit.com/acmewidgets.com",
		},
		{
			name:     "symbols-only name yields empty",
			company:  "***",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompanyLogoURL(tt.company, tt.companyURL))
		})
	}
}
