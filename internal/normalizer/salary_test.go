package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(f float64) *float64 { return &f }

func TestNormalizeSalary(t *testing.T) {
	tests := []struct {
		name    string
		min     *float64
		max     *float64
		period  string
		wantMin *float64
		wantMax *float64
		wantPer string
	}{
		{
			name:    "hourly annualized at 40 hours 52 weeks",
			min:     fptr(50),
			max:     fptr(70),
			period:  "hourly",
			wantMin: fptr(104000),
			wantMax: fptr(145600),
			wantPer: "hourly",
		},
		{
			name:    "monthly annualized by 12",
			min:     fptr(5000),
			max:     fptr(8000),
			period:  "monthly",
			wantMin: fptr(60000),
			wantMax: fptr(96000),
			wantPer: "monthly",
		},
		{
			name:    "yearly passes through",
			min:     fptr(100000),
			max:     fptr(150000),
			period:  "yearly",
			wantMin: fptr(100000),
			wantMax: fptr(150000),
			wantPer: "yearly",
		},
		{
			name:    "unknown period defaults to yearly",
			min:     fptr(90000),
			max:     fptr(120000),
			period:  "fortnightly",
			wantMin: fptr(90000),
			wantMax: fptr(120000),
			wantPer: "yearly",
		},
		{
			name:    "period casing ignored",
			min:     fptr(60),
			max:     nil,
			period:  "Hourly",
			wantMin: fptr(124800),
			wantMax: nil,
			wantPer: "hourly",
		},
		{
			name:    "inverted bounds swapped",
			min:     fptr(150000),
			max:     fptr(100000),
			period:  "yearly",
			wantMin: fptr(100000),
			wantMax: fptr(150000),
			wantPer: "yearly",
		},
		{
			name:    "absent bounds stay absent",
			min:     nil,
			max:     nil,
			period:  "",
			wantMin: nil,
			wantMax: nil,
			wantPer: "yearly",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NormalizeSalary(tt.min, tt.max, tt.period)

			assert.Equal(t, tt.wantPer, s.Period)

			if tt.wantMin == nil {
				assert.Nil(t, s.AnnualMin)
			} else {
				require.NotNil(t, s.AnnualMin)
				assert.Equal(t, *tt.wantMin, *s.AnnualMin)
			}

			if tt.wantMax == nil {
				assert.Nil(t, s.AnnualMax)
			} else {
				require.NotNil(t, s.AnnualMax)
				assert.Equal(t, *tt.wantMax, *s.AnnualMax)
			}
		})
	}
}

func TestNormalizeSalary_OrderInvariant(t *testing.T) {
	s := NormalizeSalary(fptr(70), fptr(1000), "hourly")
	require.NotNil(t, s.AnnualMin)
	require.NotNil(t, s.AnnualMax)
	assert.LessOrEqual(t, *s.AnnualMin, *s.AnnualMax)
}
