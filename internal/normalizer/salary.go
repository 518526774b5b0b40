package normalizer

import "strings"

// Salary periods.
const (
	PeriodYearly  = "yearly"
	PeriodMonthly = "monthly"
	PeriodHourly  = "hourly"
)

// Salary is a normalized salary range. AnnualMin and AnnualMax carry the
// bounds converted to yearly amounts; nil means the bound is absent.
type Salary struct {
	Min       *float64
	Max       *float64
	Period    string
	AnnualMin *float64
	AnnualMax *float64
}

// NormalizeSalary canonicalizes a salary range. An unknown or missing period
// defaults to yearly; hourly amounts annualize at 40 hours over 52 weeks and
// monthly amounts multiply by 12. When both annualized bounds are present and
// inverted they are swapped, so AnnualMin <= AnnualMax always holds.
func NormalizeSalary(min, max *float64, period string) Salary {
	normalizedPeriod := PeriodYearly
	switch strings.ToLower(period) {
	case PeriodHourly:
		normalizedPeriod = PeriodHourly
	case PeriodMonthly:
		normalizedPeriod = PeriodMonthly
	}

	s := Salary{
		Min:       min,
		Max:       max,
		Period:    normalizedPeriod,
		AnnualMin: annualize(min, normalizedPeriod),
		AnnualMax: annualize(max, normalizedPeriod),
	}

	if s.AnnualMin != nil && s.AnnualMax != nil && *s.AnnualMin > *s.AnnualMax {
		s.AnnualMin, s.AnnualMax = s.AnnualMax, s.AnnualMin
	}

	return s
}

func annualize(amount *float64, period string) *float64 {
	if amount == nil {
		return nil
	}
	annual := *amount
	switch period {
	case PeriodHourly:
		annual = annual * 40 * 52
	case PeriodMonthly:
		annual = annual * 12
	}
	return &annual
}
