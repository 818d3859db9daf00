package analytics

import (
	"fmt"
	"time"
)

// Period is a rolling time window bounding aggregation.
type Period string

const (
	Period7d  Period = "7d"
	Period30d Period = "30d"
	Period90d Period = "90d"
	Period1y  Period = "1y"
)

// DefaultPeriod is used when a request leaves the period unspecified.
const DefaultPeriod = Period30d

// ParsePeriod validates a period string. Empty input falls back to
// DefaultPeriod; anything else unknown is an error.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case "":
		return DefaultPeriod, nil
	case Period7d, Period30d, Period90d, Period1y:
		return Period(s), nil
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// Days returns the number of days the period spans.
func (p Period) Days() int {
	switch p {
	case Period7d:
		return 7
	case Period30d:
		return 30
	case Period90d:
		return 90
	case Period1y:
		return 365
	}
	return 30
}

// Start returns the inclusive lower bound of the window ending at now:
// midnight UTC of the first calendar day in the window.
func (p Period) Start(now time.Time) time.Time {
	day := now.UTC().Truncate(24 * time.Hour)
	return day.AddDate(0, 0, -(p.Days() - 1))
}
