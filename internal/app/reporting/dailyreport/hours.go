package dailyreport

import (
	"time"

	"github.com/dalemusser/welfarehub/internal/domain/models"
)

const clockLayout = "15:04"

// ParseClock parses an HH:MM wall-clock time into minutes after midnight.
func ParseClock(s string) (int, bool) {
	t, err := time.Parse(clockLayout, s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// ComputeSupportHours returns the fractional hours between arrival and
// departure on the same day. It is 0 when either time is missing or
// malformed, and when departure is before arrival (no overnight wrap).
func ComputeSupportHours(arrival, departure string) float64 {
	if arrival == "" || departure == "" {
		return 0
	}
	a, ok := ParseClock(arrival)
	if !ok {
		return 0
	}
	d, ok := ParseClock(departure)
	if !ok {
		return 0
	}
	if d <= a {
		return 0
	}
	return float64(d-a) / 60
}

// Attended is the editor's notion of attendance: at least one of arrival
// or departure is recorded. The KPI aggregator uses a stricter rule.
func Attended(cr models.ChildReport) bool {
	return cr.Arrival != "" || cr.Departure != ""
}
