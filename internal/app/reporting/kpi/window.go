package kpi

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dalemusser/welfarehub/internal/domain/models"
)

// Window is a dashboard lookback period in days.
type Window int

const (
	Last7Days  Window = 7
	Last30Days Window = 30
)

// ParseWindow accepts "7" or "30". Empty means Last7Days.
func ParseWindow(s string) (Window, error) {
	if s == "" {
		return Last7Days, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("window %q: %w", s, err)
	}
	switch Window(n) {
	case Last7Days, Last30Days:
		return Window(n), nil
	}
	return 0, fmt.Errorf("window must be 7 or 30, got %d", n)
}

// Range returns the inclusive date range of the window ending on now's
// calendar day. A zero Window spans Last7Days.
func (w Window) Range(now time.Time) (from, to string) {
	n := int(w)
	if n < 1 {
		n = int(Last7Days)
	}
	y, m, d := now.Date()
	end := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	start := end.AddDate(0, 0, -(n - 1))
	return start.Format(models.DateLayout), end.Format(models.DateLayout)
}

// weekly reports whether the trend groups by week instead of by day.
func (w Window) weekly() bool { return w >= Last30Days }

// bucketKey maps a report date to its trend bucket: the date itself, or
// the Sunday that starts its week.
func (w Window) bucketKey(date string) (string, bool) {
	t, err := time.Parse(models.DateLayout, date)
	if err != nil {
		return "", false
	}
	if w.weekly() {
		t = t.AddDate(0, 0, -int(t.Weekday()))
	}
	return t.Format(models.DateLayout), true
}
