// Package timeutil provides calendar math for the review engine and the
// secondary indexes: day partition keys, inclusive day/week/month intervals,
// and human-readable duration formatting.
//
// All day keys are computed in the timestamp's own location, so two
// timestamps on the same local calendar day always normalize to an identical
// key regardless of their time component.
package timeutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/mrz1836/pulse/internal/constants"
)

// Interval is an inclusive calendar date range. Start and End are both
// normalized to midnight of their respective days.
type Interval struct {
	// Start is midnight of the first day in the range.
	Start time.Time `json:"start"`

	// End is midnight of the last day in the range.
	End time.Time `json:"end"`
}

// Contains reports whether the day of t falls inside the interval.
func (iv Interval) Contains(t time.Time) bool {
	d := StartOfDay(t)
	return !d.Before(iv.Start) && !d.After(iv.End)
}

// DayKey returns the partition key for the calendar day of t, in t's own
// location (e.g. "2026-08-29").
func DayKey(t time.Time) string {
	return t.Format(constants.DayKeyLayout)
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayKeys enumerates the partition key of every calendar day from start to
// end inclusive. Returns nil when end's day precedes start's day.
func DayKeys(iv Interval) []string {
	var keys []string
	for d := StartOfDay(iv.Start); !d.After(StartOfDay(iv.End)); d = d.AddDate(0, 0, 1) {
		keys = append(keys, DayKey(d))
	}
	return keys
}

// DayInterval returns the single-day interval containing t.
func DayInterval(t time.Time) Interval {
	d := StartOfDay(t)
	return Interval{Start: d, End: d}
}

// WeekInterval returns the calendar week containing t, inclusive of both
// ends. Weeks start on constants.WeekStartDay.
func WeekInterval(t time.Time) Interval {
	d := StartOfDay(t)
	offset := (int(d.Weekday()) - int(constants.WeekStartDay) + 7) % 7
	start := d.AddDate(0, 0, -offset)
	return Interval{Start: start, End: start.AddDate(0, 0, 6)}
}

// MonthInterval returns the calendar month containing t, inclusive of both
// ends.
func MonthInterval(t time.Time) Interval {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return Interval{Start: start, End: start.AddDate(0, 1, -1)}
}

// FormatDuration renders a duration as whole hours, minutes and seconds,
// omitting leading zero units: "1h 30m 25s", "5m 2s", "42s". Durations under
// one second (including negative ones) render as "0s".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	var parts []string
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 || hours > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	parts = append(parts, fmt.Sprintf("%ds", seconds))

	return strings.Join(parts, " ")
}
