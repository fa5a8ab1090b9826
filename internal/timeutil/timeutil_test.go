package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDayKey_SameCalendarDay verifies that any two timestamps on the same
// local calendar day normalize to an identical partition key.
func TestDayKey_SameCalendarDay(t *testing.T) {
	early := time.Date(2024, 1, 1, 0, 0, 1, 0, time.Local)
	late := time.Date(2024, 1, 1, 23, 59, 59, 0, time.Local)
	nextDay := time.Date(2024, 1, 2, 0, 0, 1, 0, time.Local)

	assert.Equal(t, DayKey(early), DayKey(late))
	assert.NotEqual(t, DayKey(early), DayKey(nextDay))
	assert.Equal(t, "2024-01-01", DayKey(early))
}

// TestDayKeys_InclusiveEnumeration verifies day enumeration over intervals.
func TestDayKeys_InclusiveEnumeration(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected []string
	}{
		{
			name:     "single day",
			start:    time.Date(2024, 3, 10, 8, 0, 0, 0, time.Local),
			end:      time.Date(2024, 3, 10, 22, 0, 0, 0, time.Local),
			expected: []string{"2024-03-10"},
		},
		{
			name:     "three days inclusive of both ends",
			start:    time.Date(2024, 3, 10, 23, 0, 0, 0, time.Local),
			end:      time.Date(2024, 3, 12, 1, 0, 0, 0, time.Local),
			expected: []string{"2024-03-10", "2024-03-11", "2024-03-12"},
		},
		{
			name:     "month boundary",
			start:    time.Date(2024, 1, 31, 12, 0, 0, 0, time.Local),
			end:      time.Date(2024, 2, 1, 12, 0, 0, 0, time.Local),
			expected: []string{"2024-01-31", "2024-02-01"},
		},
		{
			name:  "end before start yields nothing",
			start: time.Date(2024, 3, 12, 0, 0, 0, 0, time.Local),
			end:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.Local),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := DayKeys(Interval{Start: tt.start, End: tt.end})
			assert.Equal(t, tt.expected, keys)
		})
	}
}

// TestWeekInterval_MondayStart verifies that weeks run Monday through Sunday
// regardless of the reference day.
func TestWeekInterval_MondayStart(t *testing.T) {
	tests := []struct {
		name      string
		reference time.Time
		wantStart string
		wantEnd   string
	}{
		{
			// 2024-03-13 is a Wednesday.
			name:      "mid-week reference",
			reference: time.Date(2024, 3, 13, 15, 30, 0, 0, time.Local),
			wantStart: "2024-03-11",
			wantEnd:   "2024-03-17",
		},
		{
			// Monday references start their own week.
			name:      "monday reference",
			reference: time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local),
			wantStart: "2024-03-11",
			wantEnd:   "2024-03-17",
		},
		{
			// Sunday belongs to the week started the previous Monday.
			name:      "sunday reference",
			reference: time.Date(2024, 3, 17, 23, 59, 0, 0, time.Local),
			wantStart: "2024-03-11",
			wantEnd:   "2024-03-17",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv := WeekInterval(tt.reference)
			assert.Equal(t, tt.wantStart, DayKey(iv.Start))
			assert.Equal(t, tt.wantEnd, DayKey(iv.End))
			assert.Equal(t, time.Monday, iv.Start.Weekday())
			assert.Equal(t, time.Sunday, iv.End.Weekday())
		})
	}
}

// TestMonthInterval covers regular and leap months.
func TestMonthInterval(t *testing.T) {
	tests := []struct {
		name      string
		reference time.Time
		wantStart string
		wantEnd   string
	}{
		{
			name:      "thirty-one day month",
			reference: time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local),
			wantStart: "2024-01-01",
			wantEnd:   "2024-01-31",
		},
		{
			name:      "leap february",
			reference: time.Date(2024, 2, 2, 0, 0, 0, 0, time.Local),
			wantStart: "2024-02-01",
			wantEnd:   "2024-02-29",
		},
		{
			name:      "non-leap february",
			reference: time.Date(2023, 2, 28, 23, 0, 0, 0, time.Local),
			wantStart: "2023-02-01",
			wantEnd:   "2023-02-28",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv := MonthInterval(tt.reference)
			assert.Equal(t, tt.wantStart, DayKey(iv.Start))
			assert.Equal(t, tt.wantEnd, DayKey(iv.End))
		})
	}
}

// TestInterval_Contains verifies inclusive membership by calendar day.
func TestInterval_Contains(t *testing.T) {
	iv := Interval{
		Start: time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local),
		End:   time.Date(2024, 3, 17, 0, 0, 0, 0, time.Local),
	}

	require.True(t, iv.Contains(time.Date(2024, 3, 11, 0, 0, 1, 0, time.Local)))
	require.True(t, iv.Contains(time.Date(2024, 3, 17, 23, 59, 59, 0, time.Local)))
	require.False(t, iv.Contains(time.Date(2024, 3, 10, 23, 59, 59, 0, time.Local)))
	require.False(t, iv.Contains(time.Date(2024, 3, 18, 0, 0, 0, 0, time.Local)))
}

// TestFormatDuration verifies human-readable duration rendering, including
// the 1h30m25s case from the session duration math.
func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"hours minutes seconds", 5425000 * time.Millisecond, "1h 30m 25s"},
		{"zero minutes kept between units", 1*time.Hour + 25*time.Second, "1h 0m 25s"},
		{"minutes and seconds", 5*time.Minute + 2*time.Second, "5m 2s"},
		{"seconds only", 42 * time.Second, "42s"},
		{"zero", 0, "0s"},
		{"sub-second truncates", 900 * time.Millisecond, "0s"},
		{"negative clamps to zero", -3 * time.Second, "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDuration(tt.duration))
		})
	}
}
