package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/stroll/internal/constants"
)

// FormatDate returns the date string (YYYY-MM-DD) for the given instant.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Today returns today's date string (YYYY-MM-DD) in local time.
func Today() string {
	return FormatDate(time.Now())
}

// ParseDate parses a date string (YYYY-MM-DD) into a local-midnight time.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}

// IsToday reports whether the date string is today's local date.
func IsToday(dateStr string) bool {
	return dateStr == Today()
}

// LastNDays returns the trailing n calendar-day strings ending today,
// oldest first.
func LastNDays(n int, now time.Time) []string {
	days := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		days = append(days, FormatDate(now.AddDate(0, 0, -i)))
	}
	return days
}

// TimeUntilMidnight returns the duration from now until the next local
// midnight.
func TimeUntilMidnight(now time.Time) time.Duration {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	return midnight.Sub(now)
}

// FormatClock renders a second count as MM:SS for the countdown display.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// HourLabel renders an hour of day as a 12-hour clock label, e.g. "3 PM".
func HourLabel(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}

// ReadableDate renders a date string as "Today", "Yesterday", or a short
// weekday/month form for the history screen.
func ReadableDate(dateStr string, now time.Time) string {
	switch dateStr {
	case FormatDate(now):
		return "Today"
	case FormatDate(now.AddDate(0, 0, -1)):
		return "Yesterday"
	}
	t, err := ParseDate(dateStr)
	if err != nil {
		return dateStr
	}
	return t.Format("Mon Jan 2")
}
