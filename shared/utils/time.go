package utils

import (
	"fmt"
	"time"
)

// TimeFormat defines the standard time format used across the application
const TimeFormat = "2006-01-02T15:04:05Z07:00"

// DateFormat defines the format for date-only fields such as incident and
// policy effective dates.
const DateFormat = "2006-01-02"

// FormatTime formats a time.Time to the standard string format
func FormatTime(t time.Time) string {
	return t.Format(TimeFormat)
}

// ParseTime parses a time string in the standard format
func ParseTime(timeStr string) (time.Time, error) {
	t, err := time.Parse(TimeFormat, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse time %s: %v", timeStr, err)
	}
	return t, nil
}

// GetCurrentTimeString returns the current time as a formatted string
func GetCurrentTimeString() string {
	return FormatTime(time.Now())
}

// IsValidTimeRange checks if start time is before end time
func IsValidTimeRange(start, end time.Time) error {
	if start.After(end) {
		return fmt.Errorf("start time %s is after end time %s", FormatTime(start), FormatTime(end))
	}
	return nil
}

// DaysBetween returns the number of whole days from start to end.
func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsFutureDate reports whether t falls on a calendar day after today.
func IsFutureDate(t time.Time) bool {
	return StartOfDay(t).After(StartOfDay(time.Now()))
}
