package scheduling

import (
	"fmt"
	"time"
)

// Interval is a half-open time span [Start, Start+Duration) on a calendar
// date. Start and Duration are minutes; Start counts from midnight.
type Interval struct {
	Date     string
	Start    int
	Duration int
}

// End returns the exclusive end minute of the interval.
func (iv Interval) End() int {
	return iv.Start + iv.Duration
}

// Overlaps reports whether two intervals intersect. Intervals on different
// dates never overlap, and equal boundaries do not count: an appointment
// ending at T and another starting at T are back-to-back, not conflicting.
func (iv Interval) Overlaps(other Interval) bool {
	if iv.Date != other.Date {
		return false
	}
	return iv.Start < other.End() && other.Start < iv.End()
}

// NewInterval builds an interval from the wire representation: a "YYYY-MM-DD"
// date, a 24-hour "HH:MM" time and a positive duration in minutes.
func NewInterval(date, clock string, durationMinutes int) (Interval, error) {
	if _, err := ParseDate(date); err != nil {
		return Interval{}, err
	}
	start, err := ParseClock(clock)
	if err != nil {
		return Interval{}, err
	}
	if durationMinutes <= 0 {
		return Interval{}, &InvalidIntervalError{Field: "duration", Reason: "must be a positive number of minutes"}
	}
	return Interval{Date: date, Start: start, Duration: durationMinutes}, nil
}

// ParseDate validates a "YYYY-MM-DD" calendar date.
func ParseDate(date string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, &InvalidIntervalError{Field: "date", Reason: fmt.Sprintf("%q is not a valid YYYY-MM-DD date", date)}
	}
	return d, nil
}

// ParseClock converts a 24-hour "HH:MM" time-of-day to minutes from midnight.
func ParseClock(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, &InvalidIntervalError{Field: "time", Reason: fmt.Sprintf("%q is not a valid 24-hour HH:MM time", clock)}
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes from midnight back to "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
