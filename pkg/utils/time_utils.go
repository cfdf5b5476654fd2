package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	minutesPerDay = 24 * 60
	dayLayout     = "2006-01-02"
)

// TimeToMinutes parses an "HH:MM" 24-hour clock string into minutes since
// midnight.
func TimeToMinutes(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, ErrBadClock
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, ErrBadClock
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, ErrBadClock
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, ErrBadClock
	}
	return hours*60 + minutes, nil
}

// MinutesToTime renders minutes since midnight as a zero-padded "HH:MM".
// Values outside [0, 1440) wrap modulo one day, so 1530 renders as "01:30".
func MinutesToTime(minutes int) string {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// EndTime returns the clock time durationMinutes after start.
func EndTime(start string, durationMinutes int) (string, error) {
	startMinutes, err := TimeToMinutes(start)
	if err != nil {
		return "", err
	}
	return MinutesToTime(startMinutes + durationMinutes), nil
}

// ParseDay parses a "YYYY-MM-DD" date and pins it to 12:00 UTC. Differencing
// noon-anchored dates can never skip or double a calendar day across DST
// transitions.
func ParseDay(day string) (time.Time, error) {
	t, err := time.Parse(dayLayout, day)
	if err != nil {
		return time.Time{}, ErrBadDay
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC), nil
}

// FormatDay renders the canonical "YYYY-MM-DD" form. Returns "" for the zero
// time so callers decide how to display the absence.
func FormatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dayLayout)
}

// DayLabel renders a short display label, e.g. "Mon, Jun 3".
func DayLabel(t time.Time) string {
	return t.Format("Mon, Jan 2")
}
