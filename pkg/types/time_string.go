package types

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeString represents a time of day in "HH:MM" format
type TimeString string

// NewTimeString creates a TimeString from a time.Time
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString creates a TimeString from a raw string, validating the format
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse("15:04", s); err != nil {
		return "", fmt.Errorf("invalid time string %q: %w", s, err)
	}
	return TimeString(s), nil
}

// String returns the time as "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// Hour returns the hour component (0-23)
func (t TimeString) Hour() int {
	parsed, err := time.Parse("15:04", string(t))
	if err != nil {
		return 0
	}
	return parsed.Hour()
}

// Minute returns the minute component (0-59)
func (t TimeString) Minute() int {
	parsed, err := time.Parse("15:04", string(t))
	if err != nil {
		return 0
	}
	return parsed.Minute()
}

// IsBefore reports whether t is strictly earlier in the day than other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.totalMinutes() < other.totalMinutes()
}

// IsAfter reports whether t is strictly later in the day than other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.totalMinutes() > other.totalMinutes()
}

// AddMinutes returns a new TimeString shifted forward by the given number of minutes.
// Returns an error if the result would roll past midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	total := t.totalMinutes() + minutes
	if total >= 24*60 {
		return "", fmt.Errorf("time %s + %d minutes rolls past midnight", t, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// Format12Hour returns the time in 12-hour display format, e.g. "4:00 PM"
func (t TimeString) Format12Hour() string {
	hour := t.Hour()
	minute := t.Minute()
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, minute, period)
}

func (t TimeString) totalMinutes() int {
	parts := strings.SplitN(string(t), ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return h*60 + m
}
