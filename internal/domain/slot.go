package domain

import (
	"strconv"
	"strings"
)

// Period is the coarse time-of-day bucket offered to customers
type Period string

const (
	PeriodMorning   Period = "Morning"
	PeriodAfternoon Period = "Afternoon"
	PeriodEvening   Period = "Evening"
)

// Periods lists the bookable day parts in display order
var Periods = []Period{PeriodMorning, PeriodAfternoon, PeriodEvening}

// IsValid reports whether p is one of the three known day parts.
// Comparison is case-sensitive: "morning" is not a valid period.
func (p Period) IsValid() bool {
	return p == PeriodMorning || p == PeriodAfternoon || p == PeriodEvening
}

// SlotRecord is one unit of backend-provided bookable time.
// It is a tagged union resolved at ingestion: home locations carry an explicit
// Period label, branch locations carry a 24-hour ClockTime from which the
// period is derived.
type SlotRecord struct {
	ID        int64
	Period    Period // set for home locations
	ClockTime string // "HH:MM", set for branch locations
}

// ClockHour extracts the hour from a 24-hour "HH:MM" clock string.
// Malformed or missing values yield 0, which classifies into no period bucket.
func ClockHour(clock string) int {
	head, _, found := strings.Cut(clock, ":")
	if !found {
		head = clock
	}
	hour, err := strconv.Atoi(head)
	if err != nil || hour < 0 {
		return 0
	}
	return hour
}

// PeriodForClock classifies a branch clock time into a day part.
// The second return value is false when the hour lands in no bucket.
func PeriodForClock(clock string) (Period, bool) {
	hour := ClockHour(clock)
	switch {
	case hour >= MorningStartHour && hour < AfternoonStartHour:
		return PeriodMorning, true
	case hour >= AfternoonStartHour && hour < EveningStartHour:
		return PeriodAfternoon, true
	case hour >= EveningStartHour:
		return PeriodEvening, true
	default:
		return "", false
	}
}

// PeriodOf resolves the day part of a slot record according to the owning
// location's kind. Home slots use their stored label, branch slots derive it
// from the clock time.
func (s SlotRecord) PeriodOf(kind LocationKind) (Period, bool) {
	if kind == KindHome {
		return s.Period, s.Period != ""
	}
	return PeriodForClock(s.ClockTime)
}
