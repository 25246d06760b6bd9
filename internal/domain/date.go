package domain

import (
	"strings"
	"time"
)

// CandidateDate is one selectable day in the booking window
type CandidateDate struct {
	Weekday      string // "Sunday".."Saturday"
	Display      string // DD/MM/YYYY
	ISODate      string // YYYY-MM-DD
	WeekdayIndex int    // 0=Sunday..6=Saturday
}

// NewCandidateDate builds a CandidateDate for the given calendar day
func NewCandidateDate(t time.Time) CandidateDate {
	return CandidateDate{
		Weekday:      t.Weekday().String(),
		Display:      t.Format(DisplayFormat),
		ISODate:      t.Format(DateFormat),
		WeekdayIndex: int(t.Weekday()),
	}
}

// IsWeekday reports whether the date falls on Monday through Friday
func (d CandidateDate) IsWeekday() bool {
	return d.WeekdayIndex >= 1 && d.WeekdayIndex <= 5
}

// NormalizeISODate reduces a backend date key to a bare ISO date.
// The branches API keys slot maps with a fixed midnight suffix
// ("2025-12-11T00:00:00"); bare "2025-12-11" keys pass through unchanged.
func NormalizeISODate(key string) string {
	if head, _, found := strings.Cut(key, "T"); found {
		return head
	}
	return key
}

// FormatDisplayDate renders an ISO date as "Weekday DD/MM/YYYY" for
// confirmation messages. Unparseable input is returned verbatim.
func FormatDisplayDate(isoDate string) string {
	t, err := time.Parse(DateFormat, isoDate)
	if err != nil {
		return isoDate
	}
	return t.Weekday().String() + " " + t.Format(DisplayFormat)
}
