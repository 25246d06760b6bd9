// Package schedule produces the candidate dates shown in the booking
// calendar and drives pagination over the bounded look-ahead window.
package schedule

import (
	"time"

	"github.com/cashforcars/CFC-AppointmentService/internal/domain"
)

// TimeProvider supplies the wall clock (injectable for tests)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider is the production wall clock
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// includeDay applies the per-kind weekday policy: home visits run every day,
// branch appointments only Monday through Friday.
func includeDay(day time.Time, kind domain.LocationKind) bool {
	if kind == domain.KindHome {
		return true
	}
	weekday := int(day.Weekday())
	return weekday >= 1 && weekday <= 5
}

// CandidateDates walks forward from now+startOffset days and collects up to
// count qualifying dates for the given appointment kind. The walk is capped
// at startOffset+2*count scanned days so a pathological calendar cannot loop
// forever. Results are only valid for the call's wall-clock instant.
func CandidateDates(now time.Time, startOffset, count int, kind domain.LocationKind) []domain.CandidateDate {
	dates := make([]domain.CandidateDate, 0, count)
	offset := startOffset

	for len(dates) < count && offset < startOffset+2*count {
		day := now.AddDate(0, 0, offset)
		if includeDay(day, kind) {
			dates = append(dates, domain.NewCandidateDate(day))
		}
		offset++
	}

	return dates
}

// AllCandidateDates collects the full-horizon date list for the single-step
// selection mode: up to MaxDaysAhead qualifying dates within an
// AllDatesScanLimit-day scan starting today, independent of pagination.
func AllCandidateDates(now time.Time, kind domain.LocationKind) []domain.CandidateDate {
	dates := make([]domain.CandidateDate, 0, domain.MaxDaysAhead)
	offset := 0

	for len(dates) < domain.MaxDaysAhead && offset < domain.AllDatesScanLimit {
		day := now.AddDate(0, 0, offset)
		if includeDay(day, kind) {
			dates = append(dates, domain.NewCandidateDate(day))
		}
		offset++
	}

	return dates
}
