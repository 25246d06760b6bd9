// Package availability answers "is period P on date D available at location L"
// over the slot data returned by the branches API. The two backend slot shapes
// (day-part labels for home visits, 24-hour clock times for branches) are
// resolved into uniform per-date period sets once, at ingestion.
package availability

import (
	"sort"

	"github.com/cashforcars/CFC-AppointmentService/internal/domain"
)

type locationEntry struct {
	location *domain.Location

	// periods maps ISO date -> set of day-part labels present on that date.
	// Home slots contribute their stored label verbatim so that availability
	// checks stay an exact string match; branch slots contribute the period
	// derived from their clock hour.
	periods map[string]map[domain.Period]struct{}

	// slots maps ISO date -> that day's records sorted by clock time
	slots map[string][]domain.SlotRecord
}

// Index is an immutable availability lookup built from ranked locations
type Index struct {
	entries   map[int64]*locationEntry
	malformed int
}

// NewIndex ingests the locations' raw availability into a queryable index.
// Date keys are normalized (the backend's midnight suffix is stripped) and
// each slot is classified once. Branch slots whose clock time derives hour 0
// fall outside every bucket and are counted as malformed.
func NewIndex(locations []domain.Location) *Index {
	idx := &Index{entries: make(map[int64]*locationEntry, len(locations))}

	for i := range locations {
		loc := &locations[i]
		entry := &locationEntry{
			location: loc,
			periods:  make(map[string]map[domain.Period]struct{}, len(loc.Availability)),
			slots:    make(map[string][]domain.SlotRecord, len(loc.Availability)),
		}

		for key, records := range loc.Availability {
			if len(records) == 0 {
				continue
			}
			date := domain.NormalizeISODate(key)

			daySlots := make([]domain.SlotRecord, len(records))
			copy(daySlots, records)
			sort.SliceStable(daySlots, func(a, b int) bool {
				return daySlots[a].ClockTime < daySlots[b].ClockTime
			})
			entry.slots[date] = daySlots

			set := entry.periods[date]
			if set == nil {
				set = make(map[domain.Period]struct{}, len(domain.Periods))
				entry.periods[date] = set
			}
			for _, rec := range records {
				period, ok := rec.PeriodOf(loc.Kind)
				if !ok {
					idx.malformed++
					continue
				}
				set[period] = struct{}{}
			}
		}

		idx.entries[loc.ID] = entry
	}

	return idx
}

// IsAvailable reports whether the location offers any slot in the given
// period on the given ISO date. Unknown locations, dates without slot data
// and unrecognized period labels all answer false, never an error.
func (idx *Index) IsAvailable(locationID int64, isoDate string, period domain.Period) bool {
	entry, ok := idx.entries[locationID]
	if !ok {
		return false
	}
	set, ok := entry.periods[domain.NormalizeISODate(isoDate)]
	if !ok {
		return false
	}
	_, ok = set[period]
	return ok
}

// HasAnySlot reports whether the location offers at least one bookable
// period on the given date. Used to hide dates with no availability.
func (idx *Index) HasAnySlot(locationID int64, isoDate string) bool {
	for _, period := range domain.Periods {
		if idx.IsAvailable(locationID, isoDate, period) {
			return true
		}
	}
	return false
}

// AvailablePeriods returns the day parts bookable at the location on the
// given date, in display order
func (idx *Index) AvailablePeriods(locationID int64, isoDate string) []domain.Period {
	result := make([]domain.Period, 0, len(domain.Periods))
	for _, period := range domain.Periods {
		if idx.IsAvailable(locationID, isoDate, period) {
			result = append(result, period)
		}
	}
	return result
}

// TimesForDate returns a copy of the location's slot records for the date,
// sorted by clock time. Absent data yields an empty slice.
func (idx *Index) TimesForDate(locationID int64, isoDate string) []domain.SlotRecord {
	entry, ok := idx.entries[locationID]
	if !ok {
		return nil
	}
	daySlots, ok := entry.slots[domain.NormalizeISODate(isoDate)]
	if !ok {
		return nil
	}
	out := make([]domain.SlotRecord, len(daySlots))
	copy(out, daySlots)
	return out
}

// Location resolves a location by ID
func (idx *Index) Location(locationID int64) (*domain.Location, bool) {
	entry, ok := idx.entries[locationID]
	if !ok {
		return nil, false
	}
	return entry.location, true
}

// MalformedSlots counts ingested slots that classified into no period bucket
func (idx *Index) MalformedSlots() int {
	return idx.malformed
}
