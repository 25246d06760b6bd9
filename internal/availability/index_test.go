package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashforcars/CFC-AppointmentService/internal/domain"
)

func branchSlots(clocks ...string) []domain.SlotRecord {
	slots := make([]domain.SlotRecord, len(clocks))
	for i, c := range clocks {
		slots[i] = domain.SlotRecord{ID: int64(i + 1), ClockTime: c}
	}
	return slots
}

func testLocations() []domain.Location {
	return []domain.Location{
		{
			ID:   405,
			Name: "NNJ1 Mobile Purchase Unit II",
			Kind: domain.KindHome,
			Availability: map[string][]domain.SlotRecord{
				"2025-12-11T00:00:00": {
					{ID: 5, Period: domain.PeriodMorning},
					{ID: 11, Period: domain.PeriodAfternoon},
					{ID: 22, Period: domain.PeriodEvening},
				},
				"2025-12-12T00:00:00": {
					{ID: 3, Period: domain.PeriodMorning},
					{ID: 11, Period: domain.PeriodAfternoon},
				},
			},
		},
		{
			ID:   156,
			Name: "Union",
			Kind: domain.KindBranch,
			Availability: map[string][]domain.SlotRecord{
				"2025-12-11T00:00:00": branchSlots(
					"11:00", "12:00", "13:00", "15:00", "16:00", "17:00", "18:00", "19:00",
				),
				"2025-12-12": branchSlots("10:00", "11:00", "12:00", "14:00"),
			},
		},
	}
}

func TestIsAvailable_HomeExactPeriodMatch(t *testing.T) {
	idx := NewIndex(testLocations())

	assert.True(t, idx.IsAvailable(405, "2025-12-11", domain.PeriodMorning))
	assert.True(t, idx.IsAvailable(405, "2025-12-11", domain.PeriodEvening))
	assert.True(t, idx.IsAvailable(405, "2025-12-12", domain.PeriodAfternoon))
	assert.False(t, idx.IsAvailable(405, "2025-12-12", domain.PeriodEvening))

	// Exact enum match: a lowercase label never matches
	assert.False(t, idx.IsAvailable(405, "2025-12-11", domain.Period("morning")))
}

func TestIsAvailable_BranchDerivedPeriods(t *testing.T) {
	idx := NewIndex(testLocations())

	// Slots at 11:00 (Morning), 12:00-17:00 (Afternoon), 18:00+ (Evening)
	assert.True(t, idx.IsAvailable(156, "2025-12-11", domain.PeriodMorning))
	assert.True(t, idx.IsAvailable(156, "2025-12-11", domain.PeriodAfternoon))
	assert.True(t, idx.IsAvailable(156, "2025-12-11", domain.PeriodEvening))

	// Date with no data and unknown location both answer false
	assert.False(t, idx.IsAvailable(156, "2025-12-13", domain.PeriodMorning))
	assert.False(t, idx.IsAvailable(999, "2025-12-11", domain.PeriodMorning))
}

func TestIsAvailable_ClassificationBoundaries(t *testing.T) {
	cases := []struct {
		clock  string
		period domain.Period
	}{
		{"09:00", domain.PeriodMorning},
		{"11:00", domain.PeriodMorning},
		{"12:00", domain.PeriodAfternoon},
		{"17:00", domain.PeriodAfternoon},
		{"18:00", domain.PeriodEvening},
		{"19:00", domain.PeriodEvening},
	}

	for _, tc := range cases {
		t.Run(tc.clock, func(t *testing.T) {
			idx := NewIndex([]domain.Location{{
				ID:   1,
				Kind: domain.KindBranch,
				Availability: map[string][]domain.SlotRecord{
					"2025-12-11": branchSlots(tc.clock),
				},
			}})

			for _, p := range domain.Periods {
				assert.Equal(t, p == tc.period, idx.IsAvailable(1, "2025-12-11", p),
					"clock %s period %s", tc.clock, p)
			}
		})
	}
}

func TestIsAvailable_EarlyHoursClassifyNowhere(t *testing.T) {
	idx := NewIndex([]domain.Location{{
		ID:   1,
		Kind: domain.KindBranch,
		Availability: map[string][]domain.SlotRecord{
			"2025-12-11": branchSlots("08:00", "00:30"),
		},
	}})

	for _, p := range domain.Periods {
		assert.False(t, idx.IsAvailable(1, "2025-12-11", p))
	}
	assert.False(t, idx.HasAnySlot(1, "2025-12-11"))
}

func TestNewIndex_MalformedClockTimes(t *testing.T) {
	idx := NewIndex([]domain.Location{{
		ID:   1,
		Kind: domain.KindBranch,
		Availability: map[string][]domain.SlotRecord{
			"2025-12-11": {
				{ID: 1, ClockTime: "not-a-time"},
				{ID: 2, ClockTime: ""},
				{ID: 3, ClockTime: "14:00"},
			},
		},
	}})

	// Malformed clock times default to hour 0 and land in no bucket
	assert.Equal(t, 2, idx.MalformedSlots())
	assert.True(t, idx.IsAvailable(1, "2025-12-11", domain.PeriodAfternoon))
	assert.False(t, idx.IsAvailable(1, "2025-12-11", domain.PeriodMorning))
}

func TestIsAvailable_EmptySlotListAnswersFalse(t *testing.T) {
	idx := NewIndex([]domain.Location{{
		ID:   1,
		Kind: domain.KindHome,
		Availability: map[string][]domain.SlotRecord{
			"2025-12-11": {},
		},
	}})

	assert.False(t, idx.IsAvailable(1, "2025-12-11", domain.PeriodMorning))
}

func TestIsAvailable_AcceptsMidnightSuffixQueries(t *testing.T) {
	idx := NewIndex(testLocations())

	assert.True(t, idx.IsAvailable(405, "2025-12-11T00:00:00", domain.PeriodMorning))
}

func TestTimesForDate_SortedByClock(t *testing.T) {
	idx := NewIndex([]domain.Location{{
		ID:   1,
		Kind: domain.KindBranch,
		Availability: map[string][]domain.SlotRecord{
			"2025-12-11": branchSlots("15:00", "09:00", "12:00"),
		},
	}})

	slots := idx.TimesForDate(1, "2025-12-11")
	require.Len(t, slots, 3)
	assert.Equal(t, "09:00", slots[0].ClockTime)
	assert.Equal(t, "12:00", slots[1].ClockTime)
	assert.Equal(t, "15:00", slots[2].ClockTime)

	assert.Empty(t, idx.TimesForDate(1, "2025-12-25"))
	assert.Empty(t, idx.TimesForDate(42, "2025-12-11"))
}

func TestAvailablePeriods_DisplayOrder(t *testing.T) {
	idx := NewIndex(testLocations())

	periods := idx.AvailablePeriods(156, "2025-12-11")
	assert.Equal(t, []domain.Period{domain.PeriodMorning, domain.PeriodAfternoon, domain.PeriodEvening}, periods)

	periods = idx.AvailablePeriods(405, "2025-12-12")
	assert.Equal(t, []domain.Period{domain.PeriodMorning, domain.PeriodAfternoon}, periods)
}
