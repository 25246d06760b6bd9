package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashforcars/CFC-AppointmentService/internal/domain"
)

// 2025-12-11 is a Thursday
var thursday = time.Date(2025, 12, 11, 10, 30, 0, 0, time.UTC)

func TestCandidateDates_BranchSkipsWeekends(t *testing.T) {
	for offset := 0; offset <= 3; offset++ {
		dates := CandidateDates(thursday, offset, domain.WindowSize, domain.KindBranch)

		for _, d := range dates {
			assert.NotEqual(t, 0, d.WeekdayIndex, "Sunday in branch window at offset %d", offset)
			assert.NotEqual(t, 6, d.WeekdayIndex, "Saturday in branch window at offset %d", offset)
		}
	}
}

func TestCandidateDates_BranchWindowContents(t *testing.T) {
	dates := CandidateDates(thursday, 0, domain.WindowSize, domain.KindBranch)
	require.Len(t, dates, domain.WindowSize)

	// Thu 11, Fri 12, then Mon 15..Fri 19
	assert.Equal(t, "2025-12-11", dates[0].ISODate)
	assert.Equal(t, "Thursday", dates[0].Weekday)
	assert.Equal(t, "11/12/2025", dates[0].Display)
	assert.Equal(t, "2025-12-12", dates[1].ISODate)
	assert.Equal(t, "2025-12-15", dates[2].ISODate)
	assert.Equal(t, "2025-12-19", dates[6].ISODate)
}

func TestCandidateDates_HomeIncludesWeekend(t *testing.T) {
	dates := CandidateDates(thursday, 0, domain.WindowSize, domain.KindHome)
	require.Len(t, dates, domain.WindowSize)

	// Seven consecutive days from Thursday always span a weekend
	weekend := 0
	for i, d := range dates {
		assert.Equal(t, thursday.AddDate(0, 0, i).Format(domain.DateFormat), d.ISODate)
		if d.WeekdayIndex == 0 || d.WeekdayIndex == 6 {
			weekend++
		}
	}
	assert.Equal(t, 2, weekend)
}

func TestCandidateDates_ScanCap(t *testing.T) {
	// The walk never scans more than 2*count days, so the result can come
	// up short but the function always terminates.
	dates := CandidateDates(thursday, 0, 2, domain.KindBranch)
	assert.Len(t, dates, 2)
}

func TestAllCandidateDates_CollectsUpToHorizon(t *testing.T) {
	dates := AllCandidateDates(thursday, domain.KindBranch)
	require.Len(t, dates, domain.MaxDaysAhead)

	for _, d := range dates {
		assert.True(t, d.IsWeekday(), "weekend date %s in branch list", d.ISODate)
	}

	home := AllCandidateDates(thursday, domain.KindHome)
	require.Len(t, home, domain.MaxDaysAhead)
	// Home keeps every consecutive day, so the tenth date is today+9
	assert.Equal(t, thursday.AddDate(0, 0, 9).Format(domain.DateFormat), home[9].ISODate)
}
