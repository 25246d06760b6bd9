package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashforcars/CFC-AppointmentService/internal/domain"
)

func testLocations() []domain.Location {
	return []domain.Location{
		{ID: 156, Name: "Union", Kind: domain.KindBranch},
		{ID: 201, Name: "Newark", Kind: domain.KindBranch},
		{ID: 405, Name: "Mobile Unit", Kind: domain.KindHome},
	}
}

func TestSetKind_IncompatibleLocationClearsDownstream(t *testing.T) {
	locs := testLocations()
	s := New()

	require.NoError(t, s.SetLocation(156, locs))
	s.SetDate("2025-12-11")
	s.SetTime(domain.PeriodMorning)
	require.Equal(t, StateTimeChosen, s.State())

	require.NoError(t, s.SetKind(domain.KindHome, locs))

	// Branch location, date and time are gone; the sole home unit is
	// auto-selected in its place.
	require.NotNil(t, s.LocationID)
	assert.Equal(t, int64(405), *s.LocationID)
	assert.Empty(t, s.ISODate)
	assert.Empty(t, s.Period)
}

func TestSetKind_CompatibleLocationKept(t *testing.T) {
	locs := testLocations()
	s := New()

	require.NoError(t, s.SetLocation(156, locs))
	s.SetDate("2025-12-11")

	require.NoError(t, s.SetKind(domain.KindBranch, locs))
	require.NotNil(t, s.LocationID)
	assert.Equal(t, int64(156), *s.LocationID)
	assert.Equal(t, "2025-12-11", s.ISODate)
}

func TestSetKind_HomeWithoutHomeUnit(t *testing.T) {
	locs := []domain.Location{{ID: 156, Kind: domain.KindBranch}}
	s := New()
	require.NoError(t, s.SetLocation(156, locs))

	require.NoError(t, s.SetKind(domain.KindHome, locs))
	assert.Nil(t, s.LocationID)
	assert.Equal(t, StateKindChosen, s.State())
}

func TestSetKind_Invalid(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.SetKind("drive-through", nil), ErrInvalidKind)
}

func TestSetLocation_ClearsDateAndTime(t *testing.T) {
	locs := testLocations()
	s := New()

	require.NoError(t, s.SetLocation(156, locs))
	s.SetDate("2025-12-11")
	s.SetTime(domain.PeriodAfternoon)

	require.NoError(t, s.SetLocation(201, locs))
	assert.Empty(t, s.ISODate)
	assert.Empty(t, s.Period)

	assert.ErrorIs(t, s.SetLocation(999, locs), ErrUnknownLocation)
}

func TestSetDate_ClearsTime(t *testing.T) {
	locs := testLocations()
	s := New()
	require.NoError(t, s.SetLocation(156, locs))
	s.SetDate("2025-12-11")
	s.SetTime(domain.PeriodEvening)

	s.SetDate("2025-12-12")
	assert.Empty(t, s.Period)
}

func TestCanSubmit_Branch(t *testing.T) {
	locs := testLocations()
	s := New()
	require.NoError(t, s.SetLocation(156, locs))
	s.SetDate("2025-12-11")
	s.SetTime(domain.PeriodMorning)
	assert.False(t, s.CanSubmit())

	s.SetContact("Dana", "Reyes", "(973) 555 0142", true)
	assert.True(t, s.CanSubmit())
	assert.Equal(t, StateContactComplete, s.State())
}

func TestCanSubmit_HomeRequiresAddress(t *testing.T) {
	locs := testLocations()
	s := New()
	require.NoError(t, s.SetKind(domain.KindHome, locs))
	s.SetDate("2025-12-13")
	s.SetTime(domain.PeriodMorning)
	s.SetContact("Dana", "Reyes", "9735550142", false)
	assert.False(t, s.CanSubmit())

	s.SetAddress("12 Oak St", "", "Union", "NJ, 07083")
	assert.True(t, s.CanSubmit())
}

func TestValidatePhone_RecoverableFieldError(t *testing.T) {
	locs := testLocations()
	s := New()
	require.NoError(t, s.SetLocation(156, locs))
	s.SetDate("2025-12-11")
	s.SetTime(domain.PeriodMorning)
	s.SetContact("Dana", "Reyes", "555-0142", true)

	assert.ErrorIs(t, s.ValidatePhone(), ErrInvalidPhone)
	assert.False(t, s.CanSubmit())

	// Other fields stay editable; fixing the phone unblocks submission
	s.SetContact("Dana", "Reyes", "(973) 555 0142", true)
	assert.NoError(t, s.ValidatePhone())
	assert.True(t, s.CanSubmit())
}
