package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, ts.Hour())
	assert.Equal(t, 30, ts.Minute())

	_, err = NewTimeStringFromString("25:00")
	assert.Error(t, err)

	_, err = NewTimeStringFromString("9am")
	assert.Error(t, err)
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 12, 11, 14, 5, 0, 0, time.UTC))
	assert.Equal(t, "14:05", ts.String())
}

func TestOrdering(t *testing.T) {
	morning := TimeString("09:00")
	evening := TimeString("18:15")

	assert.True(t, morning.IsBefore(evening))
	assert.True(t, evening.IsAfter(morning))
	assert.False(t, morning.IsBefore(morning))
}

func TestAddMinutes(t *testing.T) {
	ts := TimeString("23:30")

	shifted, err := ts.AddMinutes(15)
	require.NoError(t, err)
	assert.Equal(t, "23:45", shifted.String())

	_, err = ts.AddMinutes(45)
	assert.Error(t, err)
}

func TestFormat12Hour(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"00:00", "12:00 AM"},
		{"09:05", "9:05 AM"},
		{"12:00", "12:00 PM"},
		{"18:15", "6:15 PM"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TimeString(tt.in).Format12Hour())
	}
}
