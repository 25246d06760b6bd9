package get_candidate_dates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashforcars/CFC-AppointmentService/internal/domain"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{}) {}
func (noopLogger) Warn(string, ...interface{}) {}

func newTestUseCase(now time.Time) *UseCase {
	uc := NewUseCase(noopLogger{})
	uc.timeProvider = &fixedClock{now: now}
	return uc
}

func TestExecute_HomeHorizonIsTenConsecutiveDays(t *testing.T) {
	// Thursday
	uc := newTestUseCase(time.Date(2025, 12, 11, 10, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{Kind: domain.KindHome})
	require.NoError(t, err)

	require.Len(t, resp.Dates, domain.MaxDaysAhead)
	assert.Equal(t, "2025-12-11", resp.Dates[0].ISODate)
	assert.Equal(t, "2025-12-20", resp.Dates[len(resp.Dates)-1].ISODate)
}

func TestExecute_BranchHorizonSkipsWeekends(t *testing.T) {
	uc := newTestUseCase(time.Date(2025, 12, 11, 10, 0, 0, 0, time.UTC))

	resp, err := uc.Execute(context.Background(), &Request{Kind: domain.KindBranch})
	require.NoError(t, err)

	require.Len(t, resp.Dates, domain.MaxDaysAhead)
	for _, d := range resp.Dates {
		assert.NotEqual(t, "Saturday", d.Weekday)
		assert.NotEqual(t, "Sunday", d.Weekday)
	}
}

func TestExecute_InvalidKind(t *testing.T) {
	uc := newTestUseCase(time.Now())

	_, err := uc.Execute(context.Background(), &Request{Kind: "drive-in"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
