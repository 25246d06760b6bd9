package get_calendar

import (
	"context"
	"time"

	"github.com/cashforcars/CFC-AppointmentService/internal/integrations/branchservice"
)

// BranchServiceClient fetches sellable-to locations for a journey
type BranchServiceClient interface {
	GetBranchesByVehicle(ctx context.Context, journeyID, zip string) ([]branchservice.Branch, error)
}

// TimeProvider supplies the current time (swappable in tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger interface for structured-ish printf logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
