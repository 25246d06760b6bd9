package get_slot_times

import (
	"context"

	"github.com/cashforcars/CFC-AppointmentService/internal/integrations/branchservice"
)

// BranchServiceClient fetches sellable-to locations for a journey
type BranchServiceClient interface {
	GetBranchesByVehicle(ctx context.Context, journeyID, zip string) ([]branchservice.Branch, error)
}

// Logger interface for printf logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
