package get_branch_detail

import (
	"context"

	"github.com/cashforcars/CFC-AppointmentService/internal/integrations/branchservice"
)

// BranchServiceClient fetches the full branch record
type BranchServiceClient interface {
	GetBranchDetail(ctx context.Context, branchID int64) (*branchservice.BranchDetail, error)
}

// Logger interface for printf logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
