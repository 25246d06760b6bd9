package get_branch_detail

import (
	"context"

	getBranchDetail "github.com/cashforcars/CFC-AppointmentService/internal/usecase/get_branch_detail"
)

type GetBranchDetailUseCase interface {
	Execute(ctx context.Context, req *getBranchDetail.Request) (*getBranchDetail.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
