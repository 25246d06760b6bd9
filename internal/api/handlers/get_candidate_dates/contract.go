package get_candidate_dates

import (
	"context"

	getCandidateDates "github.com/cashforcars/CFC-AppointmentService/internal/usecase/get_candidate_dates"
)

type GetCandidateDatesUseCase interface {
	Execute(ctx context.Context, req *getCandidateDates.Request) (*getCandidateDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
