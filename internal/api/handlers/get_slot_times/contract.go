package get_slot_times

import (
	"context"

	getSlotTimes "github.com/cashforcars/CFC-AppointmentService/internal/usecase/get_slot_times"
)

type GetSlotTimesUseCase interface {
	Execute(ctx context.Context, req *getSlotTimes.Request) (*getSlotTimes.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
