package get_candidate_dates

import (
	"context"
	"fmt"

	"github.com/cashforcars/CFC-AppointmentService/internal/domain"
	"github.com/cashforcars/CFC-AppointmentService/internal/schedule"
)

// UseCase lists every selectable date over the booking horizon
type UseCase struct {
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates a candidate dates use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute walks the horizon under the requested kind's scheduling rules
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCandidateDates: kind=%s", req.Kind)

	if !req.Kind.IsValid() {
		uc.logger.Warn("GetCandidateDates: invalid kind=%q", req.Kind)
		return nil, fmt.Errorf("%w: kind must be %q or %q", ErrInvalidInput, domain.KindBranch, domain.KindHome)
	}

	candidates := schedule.AllCandidateDates(uc.timeProvider.Now(), req.Kind)
	dates := make([]Date, len(candidates))
	for i, c := range candidates {
		dates[i] = Date{Weekday: c.Weekday, Display: c.Display, ISODate: c.ISODate}
	}

	return &Response{Kind: string(req.Kind), Dates: dates}, nil
}
