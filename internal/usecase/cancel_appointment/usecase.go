package cancel_appointment

import (
	"context"
	"errors"
	"fmt"

	journeyClient "github.com/cashforcars/CFC-AppointmentService/internal/integrations/journeyservice"
)

// UseCase cancels a journey's booked appointment: the upstream record is
// cancelled first, then the stored intents are removed so the slot can be
// dispatched again.
type UseCase struct {
	intentRepo    IntentRepository
	journeyClient JourneyServiceClient
	logger        Logger
}

// NewUseCase creates a cancellation use case
func NewUseCase(intentRepo IntentRepository, journeyClient JourneyServiceClient, logger Logger) *UseCase {
	return &UseCase{
		intentRepo:    intentRepo,
		journeyClient: journeyClient,
		logger:        logger,
	}
}

// Execute cancels the journey's appointment
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelAppointment: journey=%s", req.JourneyID)

	// 1. Validate
	if req.JourneyID == "" {
		return nil, fmt.Errorf("%w: journeyID is required", ErrInvalidInput)
	}

	// 2. Confirm the journey exists
	if _, err := uc.journeyClient.GetJourney(ctx, req.JourneyID); err != nil {
		if errors.Is(err, journeyClient.ErrJourneyNotFound) {
			uc.logger.Warn("CancelAppointment: journey=%s not found", req.JourneyID)
			return nil, ErrJourneyNotFound
		}
		uc.logger.Error("CancelAppointment: failed to get journey=%s: %v", req.JourneyID, err)
		return nil, fmt.Errorf("%w: failed to get journey: %v", ErrInternal, err)
	}

	// 3. The journey must hold at least one stored intent
	intents, err := uc.intentRepo.GetByJourney(ctx, req.JourneyID)
	if err != nil {
		uc.logger.Error("CancelAppointment: failed to list intents for journey=%s: %v", req.JourneyID, err)
		return nil, fmt.Errorf("%w: failed to list intents: %v", ErrInternal, err)
	}
	if len(intents) == 0 {
		uc.logger.Warn("CancelAppointment: journey=%s holds no intent", req.JourneyID)
		return nil, ErrNothingToCancel
	}

	// 4. Cancel upstream before touching local state
	if err := uc.journeyClient.CancelAppointment(ctx, req.JourneyID); err != nil {
		uc.logger.Error("CancelAppointment: upstream cancel failed for journey=%s: %v", req.JourneyID, err)
		return nil, fmt.Errorf("%w: failed to cancel appointment: %v", ErrInternal, err)
	}

	// 5. Remove the stored intents so the slot is dispatchable again
	removed := 0
	for _, intent := range intents {
		if err := uc.intentRepo.Delete(ctx, intent.ID); err != nil {
			uc.logger.Error("CancelAppointment: failed to remove intent=%s: %v", intent.PublicID, err)
			continue
		}
		removed++
	}

	uc.logger.Info("CancelAppointment: journey=%s cancelled, %d intents removed", req.JourneyID, removed)
	return &Response{JourneyID: req.JourneyID, IntentsRemoved: removed}, nil
}
