package book_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/cashforcars/CFC-AppointmentService/internal/availability"
	"github.com/cashforcars/CFC-AppointmentService/internal/domain"
	intentRepo "github.com/cashforcars/CFC-AppointmentService/internal/infra/storage/intent"
	branchClient "github.com/cashforcars/CFC-AppointmentService/internal/integrations/branchservice"
	journeyClient "github.com/cashforcars/CFC-AppointmentService/internal/integrations/journeyservice"
	"github.com/cashforcars/CFC-AppointmentService/internal/ranking"
)

// UseCase dispatches a confirmed slot selection: it stores a booking intent
// and attaches the appointment to the customer journey. Dispatch is
// idempotent per (journey, location, date, period).
type UseCase struct {
	intentRepo    IntentRepository
	branchClient  BranchServiceClient
	journeyClient JourneyServiceClient
	logger        Logger
}

// NewUseCase creates a booking dispatch use case
func NewUseCase(
	intentRepo IntentRepository,
	branchClient BranchServiceClient,
	journeyClient JourneyServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		intentRepo:    intentRepo,
		branchClient:  branchClient,
		journeyClient: journeyClient,
		logger:        logger,
	}
}

// Execute validates the selection, gates it against current availability and
// dispatches exactly one booking per identical selection
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BookAppointment: journey=%s, location=%d, date=%s, period=%s",
		req.JourneyID, req.LocationID, req.ISODate, req.Period)

	// 1. Validate request shape
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BookAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Confirm the journey exists
	journey, err := uc.journeyClient.GetJourney(ctx, req.JourneyID)
	if err != nil {
		if errors.Is(err, journeyClient.ErrJourneyNotFound) {
			uc.logger.Warn("BookAppointment: journey=%s not found", req.JourneyID)
			return nil, ErrJourneyNotFound
		}
		uc.logger.Error("BookAppointment: failed to get journey=%s: %v", req.JourneyID, err)
		return nil, fmt.Errorf("%w: failed to get journey: %v", ErrInternal, err)
	}

	// 3. Fetch the journey's sellable-to locations
	branches, err := uc.branchClient.GetBranchesByVehicle(ctx, req.JourneyID, req.Zip)
	if err != nil {
		if errors.Is(err, branchClient.ErrJourneyNotFound) {
			uc.logger.Warn("BookAppointment: journey=%s unknown to branch backend", req.JourneyID)
			return nil, ErrJourneyNotFound
		}
		uc.logger.Error("BookAppointment: failed to fetch branches for journey=%s: %v", req.JourneyID, err)
		return nil, fmt.Errorf("%w: failed to fetch branches: %v", ErrInternal, err)
	}
	locations := ranking.Rank(branchClient.ToDomainLocations(branches))

	// 4. Replay the selection through the state machine
	sel, err := buildSelection(req, locations)
	if err != nil {
		uc.logger.Warn("BookAppointment: selection rejected for journey=%s: %v", req.JourneyID, err)
		return nil, err
	}

	// 5. A repeat of an identical selection resolves to the stored intent,
	// even when the backend no longer lists the slot
	existing, err := uc.intentRepo.GetByTriple(ctx, req.JourneyID, req.LocationID, req.ISODate, req.Period)
	if err != nil && !errors.Is(err, intentRepo.ErrIntentNotFound) {
		uc.logger.Error("BookAppointment: failed to check existing intent: %v", err)
		return nil, fmt.Errorf("%w: failed to check existing intent: %v", ErrInternal, err)
	}
	if existing != nil {
		uc.logger.Info("BookAppointment: journey=%s already holds intent=%s for this slot",
			req.JourneyID, existing.PublicID)
		return buildResponse(existing, true), nil
	}

	// 6. Gate against a freshly built availability index
	index := availability.NewIndex(locations)
	if !index.IsAvailable(req.LocationID, req.ISODate, req.Period) {
		uc.logger.Warn("BookAppointment: slot gone, journey=%s, location=%d, date=%s, period=%s",
			req.JourneyID, req.LocationID, req.ISODate, req.Period)
		return nil, ErrSlotUnavailable
	}
	location, _ := index.Location(req.LocationID)

	// 7. Store the intent
	record := &domain.BookingIntent{
		PublicID:     uuid.NewString(),
		JourneyID:    journey.ID,
		LocationID:   location.ID,
		LocationName: location.Name,
		Kind:         sel.Kind,
		ISODate:      req.ISODate,
		Period:       req.Period,
		BranchPhone:  location.Phone,
		FirstName:    sel.FirstName,
		LastName:     sel.LastName,
		Phone:        domain.FormatPhone(sel.Phone),
		SMSOptIn:     sel.SMSOptIn,
		Address1:     sel.Address1,
		Address2:     sel.Address2,
		City:         sel.City,
		StateZip:     sel.StateZip,
	}
	created, err := uc.intentRepo.Create(ctx, record)
	if err != nil {
		uc.logger.Error("BookAppointment: failed to store intent: %v", err)
		return nil, fmt.Errorf("%w: failed to store intent: %v", ErrInternal, err)
	}

	// 8. Attach the appointment to the journey; on failure the stored
	// intent is rolled back so a retry can dispatch cleanly
	submission := &journeyClient.AppointmentSubmission{
		LocationID:   created.LocationID,
		LocationName: created.LocationName,
		Date:         created.ISODate,
		DateDisplay:  created.DisplayDate(),
		Time:         string(created.Period),
		Phone:        created.BranchPhone,
		Type:         string(created.Kind),
		FirstName:    created.FirstName,
		LastName:     created.LastName,
		Telephone:    created.Phone,
		ReceiveSMS:   created.SMSOptIn,
		Address1:     created.Address1,
		Address2:     created.Address2,
		City:         created.City,
		StateZip:     created.StateZip,
	}
	if err := uc.journeyClient.SubmitAppointment(ctx, created.JourneyID, submission); err != nil {
		uc.logger.Error("BookAppointment: submit failed for intent=%s: %v", created.PublicID, err)
		if delErr := uc.intentRepo.Delete(ctx, created.ID); delErr != nil {
			uc.logger.Error("BookAppointment: rollback of intent=%s failed: %v", created.PublicID, delErr)
		}
		return nil, fmt.Errorf("%w: failed to submit appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("BookAppointment: dispatched intent=%s for journey=%s", created.PublicID, created.JourneyID)
	return buildResponse(created, false), nil
}

func buildResponse(record *domain.BookingIntent, alreadyBooked bool) *Response {
	return &Response{
		IntentID:      record.PublicID,
		JourneyID:     record.JourneyID,
		LocationID:    record.LocationID,
		LocationName:  record.LocationName,
		Kind:          string(record.Kind),
		Date:          record.ISODate,
		DateDisplay:   record.DisplayDate(),
		Period:        string(record.Period),
		BranchPhone:   record.BranchPhone,
		AlreadyBooked: alreadyBooked,
		CreatedAt:     record.CreatedAt,
	}
}
