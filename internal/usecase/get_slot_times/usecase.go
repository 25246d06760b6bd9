package get_slot_times

import (
	"context"
	"errors"
	"fmt"

	"github.com/cashforcars/CFC-AppointmentService/internal/availability"
	"github.com/cashforcars/CFC-AppointmentService/internal/domain"
	branchClient "github.com/cashforcars/CFC-AppointmentService/internal/integrations/branchservice"
	"github.com/cashforcars/CFC-AppointmentService/pkg/types"
)

// UseCase lists the concrete bookable times of one location-day, the
// drill-down behind a period cell on the calendar grid
type UseCase struct {
	branchClient BranchServiceClient
	logger       Logger
}

// NewUseCase creates a slot-times use case
func NewUseCase(branchClient BranchServiceClient, logger Logger) *UseCase {
	return &UseCase{
		branchClient: branchClient,
		logger:       logger,
	}
}

// Execute resolves the day's slot times for the location
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSlotTimes: journey=%s, location=%d, date=%s", req.JourneyID, req.LocationID, req.Date)

	// 1. Validate request parameters
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSlotTimes: validation failed: %v", err)
		return nil, err
	}

	// 2. Fetch sellable-to locations with their availability
	branches, err := uc.branchClient.GetBranchesByVehicle(ctx, req.JourneyID, "")
	if err != nil {
		if errors.Is(err, branchClient.ErrJourneyNotFound) {
			uc.logger.Warn("GetSlotTimes: journey=%s not found", req.JourneyID)
			return nil, ErrJourneyNotFound
		}
		uc.logger.Error("GetSlotTimes: failed to fetch branches for journey=%s: %v", req.JourneyID, err)
		return nil, fmt.Errorf("%w: failed to fetch branches: %v", ErrInternal, err)
	}

	// 3. Index availability and resolve the location
	index := availability.NewIndex(branchClient.ToDomainLocations(branches))
	loc, ok := index.Location(req.LocationID)
	if !ok {
		uc.logger.Warn("GetSlotTimes: location=%d not offered to journey=%s", req.LocationID, req.JourneyID)
		return nil, ErrLocationNotFound
	}

	// 4. List the day's slots in clock order
	slots := index.TimesForDate(req.LocationID, req.Date)
	times := make([]SlotTime, len(slots))
	for i, s := range slots {
		times[i] = SlotTime{SlotID: s.ID, Display: displaySlot(loc.Kind, s)}
	}

	periods := index.AvailablePeriods(req.LocationID, req.Date)
	labels := make([]string, len(periods))
	for i, p := range periods {
		labels[i] = string(p)
	}

	uc.logger.Info("GetSlotTimes: journey=%s, location=%d, date=%s, %d times", req.JourneyID, req.LocationID, req.Date, len(times))
	return &Response{
		LocationID: req.LocationID,
		Date:       req.Date,
		Periods:    labels,
		Times:      times,
	}, nil
}

// displaySlot renders a branch clock time in 12-hour form; home slots
// show their day-part label. Unparseable clock values pass through.
func displaySlot(kind domain.LocationKind, s domain.SlotRecord) string {
	if kind == domain.KindHome {
		return string(s.Period)
	}
	if ts, err := types.NewTimeStringFromString(s.ClockTime); err == nil {
		return ts.Format12Hour()
	}
	return s.ClockTime
}
