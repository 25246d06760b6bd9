package get_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/cashforcars/CFC-AppointmentService/internal/availability"
	"github.com/cashforcars/CFC-AppointmentService/internal/domain"
	branchClient "github.com/cashforcars/CFC-AppointmentService/internal/integrations/branchservice"
	"github.com/cashforcars/CFC-AppointmentService/internal/ranking"
	"github.com/cashforcars/CFC-AppointmentService/internal/schedule"
)

// UseCase builds the ranked appointment calendar for one customer journey
type UseCase struct {
	branchClient BranchServiceClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates a calendar use case
func NewUseCase(branchClient BranchServiceClient, logger Logger) *UseCase {
	return &UseCase{
		branchClient: branchClient,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute builds the calendar window for the requested kind and offset
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: journey=%s, kind=%s, offset=%d", req.JourneyID, req.Kind, req.Offset)

	// 1. Validate request parameters
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Fetch sellable-to locations for the journey's vehicle
	branches, err := uc.branchClient.GetBranchesByVehicle(ctx, req.JourneyID, req.Zip)
	if err != nil {
		if errors.Is(err, branchClient.ErrJourneyNotFound) {
			uc.logger.Warn("GetCalendar: journey=%s not found", req.JourneyID)
			return nil, ErrJourneyNotFound
		}
		uc.logger.Error("GetCalendar: failed to fetch branches for journey=%s: %v", req.JourneyID, err)
		return nil, fmt.Errorf("%w: failed to fetch branches: %v", ErrInternal, err)
	}

	// 3. Convert, filter by kind and rank: home unit first, then by distance
	locations := ranking.Rank(ranking.FilterByKind(branchClient.ToDomainLocations(branches), req.Kind))

	// 4. Index slot availability, resolving the per-kind slot shape once
	index := availability.NewIndex(locations)
	if malformed := index.MalformedSlots(); malformed > 0 {
		uc.logger.Warn("GetCalendar: journey=%s carries %d slots outside any day part", req.JourneyID, malformed)
	}

	// 5. Clamp the window offset and generate candidate dates
	pager := schedule.NewPager(req.Offset)
	dates := schedule.CandidateDates(uc.timeProvider.Now(), pager.Offset(), domain.WindowSize, req.Kind)

	// 6. Assemble the grid. Neighbor offsets come from the pager itself so
	// the published values stay on the window stride.
	next, prev := *pager, *pager
	resp := &Response{
		JourneyID: req.JourneyID,
		Kind:      string(req.Kind),
		Dates:     buildDateColumns(dates),
		Locations: buildLocationRows(locations, dates, index),
		Pager: PagerState{
			Offset:     pager.Offset(),
			CanAdvance: pager.CanAdvance(),
			CanRetreat: pager.CanRetreat(),
			NextOffset: next.Advance(),
			PrevOffset: prev.Retreat(),
		},
	}

	uc.logger.Info("GetCalendar: journey=%s, %d locations over %d dates", req.JourneyID, len(resp.Locations), len(resp.Dates))
	return resp, nil
}

func buildDateColumns(dates []domain.CandidateDate) []DateColumn {
	columns := make([]DateColumn, len(dates))
	for i, d := range dates {
		columns[i] = DateColumn{
			Weekday: d.Weekday,
			Display: d.Display,
			ISODate: d.ISODate,
		}
	}
	return columns
}

func buildLocationRows(locations []domain.Location, dates []domain.CandidateDate, index *availability.Index) []LocationRow {
	rows := make([]LocationRow, len(locations))
	for i := range locations {
		loc := &locations[i]
		days := make([]DayCell, len(dates))
		for j, d := range dates {
			days[j] = DayCell{
				ISODate:   d.ISODate,
				Morning:   index.IsAvailable(loc.ID, d.ISODate, domain.PeriodMorning),
				Afternoon: index.IsAvailable(loc.ID, d.ISODate, domain.PeriodAfternoon),
				Evening:   index.IsAvailable(loc.ID, d.ISODate, domain.PeriodEvening),
			}
		}
		rows[i] = LocationRow{
			ID:            loc.ID,
			Name:          loc.Name,
			Address:       loc.Address,
			Phone:         loc.Phone,
			Kind:          string(loc.Kind),
			DistanceMiles: loc.DistanceOrSentinel(),
			Days:          days,
		}
	}
	return rows
}
