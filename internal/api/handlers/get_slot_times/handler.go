package get_slot_times

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/cashforcars/CFC-AppointmentService/internal/api/handlers"
	getSlotTimes "github.com/cashforcars/CFC-AppointmentService/internal/usecase/get_slot_times"
)

const (
	msgMissingJourneyID = "journeyId query parameter is required"
	msgInvalidLocation  = "locationId must be a positive integer"
	msgInvalidRequest   = "invalid query parameters"
	msgJourneyNotFound  = "journey not found"
	msgLocationNotFound = "location not found"
)

type Handler struct {
	useCase GetSlotTimesUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotTimesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/times
// Query params: journeyId (required), locationId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	journeyID := query.Get("journeyId")
	if journeyID == "" {
		h.logger.Warn("GET /appointments/times - Missing journey ID")
		handlers.RespondBadRequest(w, msgMissingJourneyID)
		return
	}

	locationID, err := strconv.ParseInt(query.Get("locationId"), 10, 64)
	if err != nil || locationID <= 0 {
		h.logger.Warn("GET /appointments/times - Invalid location ID: %q", query.Get("locationId"))
		handlers.RespondBadRequest(w, msgInvalidLocation)
		return
	}

	req := &getSlotTimes.Request{
		JourneyID:  journeyID,
		LocationID: locationID,
		Date:       query.Get("date"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getSlotTimes.ErrInvalidInput):
			h.logger.Warn("GET /appointments/times - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, getSlotTimes.ErrJourneyNotFound):
			h.logger.Warn("GET /appointments/times - Journey not found: journey_id=%s", journeyID)
			handlers.RespondNotFound(w, msgJourneyNotFound)

		case errors.Is(err, getSlotTimes.ErrLocationNotFound):
			h.logger.Warn("GET /appointments/times - Location not found: journey_id=%s, location_id=%d", journeyID, locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		default:
			h.logger.Error("GET /appointments/times - Failed to list times: journey_id=%s, error=%v", journeyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/times - %d times listed: journey_id=%s, location_id=%d, date=%s",
		len(result.Times), journeyID, locationID, result.Date)
	handlers.RespondJSON(w, http.StatusOK, result)
}
