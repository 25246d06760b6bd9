package get_availability

import (
	"errors"
	"net/http"

	"github.com/cashforcars/CFC-AppointmentService/internal/api/handlers"
	getCalendar "github.com/cashforcars/CFC-AppointmentService/internal/usecase/get_calendar"
)

const (
	msgMissingJourneyID = "journeyId is required"
	msgInvalidOffset    = "offset must be an integer"
	msgInvalidParams    = "invalid query parameters"
	msgJourneyNotFound  = "journey not found"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/availability
// Query params: journeyId (required), kind (branch|home, default branch),
// offset (window start, default 0), zip (optional 5 digits)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	journeyID := query.Get("journeyId")
	if journeyID == "" {
		h.logger.Warn("GET /appointments/availability - Missing journey ID")
		handlers.RespondBadRequest(w, msgMissingJourneyID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(journeyID, query.Get("kind"), query.Get("offset"), query.Get("zip"))
	if err != nil {
		h.logger.Warn("GET /appointments/availability - Invalid offset: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOffset)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /appointments/availability - Invalid params: journey_id=%s, error=%v", journeyID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getCalendar.ErrJourneyNotFound):
			h.logger.Warn("GET /appointments/availability - Journey not found: journey_id=%s", journeyID)
			handlers.RespondNotFound(w, msgJourneyNotFound)

		default:
			h.logger.Error("GET /appointments/availability - Failed to build calendar: journey_id=%s, error=%v", journeyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/availability - Calendar built: journey_id=%s, locations=%d",
		journeyID, len(result.Locations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
