package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/cashforcars/CFC-AppointmentService/internal/api/handlers"
	cancelAppointment "github.com/cashforcars/CFC-AppointmentService/internal/usecase/cancel_appointment"
)

const (
	msgMissingJourneyID = "journey ID is required"
	msgJourneyNotFound  = "journey not found"
	msgNothingToCancel  = "journey has no booked appointment"
)

type Handler struct {
	useCase CancelAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CancelAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{journeyId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	journeyID := mux.Vars(r)["journeyId"]
	if journeyID == "" {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Missing journey ID")
		handlers.RespondBadRequest(w, msgMissingJourneyID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelAppointment.Request{JourneyID: journeyID})
	if err != nil {
		switch {
		case errors.Is(err, cancelAppointment.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid journey ID: %q", journeyID)
			handlers.RespondBadRequest(w, msgMissingJourneyID)

		case errors.Is(err, cancelAppointment.ErrJourneyNotFound):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Journey not found: journey_id=%s", journeyID)
			handlers.RespondNotFound(w, msgJourneyNotFound)

		case errors.Is(err, cancelAppointment.ErrNothingToCancel):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Nothing to cancel: journey_id=%s", journeyID)
			handlers.RespondError(w, http.StatusConflict, msgNothingToCancel)

		default:
			h.logger.Error("PATCH /appointments/{id}/cancel - Failed to cancel: journey_id=%s, error=%v", journeyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/cancel - Cancelled: journey_id=%s, intents_removed=%d",
		journeyID, result.IntentsRemoved)
	handlers.RespondJSON(w, http.StatusOK, result)
}
