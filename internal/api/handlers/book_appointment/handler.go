package book_appointment

import (
	"errors"
	"net/http"

	"github.com/cashforcars/CFC-AppointmentService/internal/api/handlers"
	bookAppointment "github.com/cashforcars/CFC-AppointmentService/internal/usecase/book_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidParams      = "invalid appointment parameters"
	msgInvalidPhone       = "phone must contain exactly 10 digits"
	msgJourneyNotFound    = "journey not found"
	msgLocationNotFound   = "location not found"
	msgSlotUnavailable    = "selected slot is no longer available"
)

type Handler struct {
	useCase BookAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase BookAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, bookAppointment.ErrInvalidPhone):
			h.logger.Warn("POST /appointments - Invalid phone: journey_id=%s", req.JourneyID)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, bookAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid params: journey_id=%s, error=%v", req.JourneyID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, bookAppointment.ErrJourneyNotFound):
			h.logger.Warn("POST /appointments - Journey not found: journey_id=%s", req.JourneyID)
			handlers.RespondNotFound(w, msgJourneyNotFound)

		case errors.Is(err, bookAppointment.ErrLocationNotFound):
			h.logger.Warn("POST /appointments - Location not found: journey_id=%s, location_id=%d",
				req.JourneyID, req.LocationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, bookAppointment.ErrSlotUnavailable):
			h.logger.Warn("POST /appointments - Slot unavailable: journey_id=%s, location_id=%d, date=%s, period=%s",
				req.JourneyID, req.LocationID, req.Date, req.Period)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		default:
			h.logger.Error("POST /appointments - Failed to dispatch booking: journey_id=%s, error=%v",
				req.JourneyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if result.AlreadyBooked {
		status = http.StatusOK
	}

	h.logger.Info("POST /appointments - Booking dispatched: journey_id=%s, intent_id=%s, already_booked=%t",
		req.JourneyID, result.IntentID, result.AlreadyBooked)
	handlers.RespondJSON(w, status, result)
}
