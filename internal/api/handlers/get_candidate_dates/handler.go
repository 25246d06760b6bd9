package get_candidate_dates

import (
	"errors"
	"net/http"

	"github.com/cashforcars/CFC-AppointmentService/internal/api/handlers"
	"github.com/cashforcars/CFC-AppointmentService/internal/domain"
	getCandidateDates "github.com/cashforcars/CFC-AppointmentService/internal/usecase/get_candidate_dates"
)

const msgInvalidKind = "kind must be branch or home"

type Handler struct {
	useCase GetCandidateDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetCandidateDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/dates
// Query params: kind (branch|home, default branch)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	kind := domain.KindBranch
	if kindStr := r.URL.Query().Get("kind"); kindStr != "" {
		kind = domain.LocationKind(kindStr)
	}

	result, err := h.useCase.Execute(r.Context(), &getCandidateDates.Request{Kind: kind})
	if err != nil {
		switch {
		case errors.Is(err, getCandidateDates.ErrInvalidInput):
			h.logger.Warn("GET /appointments/dates - Invalid kind: %q", kind)
			handlers.RespondBadRequest(w, msgInvalidKind)

		default:
			h.logger.Error("GET /appointments/dates - Failed to list dates: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/dates - %d dates listed for kind=%s", len(result.Dates), kind)
	handlers.RespondJSON(w, http.StatusOK, result)
}
