package get_branch_detail

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/cashforcars/CFC-AppointmentService/internal/api/handlers"
	getBranchDetail "github.com/cashforcars/CFC-AppointmentService/internal/usecase/get_branch_detail"
)

const (
	msgInvalidBranchID = "invalid branch ID"
	msgBranchNotFound  = "branch not found"
)

type Handler struct {
	useCase GetBranchDetailUseCase
	logger  Logger
}

func NewHandler(useCase GetBranchDetailUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/branches/{branchId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branchIDStr := mux.Vars(r)["branchId"]
	branchID, err := strconv.ParseInt(branchIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /branches/{id} - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getBranchDetail.Request{BranchID: branchID})
	if err != nil {
		switch {
		case errors.Is(err, getBranchDetail.ErrInvalidInput):
			h.logger.Warn("GET /branches/{id} - Invalid branch ID: branch_id=%d", branchID)
			handlers.RespondBadRequest(w, msgInvalidBranchID)

		case errors.Is(err, getBranchDetail.ErrBranchNotFound):
			h.logger.Warn("GET /branches/{id} - Branch not found: branch_id=%d", branchID)
			handlers.RespondNotFound(w, msgBranchNotFound)

		default:
			h.logger.Error("GET /branches/{id} - Failed to fetch branch: branch_id=%d, error=%v", branchID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /branches/{id} - Branch detail served: branch_id=%d", branchID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
