package get_branch_detail

import (
	"context"
	"errors"
	"fmt"

	branchClient "github.com/cashforcars/CFC-AppointmentService/internal/integrations/branchservice"
)

// UseCase serves the branch info card behind "Click for branch info"
type UseCase struct {
	branchClient BranchServiceClient
	logger       Logger
}

// NewUseCase creates a branch detail use case
func NewUseCase(branchClient BranchServiceClient, logger Logger) *UseCase {
	return &UseCase{branchClient: branchClient, logger: logger}
}

// Execute fetches the branch record and folds its weekly schedule
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetBranchDetail: branch=%d", req.BranchID)

	// 1. Validate the branch ID
	if req.BranchID <= 0 {
		uc.logger.Warn("GetBranchDetail: non-positive branch id=%d", req.BranchID)
		return nil, fmt.Errorf("%w: branchID must be positive", ErrInvalidInput)
	}

	// 2. Fetch the full branch record
	detail, err := uc.branchClient.GetBranchDetail(ctx, req.BranchID)
	if err != nil {
		if errors.Is(err, branchClient.ErrBranchNotFound) {
			uc.logger.Warn("GetBranchDetail: branch=%d not found", req.BranchID)
			return nil, ErrBranchNotFound
		}
		uc.logger.Error("GetBranchDetail: failed to fetch branch=%d: %v", req.BranchID, err)
		return nil, fmt.Errorf("%w: failed to fetch branch: %v", ErrInternal, err)
	}

	// 3. Fold the schedule into one line per weekday
	return &Response{
		Name:      detail.BranchName,
		Address:   detail.Address1,
		City:      detail.City,
		State:     detail.State,
		ZipCode:   detail.ZipCode,
		Phone:     detail.BranchPhone,
		Email:     detail.BranchEmail,
		Hours:     foldHours(detail.OperationHours),
		Latitude:  detail.Latitude,
		Longitude: detail.Longitude,
		ImageURL:  detail.BranchImageURL,
		MapURL:    detail.MapURL,
	}, nil
}
