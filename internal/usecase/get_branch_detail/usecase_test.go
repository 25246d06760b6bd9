package get_branch_detail

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashforcars/CFC-AppointmentService/internal/integrations/branchservice"
	"github.com/cashforcars/CFC-AppointmentService/pkg/ptr"
)

type stubBranchClient struct {
	detail *branchservice.BranchDetail
	err    error
}

func (s *stubBranchClient) GetBranchDetail(context.Context, int64) (*branchservice.BranchDetail, error) {
	return s.detail, s.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestExecute_FoldsOperationHours(t *testing.T) {
	detail := &branchservice.BranchDetail{
		BranchName:  "Downtown",
		Address1:    "500 Main St",
		City:        "Springfield",
		State:       "IL",
		ZipCode:     "62704",
		BranchPhone: "(555) 010-0030",
		OperationHours: []branchservice.OperationHour{
			{DayOfWeek: "Monday", Type: "open", OpenTime: ptr.Ptr("09:00"), CloseTime: ptr.Ptr("18:00")},
			{DayOfWeek: "tuesday", Type: "open", OpenTime: ptr.Ptr("09:00"), CloseTime: ptr.Ptr("12:00")},
			{DayOfWeek: "tuesday", Type: "open", OpenTime: ptr.Ptr("13:00"), CloseTime: ptr.Ptr("18:00")},
			{DayOfWeek: "Sunday", Type: "closed"},
		},
	}
	uc := NewUseCase(&stubBranchClient{detail: detail}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BranchID: 30})
	require.NoError(t, err)

	assert.Equal(t, "Downtown", resp.Name)
	require.Len(t, resp.Hours, 7)

	assert.Equal(t, DayHours{Day: "Monday", Hours: "9:00 AM - 6:00 PM"}, resp.Hours[0])
	assert.Equal(t, DayHours{Day: "Tuesday", Hours: "9:00 AM - 12:00 PM, 1:00 PM - 6:00 PM"}, resp.Hours[1])
	// days without an open row fold to Closed
	assert.Equal(t, DayHours{Day: "Wednesday", Hours: "Closed"}, resp.Hours[2])
	assert.Equal(t, DayHours{Day: "Sunday", Hours: "Closed"}, resp.Hours[6])
}

func TestExecute_BranchNotFound(t *testing.T) {
	uc := NewUseCase(&stubBranchClient{err: branchservice.ErrBranchNotFound}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BranchID: 404})
	assert.ErrorIs(t, err, ErrBranchNotFound)
}

func TestExecute_InvalidBranchID(t *testing.T) {
	uc := NewUseCase(&stubBranchClient{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BranchID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_UpstreamFailure(t *testing.T) {
	uc := NewUseCase(&stubBranchClient{err: branchservice.ErrInternal}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BranchID: 30})
	assert.ErrorIs(t, err, ErrInternal)
}
