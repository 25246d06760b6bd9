package get_branch_detail

import "errors"

var (
	// ErrInvalidInput is returned for a non-positive branch ID
	ErrInvalidInput = errors.New("invalid input data")

	// ErrBranchNotFound is returned when the branch does not exist
	ErrBranchNotFound = errors.New("branch not found")

	// ErrInternal is returned for internal usecase failures
	ErrInternal = errors.New("usecase: internal error")
)
