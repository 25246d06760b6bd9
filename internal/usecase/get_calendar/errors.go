package get_calendar

import "errors"

var (
	// ErrInvalidInput is returned for malformed request parameters
	ErrInvalidInput = errors.New("invalid input data")

	// ErrJourneyNotFound is returned when the backend knows no vehicle for
	// the given journey
	ErrJourneyNotFound = errors.New("journey not found")

	// ErrInternal is returned for internal usecase failures
	ErrInternal = errors.New("usecase: internal error")
)
