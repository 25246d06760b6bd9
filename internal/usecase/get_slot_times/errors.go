package get_slot_times

import "errors"

var (
	// ErrInvalidInput is returned for malformed request parameters
	ErrInvalidInput = errors.New("invalid input data")

	// ErrJourneyNotFound is returned when the backend knows no vehicle for
	// the given journey
	ErrJourneyNotFound = errors.New("journey not found")

	// ErrLocationNotFound is returned when the location is not sellable-to
	// for the journey's vehicle
	ErrLocationNotFound = errors.New("location not found")

	// ErrInternal is returned for internal usecase failures
	ErrInternal = errors.New("usecase: internal error")
)
