package cancel_appointment

import "errors"

var (
	// ErrInvalidInput is returned for a missing journey ID
	ErrInvalidInput = errors.New("invalid input data")

	// ErrJourneyNotFound is returned when the customer journey does not exist
	ErrJourneyNotFound = errors.New("journey not found")

	// ErrNothingToCancel is returned when the journey holds no stored intent
	ErrNothingToCancel = errors.New("journey has no booked appointment")

	// ErrInternal is returned for internal usecase failures
	ErrInternal = errors.New("usecase: internal error")
)
