package book_appointment

import "errors"

var (
	// ErrInvalidInput is returned for malformed request parameters
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidPhone is returned when the contact phone does not reduce
	// to exactly ten digits
	ErrInvalidPhone = errors.New("phone must contain exactly 10 digits")

	// ErrJourneyNotFound is returned when the customer journey does not exist
	ErrJourneyNotFound = errors.New("journey not found")

	// ErrLocationNotFound is returned when the selected location is not
	// sellable-to for this journey
	ErrLocationNotFound = errors.New("location not found")

	// ErrSlotUnavailable is returned when the selected date and day part
	// carry no slot at the selected location
	ErrSlotUnavailable = errors.New("slot is not available")

	// ErrInternal is returned for internal usecase failures
	ErrInternal = errors.New("usecase: internal error")
)
