package journeyservice

import "errors"

var (
	// ErrJourneyNotFound is returned when the customer journey does not exist
	ErrJourneyNotFound = errors.New("journeyservice client: journey not found")

	// ErrUnauthorized is returned when the bearer token is rejected even
	// after a fresh login
	ErrUnauthorized = errors.New("journeyservice client: unauthorized")

	// ErrInternal is returned for transport-level client failures
	ErrInternal = errors.New("journeyservice client: internal error")

	// ErrInvalidResponse is returned for unparseable or unexpected responses
	ErrInvalidResponse = errors.New("journeyservice client: invalid response")
)
