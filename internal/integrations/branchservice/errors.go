package branchservice

import "errors"

var (
	// ErrBranchNotFound is returned when the requested branch does not exist
	ErrBranchNotFound = errors.New("branchservice client: branch not found")

	// ErrJourneyNotFound is returned when the backend knows no vehicle for
	// the given customer journey
	ErrJourneyNotFound = errors.New("branchservice client: customer journey not found")

	// ErrUnauthorized is returned when the bearer token is rejected even
	// after a fresh login
	ErrUnauthorized = errors.New("branchservice client: unauthorized")

	// ErrInternal is returned for transport-level client failures
	ErrInternal = errors.New("branchservice client: internal error")

	// ErrInvalidResponse is returned for unparseable or unexpected responses
	ErrInvalidResponse = errors.New("branchservice client: invalid response")
)
