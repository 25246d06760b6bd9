package authservice

import "errors"

var (
	// ErrBadCredentials is returned when the auth backend rejects the login
	ErrBadCredentials = errors.New("authservice client: bad credentials")

	// ErrMissingToken is returned when the login response carries no token
	ErrMissingToken = errors.New("authservice client: login response missing token")

	// ErrInternal is returned for transport-level client failures
	ErrInternal = errors.New("authservice client: internal error")

	// ErrInvalidResponse is returned for unparseable or unexpected responses
	ErrInvalidResponse = errors.New("authservice client: invalid response")
)
