package selection

import "errors"

var (
	// ErrInvalidPhone is returned when the contact phone does not reduce to
	// exactly ten digits. It is a field-level error: other fields stay
	// editable and only submission is blocked.
	ErrInvalidPhone = errors.New("selection: phone must contain exactly 10 digits")

	// ErrUnknownLocation is returned when a location ID is not in the
	// current location list
	ErrUnknownLocation = errors.New("selection: unknown location")

	// ErrInvalidKind is returned for an unrecognized appointment kind
	ErrInvalidKind = errors.New("selection: invalid appointment kind")
)
