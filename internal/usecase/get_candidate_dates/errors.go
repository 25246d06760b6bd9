package get_candidate_dates

import "errors"

// ErrInvalidInput is returned for an unrecognized appointment kind
var ErrInvalidInput = errors.New("invalid input data")
