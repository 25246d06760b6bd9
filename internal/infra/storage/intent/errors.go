package intent

import "errors"

var (
	// ErrIntentNotFound is returned when no stored intent matches the lookup
	ErrIntentNotFound = errors.New("intent.repository: booking intent not found")

	// ErrBuildQuery is returned when building the SQL query fails
	ErrBuildQuery = errors.New("intent.repository: failed to build query")

	// ErrExecQuery is returned when executing the SQL query fails
	ErrExecQuery = errors.New("intent.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("intent.repository: failed to scan row")
)
