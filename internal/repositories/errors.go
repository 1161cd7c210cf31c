package repositories

import "errors"

// Common repository errors
var (
	// ErrOrderNotFound is returned when no order exists for the given key
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidID is returned when an invalid ID is provided
	ErrInvalidID = errors.New("invalid ID")

	// ErrTableNotConfigured is returned when an operation requires a table
	// name that was never configured
	ErrTableNotConfigured = errors.New("table not configured")
)

// IsNotFound checks if an error indicates a missing record
func IsNotFound(err error) bool {
	return errors.Is(err, ErrOrderNotFound)
}
