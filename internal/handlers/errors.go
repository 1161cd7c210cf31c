package handlers

import (
	"errors"
	"strings"

	"orders-api/internal/repositories"
	"orders-api/internal/services"
)

// isValidationError checks if an error was caused by invalid input.
// Classification is by sentinel, not message text, so store failures
// that mention "validation" in their message stay internal errors.
func isValidationError(err error) bool {
	return errors.Is(err, services.ErrValidation)
}

// isNotFoundError checks if an error is a not found error
func isNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	if repositories.IsNotFound(err) {
		return true
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "not found") ||
		strings.Contains(errMsg, "does not exist")
}
