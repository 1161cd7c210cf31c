package services

import "errors"

// ErrValidation marks errors caused by invalid input. Handlers classify
// on this sentinel so that store failures are never mistaken for client
// errors, whatever their message text says.
var ErrValidation = errors.New("validation failed")
