package domain

import (
	"errors"
	"strings"
)

var ErrAdministratorNotFound = errors.New("administrator not found")
var ErrVehicleNotFound = errors.New("vehicle not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnknownRole = errors.New("unknown role")

// ValidationError carries every violation found in a payload. Callers treat
// a non-empty message list as a client error and never persist the payload.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// NewValidationError returns nil when messages is empty, so the result can be
// returned directly from a validation pass.
func NewValidationError(messages []string) error {
	if len(messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: messages}
}
