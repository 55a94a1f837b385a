// Package validation holds the pure payload checks run before any record is
// persisted. Every function starts from an empty message list and returns a
// fresh slice per call; nothing in this package carries state between calls.
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Canonical violation messages. Clients match on these strings, so they are
// part of the API contract.
const (
	MsgEmailRequired     = "Email is required"
	MsgPasswordRequired  = "Password is required"
	MsgPasswordTooShort  = "Password should be at least 8 characters in length."
	MsgVehicleNameEmpty  = "The vehicle name cannot be empty."
	MsgVehicleBrandEmpty = "The vehicle brand cannot be empty."
	MsgVehicleTooOld     = "Vehicle too old, only vehicles from 1900 onwards are accepted."
)

// validate is stateless and safe for concurrent use.
var validate = validator.New()

// AdministratorPayload is the candidate data checked before creating an
// administrator.
type AdministratorPayload struct {
	Email    string
	Password string
}

// VehiclePayload is the candidate data checked before creating a vehicle.
type VehiclePayload struct {
	Name  string
	Brand string
	Year  int
}

// Administrator collects every violation in the payload. An empty result
// means the payload is valid.
func Administrator(p AdministratorPayload) []string {
	messages := make([]string, 0, 2)

	if validate.Var(p.Email, "required") != nil {
		messages = append(messages, MsgEmailRequired)
	}

	// Blank passwords fail the presence check; the length rule only applies
	// to passwords with actual content.
	if validate.Var(strings.TrimSpace(p.Password), "required") != nil {
		messages = append(messages, MsgPasswordRequired)
	} else if validate.Var(p.Password, "min=8") != nil {
		messages = append(messages, MsgPasswordTooShort)
	}

	return messages
}

// Vehicle collects every violation in the payload. All three rules are
// checked unconditionally.
func Vehicle(p VehiclePayload) []string {
	messages := make([]string, 0, 3)

	if validate.Var(p.Name, "required") != nil {
		messages = append(messages, MsgVehicleNameEmpty)
	}
	if validate.Var(p.Brand, "required") != nil {
		messages = append(messages, MsgVehicleBrandEmpty)
	}
	if validate.Var(p.Year, "gte=1900") != nil {
		messages = append(messages, MsgVehicleTooOld)
	}

	return messages
}
