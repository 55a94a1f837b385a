package domain

import (
	"encoding/json"
	"fmt"
)

// Role is the closed set of permission levels an administrator can hold.
type Role int

// RoleEditor is the zero value so records default to the least-privileged
// role.
const (
	RoleEditor Role = iota
	RoleAdministrator
)

// roleLabels is the canonical rendering of each role. Authorization compares
// these labels as exact strings, so the table is the single source of truth.
var roleLabels = map[Role]string{
	RoleAdministrator: "ADMINISTRATOR",
	RoleEditor:        "EDITOR",
}

// Label returns the canonical label for the role.
func (r Role) Label() string {
	if label, ok := roleLabels[r]; ok {
		return label
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

// ParseRole converts a label back to its Role. The match is exact and
// case-sensitive.
func ParseRole(label string) (Role, error) {
	for role, l := range roleLabels {
		if l == label {
			return role, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, label)
}

func (r Role) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Label())
}

func (r *Role) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	role, err := ParseRole(label)
	if err != nil {
		return err
	}
	*r = role
	return nil
}

// Administrator models an authenticated actor in the system.
// The store assigns ID on creation; it is immutable afterwards.
type Administrator struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
	Profile  Role   `json:"profile"`
}
