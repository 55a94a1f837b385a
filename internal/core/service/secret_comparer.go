package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/minimalapi/vehicles-api/internal/core/domain"
	"github.com/minimalapi/vehicles-api/internal/core/ports"
)

// PlaintextComparer matches the legacy store format: secrets are stored and
// compared as plain text, case-sensitively. This is a known weakness kept
// for contract compatibility; swap in BcryptComparer once stored secrets
// are hashed.
type PlaintextComparer struct{}

func (PlaintextComparer) Compare(stored, candidate string) error {
	if stored != candidate {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// BcryptComparer expects stored secrets to be bcrypt hashes.
type BcryptComparer struct{}

func (BcryptComparer) Compare(stored, candidate string) error {
	if bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// NewSecretComparer selects the comparison strategy by config scheme name.
// Anything other than "bcrypt" falls back to plaintext.
func NewSecretComparer(scheme string) ports.SecretComparer {
	if scheme == "bcrypt" {
		return BcryptComparer{}
	}
	return PlaintextComparer{}
}
