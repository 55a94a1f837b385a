package ports

import "github.com/minimalapi/vehicles-api/internal/core/domain"

// TokenIssuer builds signed, time-bounded tokens asserting an
// administrator's identity and role.
type TokenIssuer interface {
	Issue(administrator *domain.Administrator) (string, error)
}
