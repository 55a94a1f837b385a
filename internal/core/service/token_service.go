package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/minimalapi/vehicles-api/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// TokenService issues HS256-signed tokens carrying exactly two claims: the
// administrator's email and the canonical role label. No issuer or audience
// is set; validity is determined purely by signature and expiry.
type TokenService struct {
	secret string
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue builds a signed token expiring ttl from now. Tokens issued for the
// same administrator at different instants differ only in expiry.
func (s *TokenService) Issue(administrator *domain.Administrator) (string, error) {
	claims := jwt.MapClaims{
		"email": administrator.Email,
		"role":  administrator.Profile.Label(),
		"exp":   time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}
