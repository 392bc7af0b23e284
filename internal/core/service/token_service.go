package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/workpulse/workpulse-api/internal/core/domain"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// TokenService issues and verifies HS256 bearer tokens carrying the caller's
// id, role and email. It holds no state beyond the signing key.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService. The secret must be non-empty; the
// caller is expected to have failed fast at startup otherwise.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding id, role and email with a fixed lifetime.
func (s *TokenService) Issue(id, role, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":    id,
		"role":  role,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token. Failures are terminal and classified:
// a bad signature never yields partial claims, and expiry is checked even
// when the signature is valid.
func (s *TokenService) Verify(token string) (domain.Identity, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return domain.Identity{}, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return domain.Identity{}, domain.ErrTokenSignatureInvalid
		default:
			return domain.Identity{}, domain.ErrTokenMalformed
		}
	}
	if !tkn.Valid {
		return domain.Identity{}, domain.ErrTokenSignatureInvalid
	}

	id, _ := claims["id"].(string)
	role, _ := claims["role"].(string)
	email, _ := claims["email"].(string)
	return domain.Identity{ID: id, Role: role, Email: email}, nil
}
