package ports

import "github.com/workpulse/workpulse-api/internal/core/domain"

// TokenService issues and verifies stateless bearer tokens. Validity is a
// pure function of the token, the signing key, and the current time; the
// server keeps no session state.
type TokenService interface {
	Issue(id, role, email string) (string, error)
	// Verify returns exactly one of domain.ErrTokenMalformed,
	// domain.ErrTokenSignatureInvalid or domain.ErrTokenExpired on failure.
	Verify(token string) (domain.Identity, error)
}
