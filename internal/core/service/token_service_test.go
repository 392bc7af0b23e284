package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/workpulse/workpulse-api/internal/core/domain"
)

func TestTokenService_IssueVerifyRoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue("u1", domain.RoleUser, "alice@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	ident, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if ident.ID != "u1" || ident.Role != domain.RoleUser || ident.Email != "alice@example.com" {
		t.Fatalf("unexpected identity: %+v", ident)
	}
}

func TestTokenService_Expired(t *testing.T) {
	secret := "secret"
	svc := NewTokenService(secret, time.Hour)

	claims := jwt.MapClaims{
		"id":    "u1",
		"role":  domain.RoleAdmin,
		"email": "a@example.com",
		"exp":   time.Now().Add(-time.Minute).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	// Expiry is checked even though the signature is valid.
	if _, err := svc.Verify(signed); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_WrongKey(t *testing.T) {
	issuer := NewTokenService("key-a", time.Hour)
	verifier := NewTokenService("key-b", time.Hour)

	token, err := issuer.Issue("u1", domain.RoleUser, "a@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, domain.ErrTokenSignatureInvalid) {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b"} {
		if _, err := svc.Verify(token); !errors.Is(err, domain.ErrTokenMalformed) {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", token, err)
		}
	}
}

func TestTokenService_RejectsAlgConfusion(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":   "u1",
		"role": domain.RoleAdmin,
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Verify(token); err == nil {
		t.Fatalf("expected verification failure for alg=none token")
	}
}
