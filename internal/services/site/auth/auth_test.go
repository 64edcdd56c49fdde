package auth

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/tsolutions/site/internal/platform/errors"
)

func newTestVerifier(t *testing.T) *Verifier {
	t.Helper()
	hash, err := HashPassword("correct horse", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	v, err := NewVerifier("tsolutions", hash)
	if err != nil {
		t.Fatalf("NewVerifier() error = %v", err)
	}
	return v
}

func TestVerifyAcceptsCorrectCredentials(t *testing.T) {
	t.Parallel()

	if err := newTestVerifier(t).Verify("tsolutions", "correct horse"); err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
}

func TestVerifyRejectsMismatch(t *testing.T) {
	t.Parallel()

	v := newTestVerifier(t)
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "tsolutions", "battery staple"},
		{"wrong username", "admin", "correct horse"},
		{"empty", "", ""},
	}
	for _, tc := range tests {
		err := v.Verify(tc.username, tc.password)
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("%s: Verify() error = %v, want invalid credentials", tc.name, err)
		}
		if apperrors.HTTPStatus(err) != 401 {
			t.Fatalf("%s: status = %d, want 401", tc.name, apperrors.HTTPStatus(err))
		}
	}
}

func TestNewVerifierValidatesInput(t *testing.T) {
	t.Parallel()

	if _, err := NewVerifier(" ", "$2a$10$abcdefghijklmnopqrstuu5y0vJWkxq0DgE3yI0X2mV7CqEIl5zZ5C"); err == nil {
		t.Fatal("expected error for empty username")
	}
	if _, err := NewVerifier("tsolutions", "plaintext"); err == nil {
		t.Fatal("expected error for non-bcrypt hash")
	}
}

func TestHashPasswordRequiresPassword(t *testing.T) {
	t.Parallel()

	if _, err := HashPassword("", 0); err == nil {
		t.Fatal("expected error for empty password")
	}
}
