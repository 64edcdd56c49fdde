// Package auth verifies the single admin credential pair.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/tsolutions/site/internal/platform/errors"
)

// ErrInvalidCredentials is returned for any username or password mismatch.
var ErrInvalidCredentials = apperrors.New(apperrors.CodeInvalidCredentials, "invalid credentials")

// Verifier checks a submitted username and password against one admin
// identity whose password is stored as a bcrypt hash.
type Verifier struct {
	username string
	hash     []byte
}

// NewVerifier builds a verifier. hash must be a bcrypt hash.
func NewVerifier(username string, hash string) (*Verifier, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("admin username is required")
	}
	hash = strings.TrimSpace(hash)
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("admin password hash: %w", err)
	}
	return &Verifier{username: username, hash: []byte(hash)}, nil
}

// Verify returns nil when both username and password match.
//
// The password hash is always compared so a wrong username costs the same
// as a wrong password.
func (v *Verifier) Verify(username string, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(v.username)) == 1
	err := bcrypt.CompareHashAndPassword(v.hash, []byte(password))
	if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return apperrors.Wrap(apperrors.CodeInvalidCredentials, "compare password", err)
	}
	if !userOK || err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// HashPassword returns a bcrypt hash suitable for SITE_ADMIN_PASSWORD_HASH.
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password is required")
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}
