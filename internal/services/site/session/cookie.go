package session

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tsolutions/site/internal/services/site/platform/requestmeta"
	"github.com/tsolutions/site/internal/services/site/platform/sessioncookie"
)

const (
	tokenIssuer   = "tsolutions-site"
	tokenSubject  = "admin"
	minSecretSize = 32
)

type claims struct {
	Admin bool `json:"adm"`
	jwt.RegisteredClaims
}

// CookieStore keeps the session in an HS256-signed token inside the cookie.
// Nothing is stored server side, so logout only clears the caller's cookie.
type CookieStore struct {
	secret []byte
	ttl    time.Duration
	policy requestmeta.SchemePolicy
	now    func() time.Time
}

// NewCookieStore builds a cookie store. The secret must be at least 32 bytes.
func NewCookieStore(secret []byte, ttl time.Duration, policy requestmeta.SchemePolicy) (*CookieStore, error) {
	if len(secret) < minSecretSize {
		return nil, fmt.Errorf("session secret must be at least %d bytes", minSecretSize)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	return &CookieStore{secret: secret, ttl: ttl, policy: policy, now: time.Now}, nil
}

// Load verifies the token. Missing, expired or tampered tokens read as
// Anonymous.
func (s *CookieStore) Load(r *http.Request) (Session, error) {
	raw, ok := sessioncookie.Read(r)
	if !ok {
		return Anonymous, nil
	}
	var c claims
	_, err := jwt.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithSubject(tokenSubject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return Anonymous, nil
	}
	return Session{LoggedIn: c.Admin}, nil
}

// Save issues a fresh token, or clears the cookie for an anonymous session.
func (s *CookieStore) Save(w http.ResponseWriter, r *http.Request, sess Session) error {
	if !sess.LoggedIn {
		return s.Clear(w, r)
	}
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Admin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   tokenSubject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return fmt.Errorf("sign session token: %w", err)
	}
	sessioncookie.Write(w, r, signed, s.ttl, s.policy)
	return nil
}

// Clear expires the cookie.
func (s *CookieStore) Clear(w http.ResponseWriter, r *http.Request) error {
	sessioncookie.Clear(w, r, s.policy)
	return nil
}
