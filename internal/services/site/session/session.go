// Package session carries the admin login flag between requests.
//
// The site has exactly one admin identity, so a session is a single boolean.
// Stores decide where that boolean lives: a signed cookie or a Redis key.
package session

import "net/http"

// Session is the per-caller state read by authorization checks.
type Session struct {
	LoggedIn bool
}

// Anonymous is the zero session every new caller starts with.
var Anonymous = Session{}

// Admin is the session granted after a successful login.
var Admin = Session{LoggedIn: true}

// Store loads and persists sessions for HTTP requests.
//
// Load never fails for a missing, expired or tampered session; those read as
// Anonymous. Errors are reserved for an unreachable backend.
type Store interface {
	Load(r *http.Request) (Session, error)
	Save(w http.ResponseWriter, r *http.Request, s Session) error
	Clear(w http.ResponseWriter, r *http.Request) error
}
