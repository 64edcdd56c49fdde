package resource

import "github.com/tsolutions/site/internal/services/site/session"

// Operation names a controller entry point for policy lookup.
type Operation string

const (
	OpList   Operation = "list"
	OpGet    Operation = "get"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Access is the requirement an operation places on the caller.
type Access int

const (
	// RequiresAuth is the zero value so unlisted operations fail closed.
	RequiresAuth Access = iota
	Public
)

// Policy maps operations to access requirements for one kind.
type Policy map[Operation]Access

// Requires reports whether op needs an admin session.
func (p Policy) Requires(op Operation) bool {
	return p[op] == RequiresAuth
}

// Allows reports whether s may perform op.
func (p Policy) Allows(op Operation, s session.Session) bool {
	return !p.Requires(op) || Authorized(s)
}

// Authorized reports whether the session belongs to the admin.
func Authorized(s session.Session) bool {
	return s.LoggedIn
}
