package storage

import (
	"context"

	"github.com/tsolutions/site/internal/platform/errors"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New(errors.CodeNotFound, "record not found")

// Values holds submitted or persisted field values keyed by field name.
type Values map[string]string

// Get returns the value for name, or "" when absent.
func (v Values) Get(name string) string {
	if v == nil {
		return ""
	}
	return v[name]
}

// Clone returns an independent copy.
func (v Values) Clone() Values {
	if v == nil {
		return Values{}
	}
	out := make(Values, len(v))
	for key, value := range v {
		out[key] = value
	}
	return out
}

// Record is one persisted row of a resource kind.
type Record struct {
	ID     int64
	Values Values
}

// Store persists records of a single resource kind.
//
// Update and Delete succeed without effect when the id is absent; only Get
// reports ErrNotFound.
type Store interface {
	List(ctx context.Context) ([]Record, error)
	Get(ctx context.Context, id int64) (Record, error)
	Create(ctx context.Context, values Values) (int64, error)
	Update(ctx context.Context, id int64, values Values) error
	Delete(ctx context.Context, id int64) error
}
