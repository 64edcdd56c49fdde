package storage

import (
	stderrors "errors"
	"testing"

	"github.com/tsolutions/site/internal/platform/errors"
)

func TestValuesGetNilSafe(t *testing.T) {
	t.Parallel()

	var values Values
	if got := values.Get("name"); got != "" {
		t.Fatalf("Get() = %q, want empty", got)
	}
}

func TestValuesCloneIsIndependent(t *testing.T) {
	t.Parallel()

	original := Values{"name": "Consulting"}
	clone := original.Clone()
	clone["name"] = "Changed"
	if original["name"] != "Consulting" {
		t.Fatalf("original mutated: %q", original["name"])
	}
	if got := Values(nil).Clone(); got == nil {
		t.Fatal("Clone(nil) = nil, want empty map")
	}
}

func TestErrNotFoundMatchesByCode(t *testing.T) {
	t.Parallel()

	wrapped := errors.Wrap(errors.CodeNotFound, "get service 4", stderrors.New("no rows"))
	if !stderrors.Is(wrapped, ErrNotFound) {
		t.Fatal("expected wrapped not-found error to match ErrNotFound")
	}
	failure := errors.Wrap(errors.CodeStoreFailure, "get service 4", stderrors.New("disk"))
	if stderrors.Is(failure, ErrNotFound) {
		t.Fatal("store failure must not match ErrNotFound")
	}
}
