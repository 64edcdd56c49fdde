package httpx

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestRequestIDGeneratesAndEchoes(t *testing.T) {
	t.Parallel()

	var seen string
	h := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = RequestIDOf(r)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if seen == "" || seen == "-" {
		t.Fatalf("request id = %q, want generated id", seen)
	}
	if got := rr.Header().Get(RequestIDHeader); got != seen {
		t.Fatalf("response id = %q, want %q", got, seen)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get(RequestIDHeader); got != "req-123" {
		t.Fatalf("response id = %q, want %q", got, "req-123")
	}
}

func TestRecoverPanicWritesInternalServerError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)

	h := RecoverPanic(logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/about", nil)
	req.Header.Set(RequestIDHeader, "req-9")
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	for _, marker := range []string{"panic recovered", "path=/about", "request_id=req-9", "panic=boom"} {
		if !strings.Contains(buf.String(), marker) {
			t.Fatalf("log missing %q: %q", marker, buf.String())
		}
	}
}

func TestWriteRedirectUsesSeeOther(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteRedirect(rr, httptest.NewRequest(http.MethodPost, "/services/create", nil), "/services")
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != "/services" {
		t.Fatalf("location = %q, want %q", got, "/services")
	}

	rr = httptest.NewRecorder()
	WriteRedirect(rr, nil, "/login")
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/login" {
		t.Fatalf("nil request redirect = %d %q", rr.Code, rr.Header().Get("Location"))
	}
}

func TestWriteHTMLSetsContentType(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	if err := WriteHTML(rr, http.StatusOK, []byte("<p>ok</p>")); err != nil {
		t.Fatalf("WriteHTML() error = %v", err)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content type = %q", got)
	}
	if rr.Body.String() != "<p>ok</p>" {
		t.Fatalf("body = %q", rr.Body.String())
	}
}
