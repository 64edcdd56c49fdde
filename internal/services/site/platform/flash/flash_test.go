package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tsolutions/site/internal/services/site/platform/requestmeta"
)

func TestWriteAndReadAndClearRoundTrip(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	writeRR := httptest.NewRecorder()

	Write(writeRR, req, Success("Saved. The entry was created."), requestmeta.SchemePolicy{})
	cookie, err := http.ParseSetCookie(writeRR.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	req.AddCookie(cookie)

	readRR := httptest.NewRecorder()
	notice, ok := ReadAndClear(readRR, req, requestmeta.SchemePolicy{})
	if !ok {
		t.Fatalf("ReadAndClear() ok = false, want true")
	}
	if notice.Kind != KindSuccess {
		t.Fatalf("notice.Kind = %q, want %q", notice.Kind, KindSuccess)
	}
	if notice.Key != "Saved. The entry was created." {
		t.Fatalf("notice.Key = %q", notice.Key)
	}
	cleared, err := http.ParseSetCookie(readRR.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cleared.MaxAge >= 0 {
		t.Fatalf("clear max-age = %d, want < 0", cleared.MaxAge)
	}
}

func TestReadAndClearInvalidCookieValueStillClears(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "not-base64!"})
	rr := httptest.NewRecorder()

	if _, ok := ReadAndClear(rr, req, requestmeta.SchemePolicy{}); ok {
		t.Fatalf("ReadAndClear() ok = true, want false")
	}
	if rr.Header().Get("Set-Cookie") == "" {
		t.Fatalf("expected clear Set-Cookie header")
	}
}

func TestWriteIgnoresInvalidNotice(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, notice := range []Notice{{Kind: KindSuccess}, {Kind: "loud", Key: "x"}} {
		rr := httptest.NewRecorder()
		Write(rr, req, notice, requestmeta.SchemePolicy{})
		if got := rr.Header().Get("Set-Cookie"); got != "" {
			t.Fatalf("Set-Cookie = %q, want empty", got)
		}
	}
}
