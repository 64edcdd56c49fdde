// Package sessioncookie centralizes the site session cookie.
package sessioncookie

import (
	"net/http"
	"strings"
	"time"

	"github.com/tsolutions/site/internal/services/site/platform/requestmeta"
)

// Name is the session cookie name.
const Name = "site_session"

// Read returns the trimmed session cookie value when present.
func Read(r *http.Request) (string, bool) {
	if r == nil {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil {
		return "", false
	}
	value := strings.TrimSpace(cookie.Value)
	return value, value != ""
}

// Write sets the session cookie. A positive ttl also sets Max-Age.
func Write(w http.ResponseWriter, r *http.Request, value string, ttl time.Duration, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	cookie := base(r, policy)
	cookie.Value = strings.TrimSpace(value)
	if ttl > 0 {
		cookie.MaxAge = int(ttl / time.Second)
	}
	http.SetCookie(w, cookie)
}

// Clear expires the session cookie.
func Clear(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	cookie := base(r, policy)
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)
}

func base(r *http.Request, policy requestmeta.SchemePolicy) *http.Cookie {
	return &http.Cookie{
		Name:     Name,
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, policy),
		SameSite: http.SameSiteLaxMode,
	}
}
