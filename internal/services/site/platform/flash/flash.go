// Package flash carries one-time notices across a redirect.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/tsolutions/site/internal/services/site/platform/requestmeta"
)

// CookieName is the cookie used for one-time notices.
const CookieName = "site_flash"

// Kind classifies notice presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindError   Kind = "error"
)

// Notice references a catalog key to show on the next page.
type Notice struct {
	Kind Kind   `json:"kind"`
	Key  string `json:"key"`
}

// Success creates a success notice for key.
func Success(key string) Notice {
	return Notice{Kind: KindSuccess, Key: key}
}

// Info creates an info notice for key.
func Info(key string) Notice {
	return Notice{Kind: KindInfo, Key: key}
}

// Write stores notice for the next page render. Invalid notices are dropped.
func Write(w http.ResponseWriter, r *http.Request, notice Notice, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	notice, ok := normalize(notice)
	if !ok {
		return
	}
	payload, err := json.Marshal(notice)
	if err != nil {
		return
	}
	http.SetCookie(w, cookie(r, policy, base64.RawURLEncoding.EncodeToString(payload), 0))
}

// ReadAndClear returns the pending notice, if any, and expires the cookie.
func ReadAndClear(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) (Notice, bool) {
	if r == nil {
		return Notice{}, false
	}
	c, err := r.Cookie(CookieName)
	if err != nil {
		return Notice{}, false
	}
	if w != nil {
		http.SetCookie(w, cookie(r, policy, "", -1))
	}
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(c.Value))
	if err != nil {
		return Notice{}, false
	}
	var notice Notice
	if err := json.Unmarshal(decoded, &notice); err != nil {
		return Notice{}, false
	}
	return normalize(notice)
}

func cookie(r *http.Request, policy requestmeta.SchemePolicy, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, policy),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
}

func normalize(notice Notice) (Notice, bool) {
	notice.Key = strings.TrimSpace(notice.Key)
	if notice.Key == "" {
		return Notice{}, false
	}
	notice.Kind = Kind(strings.ToLower(strings.TrimSpace(string(notice.Kind))))
	switch notice.Kind {
	case KindSuccess, KindInfo, KindError:
		return notice, true
	default:
		return Notice{}, false
	}
}
