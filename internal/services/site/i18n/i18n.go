// Package i18n resolves the request language and exposes message printers
// backed by the catalogs registered in this package.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "site_lang"
)

var supportedTags = []language.Tag{
	language.English,
	language.Swedish,
}

var tagMatcher = language.NewMatcher(supportedTags)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag determines the best language tag for the request.
// The bool reports whether the lang query param should be persisted.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}
	if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
		if tag, ok := parseTag(value); ok {
			return tag, true
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := parseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, index, confidence := tagMatcher.Match(tags...)
			if confidence != language.No {
				return supportedTags[index], false
			}
		}
	}
	return Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

func parseTag(value string) (language.Tag, bool) {
	parsed, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	base, _ := parsed.Base()
	for _, tag := range supportedTags {
		if supportedBase, _ := tag.Base(); supportedBase == base {
			return tag, true
		}
	}
	return language.Tag{}, false
}
