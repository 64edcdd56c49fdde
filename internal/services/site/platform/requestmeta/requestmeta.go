// Package requestmeta resolves request scheme and origin facts.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls how the request scheme is resolved.
//
// X-Forwarded-Proto is only honored when TrustForwardedProto is set, which
// should be the case only behind a proxy that overwrites the header.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// IsHTTPS reports whether r should be treated as HTTPS under policy.
func IsHTTPS(r *http.Request, policy SchemePolicy) bool {
	return Scheme(r, policy) == "https"
}

// Scheme returns "https" or "http" for r.
func Scheme(r *http.Request, policy SchemePolicy) string {
	if r == nil {
		return ""
	}
	if policy.TrustForwardedProto {
		if forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded == "http" || forwarded == "https" {
			return forwarded
		}
	}
	if r.URL != nil {
		if scheme := strings.ToLower(r.URL.Scheme); scheme == "http" || scheme == "https" {
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

// SameOrigin reports whether the Origin header, or failing that the Referer,
// names the same scheme, host and port as r.
func SameOrigin(r *http.Request, policy SchemePolicy) bool {
	if r == nil {
		return false
	}
	want := origin{scheme: Scheme(r, policy)}
	want.host, want.port = splitHost(r.Host)
	if want.host == "" && r.URL != nil {
		want.host, want.port = splitHost(r.URL.Host)
	}
	if want.host == "" {
		return false
	}

	raw := strings.TrimSpace(r.Header.Get("Origin"))
	if raw == "" {
		raw = strings.TrimSpace(r.Header.Get("Referer"))
	}
	if raw == "" {
		return false
	}
	got, ok := parseOrigin(raw)
	if !ok {
		return false
	}
	return got.normalized() == want.normalized()
}

type origin struct {
	scheme string
	host   string
	port   string
}

func (o origin) normalized() origin {
	if o.port == "" {
		switch o.scheme {
		case "https":
			o.port = "443"
		case "http":
			o.port = "80"
		}
	}
	return o
}

func parseOrigin(raw string) (origin, bool) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return origin{}, false
	}
	o := origin{
		scheme: strings.ToLower(parsed.Scheme),
		host:   strings.ToLower(parsed.Hostname()),
		port:   parsed.Port(),
	}
	if o.scheme == "" || o.host == "" {
		return origin{}, false
	}
	return o, true
}

func splitHost(rawHost string) (string, string) {
	parsed, err := url.Parse("//" + strings.TrimSpace(rawHost))
	if err != nil {
		return "", ""
	}
	return strings.ToLower(parsed.Hostname()), parsed.Port()
}
