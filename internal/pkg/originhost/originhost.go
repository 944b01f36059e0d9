// Package originhost derives the hostname a request was made from.
package originhost

import (
	"net/http"
	"net/url"
	"strings"
)

// FromRequest returns the hostname of the request's Origin header, falling
// back to Referer. Scheme, port and path are stripped. It returns "" when
// neither header holds a parsable absolute URL.
func FromRequest(r *http.Request) string {
	return FromHeader(r.Header)
}

// FromHeader is FromRequest for a bare header set.
func FromHeader(h http.Header) string {
	raw := strings.TrimSpace(h.Get("Origin"))
	if raw == "" || raw == "null" {
		raw = strings.TrimSpace(h.Get("Referer"))
	}
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	return u.Hostname()
}
