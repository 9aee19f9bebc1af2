package middleware

import (
	"net/http"
	"strings"
)

// apiCSP forbids loading or running anything: responses are JSON or media
// files that browsers only display natively.
var apiCSP = strings.Join([]string{
	"default-src 'none'",
	"img-src 'self'",
	"media-src 'self'",
	"frame-ancestors 'none'",
}, "; ")

var staticHeaders = [][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"Referrer-Policy", "strict-origin-when-cross-origin"},
	{"Permissions-Policy", "camera=(), microphone=(), geolocation=()"},
	{"Content-Security-Policy", apiCSP},
}

const hstsValue = "max-age=31536000; includeSubDomains"

// SecurityHeaders sets the response headers every API answer carries. JSON
// endpoints under /api are additionally marked uncacheable, since the video
// list changes while resizes complete. HSTS is only sent over TLS.
func SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		for _, kv := range staticHeaders {
			h.Set(kv[0], kv[1])
		}
		if strings.HasPrefix(r.URL.Path, "/api/") {
			h.Set("Cache-Control", "no-store")
		}
		if isTLS(r) {
			h.Set("Strict-Transport-Security", hstsValue)
		}

		next.ServeHTTP(w, r)
	})
}

// isTLS reports whether the client connection is encrypted, either directly
// or at a reverse proxy that sets X-Forwarded-Proto.
func isTLS(r *http.Request) bool {
	return r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
}
