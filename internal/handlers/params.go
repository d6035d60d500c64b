package handlers

import (
	"net"
	"net/http"
	"strings"
)

// getParam returns a path or query parameter value regardless of
// whether the router stores it with a leading colon or not. It also
// supports the standard net/http PathValue API.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}

	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}

	if val := r.URL.Query().Get(name); val != "" {
		return val
	}

	return r.PathValue(name)
}

// viewerKey approximates a viewer identity by network address,
// preferring the first X-Forwarded-For hop when present.
func viewerKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first, _, ok := strings.Cut(fwd, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
