package http

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/MKhiriev/jncep-web/internal/utils"
	"github.com/rs/zerolog"
)

const (
	forwardedForHeader = "X-Forwarded-For"
	realIPHeader       = "X-Real-IP"
)

// withClientIP resolves the requesting client's address and stores it in the
// request context under [utils.ClientIPCtxKey]. Every generation run works in
// a per-client subdirectory named after this address, so the resolution order
// matters behind a reverse proxy: X-Forwarded-For first, then X-Real-IP, then
// the raw connection address.
func (h *Handler) withClientIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := resolveClientIP(r)

		ctx := context.WithValue(r.Context(), utils.ClientIPCtxKey, clientIP)
		zerolog.Ctx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("client_ip", clientIP)
		})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func resolveClientIP(r *http.Request) string {
	// X-Forwarded-For holds a comma-separated chain; the first entry is the
	// originating client.
	if forwarded := r.Header.Get(forwardedForHeader); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if realIP := strings.TrimSpace(r.Header.Get(realIPHeader)); realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
