package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/jncep-web/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Таблица: порядок источников адреса ----

func TestWithClientIP_ResolutionOrder(t *testing.T) {
	tests := []struct {
		name         string
		forwardedFor string
		realIP       string
		remoteAddr   string
		want         string
	}{
		{
			name:         "X-Forwarded-For wins over everything",
			forwardedFor: "203.0.113.7",
			realIP:       "198.51.100.2",
			remoteAddr:   "10.0.0.1:52000",
			want:         "203.0.113.7",
		},
		{
			name:         "first entry of the X-Forwarded-For chain is the client",
			forwardedFor: "203.0.113.7, 10.0.0.1, 10.0.0.2",
			remoteAddr:   "10.0.0.3:52000",
			want:         "203.0.113.7",
		},
		{
			name:         "X-Forwarded-For entries may carry spaces",
			forwardedFor: "  203.0.113.7 , 10.0.0.1",
			remoteAddr:   "10.0.0.3:52000",
			want:         "203.0.113.7",
		},
		{
			name:       "X-Real-IP when no X-Forwarded-For",
			realIP:     "198.51.100.2",
			remoteAddr: "10.0.0.1:52000",
			want:       "198.51.100.2",
		},
		{
			name:       "RemoteAddr host when no proxy headers",
			remoteAddr: "192.0.2.44:51234",
			want:       "192.0.2.44",
		},
		{
			name:       "RemoteAddr without port is used verbatim",
			remoteAddr: "192.0.2.44",
			want:       "192.0.2.44",
		},
		{
			name:         "empty X-Forwarded-For falls through",
			forwardedFor: "",
			realIP:       "198.51.100.2",
			remoteAddr:   "10.0.0.1:52000",
			want:         "198.51.100.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler()

			var captured string
			var found bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				captured, found = utils.GetClientIPFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			middleware := h.withClientIP(next)
			req := httptest.NewRequest(http.MethodGet, "/epub", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwardedFor != "" {
				req.Header.Set(forwardedForHeader, tt.forwardedFor)
			}
			if tt.realIP != "" {
				req.Header.Set(realIPHeader, tt.realIP)
			}

			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)

			require.True(t, found, "client IP must be stored in context")
			assert.Equal(t, tt.want, captured)
		})
	}
}

// ---- IPv6 remote address ----

func TestWithClientIP_IPv6RemoteAddr(t *testing.T) {
	h := newTestHandler()

	var captured string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = utils.GetClientIPFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.withClientIP(next)
	req := httptest.NewRequest(http.MethodGet, "/epub", nil)
	req.RemoteAddr = "[2001:db8::1]:52000"

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Equal(t, "2001:db8::1", captured)
}

// ---- Next handler всегда вызывается ----

func TestWithClientIP_AlwaysCallsNext(t *testing.T) {
	h := newTestHandler()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.withClientIP(next)
	req := httptest.NewRequest(http.MethodGet, "/epub", nil)
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.True(t, nextCalled)
}
