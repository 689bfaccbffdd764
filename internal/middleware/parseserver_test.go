package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// TestParseServerKeyMiddleware Проверяет параметры host и server.
func TestParseServerKeyMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		host           string
		server         string
		wantStatus     int
		wantNextCalled bool
	}{
		{"корректные параметры", "master", "server-one", http.StatusOK, true},
		{"пустой host", "", "server-one", http.StatusBadRequest, false},
		{"пустой server", "master", "", http.StatusBadRequest, false},
		{"server с '='", "master", "server=one", http.StatusBadRequest, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("host", tt.host)
			rctx.URLParams.Add("server", tt.server)
			r := httptest.NewRequest(http.MethodGet, "/api/servers/x/y", nil)
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			ParseServerKeyMiddleware(next).ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)
		})
	}
}
