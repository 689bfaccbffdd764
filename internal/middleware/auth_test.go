package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trsv-dev/simple-topology-console/internal/contextkeys"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
)

func init() {
	logger.InitLogger("error", "stdout")
}

// TestRequireAuthMiddleware Проверяет middleware аутентификации.
func TestRequireAuthMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		login          any
		userID         any
		wantStatus     int
		wantNextCalled bool
	}{
		{
			name:           "успешная аутентификация с логином",
			login:          "testuser",
			userID:         int64(7),
			wantStatus:     http.StatusOK,
			wantNextCalled: true,
		},
		{
			name:           "логин отсутствует в контексте",
			login:          nil,
			userID:         int64(7),
			wantStatus:     http.StatusInternalServerError,
			wantNextCalled: false,
		},
		{
			name:           "логин пустая строка",
			login:          "",
			wantStatus:     http.StatusInternalServerError,
			wantNextCalled: false,
		},
		{
			name:           "нет id оператора",
			login:          "testuser",
			wantStatus:     http.StatusInternalServerError,
			wantNextCalled: false,
		},
		{
			name:           "id неправильного типа",
			login:          "testuser",
			userID:         7,
			wantStatus:     http.StatusInternalServerError,
			wantNextCalled: false,
		},
		{
			name:           "логин неправильного типа",
			login:          123,
			wantStatus:     http.StatusInternalServerError,
			wantNextCalled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/api/topology", nil)
			if tt.login != nil {
				r = r.WithContext(context.WithValue(r.Context(), contextkeys.Login, tt.login))
			}
			if tt.userID != nil {
				r = r.WithContext(context.WithValue(r.Context(), contextkeys.ID, tt.userID))
			}
			w := httptest.NewRecorder()

			RequireAuthMiddleware(next).ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantNextCalled, nextCalled)
			if !tt.wantNextCalled {
				assert.Contains(t, w.Body.String(), "Ошибка сервера")
			}
		})
	}
}
