package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trsv-dev/simple-topology-console/internal/contextkeys"
	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	"github.com/trsv-dev/simple-topology-console/internal/environment"
	"github.com/trsv-dev/simple-topology-console/internal/settings"
	storageMocks "github.com/trsv-dev/simple-topology-console/internal/storage/mocks"
)

// TestSettingsMiddleware Проверяет загрузку настроек и run-as в контекст запроса.
func TestSettingsMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := storageMocks.NewMockSettingsStorage(ctrl)
	env := environment.New(environment.Domain, environment.Community)

	tests := []struct {
		name         string
		setupMock    func()
		wantStatus   int
		wantPageSize int
		wantRunAs    []string
	}{
		{
			name: "сохранённые настройки и run-as",
			setupMock: func() {
				store.EXPECT().GetSettings(gomock.Any(), "admin").
					Return(map[string]string{"page-size": "25", "run-as": "Monitor, Operator"}, nil)
			},
			wantStatus:   http.StatusOK,
			wantPageSize: 25,
			wantRunAs:    []string{"Monitor", "Operator"},
		},
		{
			name: "значения по умолчанию",
			setupMock: func() {
				store.EXPECT().GetSettings(gomock.Any(), "admin").Return(map[string]string{}, nil)
			},
			wantStatus:   http.StatusOK,
			wantPageSize: settings.DefaultPageSize,
		},
		{
			name: "ошибка хранилища",
			setupMock: func() {
				store.EXPECT().GetSettings(gomock.Any(), "admin").Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			var (
				called   bool
				pageSize int
				runAs    []string
			)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				_, ok := settings.FromContext(r.Context())
				require.True(t, ok)
				pageSize = settings.PageSizeFromContext(r.Context())
				runAs = dmr.RunAsFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/api/user/settings", nil)
			r = r.WithContext(context.WithValue(r.Context(), contextkeys.Login, "admin"))
			w := httptest.NewRecorder()

			SettingsMiddleware(store, env)(next).ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				assert.False(t, called)
				return
			}
			assert.Equal(t, tt.wantPageSize, pageSize)
			assert.Equal(t, tt.wantRunAs, runAs)
		})
	}
}
