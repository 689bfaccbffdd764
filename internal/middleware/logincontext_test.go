package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/trsv-dev/simple-topology-console/internal/auth"
	authMocks "github.com/trsv-dev/simple-topology-console/internal/auth/mocks"
	"github.com/trsv-dev/simple-topology-console/internal/contextkeys"
	"github.com/trsv-dev/simple-topology-console/internal/errs"
	storageMocks "github.com/trsv-dev/simple-topology-console/internal/storage/mocks"
)

// TestLoginToContextMiddleware Проверяет извлечение оператора из cookie и bearer-токена.
func TestLoginToContextMiddleware(t *testing.T) {
	const secret = "secret"

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenBuilder := authMocks.NewMockTokenBuilder(ctrl)
	verifier := authMocks.NewMockTokenVerifier(ctrl)
	users := storageMocks.NewMockStorage(ctrl)

	tests := []struct {
		name       string
		setup      func(r *http.Request)
		setupMock  func()
		noVerifier bool
		wantStatus int
		wantLogin  string
		wantID     int64
	}{
		{
			name: "валидная cookie",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "token"})
			},
			setupMock: func() {
				tokenBuilder.EXPECT().GetClaims("token", secret).Return(&auth.Claims{ID: 7, Login: "admin"}, nil)
			},
			wantStatus: http.StatusOK,
			wantLogin:  "admin",
			wantID:     7,
		},
		{
			name: "невалидная cookie",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "broken"})
			},
			setupMock: func() {
				tokenBuilder.EXPECT().GetClaims("broken", secret).Return(nil, errors.New("signature is invalid"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "bearer-токен зарегистрированного оператора",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer oidc-token")
			},
			setupMock: func() {
				verifier.EXPECT().Verify(gomock.Any(), "oidc-token").Return(&auth.Claims{Login: "operator"}, nil)
				users.EXPECT().GetUserIDByLogin(gomock.Any(), "operator").Return(int64(3), nil)
			},
			wantStatus: http.StatusOK,
			wantLogin:  "operator",
			wantID:     3,
		},
		{
			name: "bearer-токен незарегистрированного оператора",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer oidc-token")
			},
			setupMock: func() {
				verifier.EXPECT().Verify(gomock.Any(), "oidc-token").Return(&auth.Claims{Login: "stranger"}, nil)
				users.EXPECT().GetUserIDByLogin(gomock.Any(), "stranger").
					Return(int64(0), errs.NewErrLoginNotFound(errors.New("not found")))
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name: "ошибка хранилища при поиске оператора",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer oidc-token")
			},
			setupMock: func() {
				verifier.EXPECT().Verify(gomock.Any(), "oidc-token").Return(&auth.Claims{Login: "operator"}, nil)
				users.EXPECT().GetUserIDByLogin(gomock.Any(), "operator").Return(int64(0), errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name: "отклонённый bearer-токен",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer expired")
			},
			setupMock: func() {
				verifier.EXPECT().Verify(gomock.Any(), "expired").Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "bearer без провайдера не принимается",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer oidc-token")
			},
			setupMock:  func() {},
			noVerifier: true,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "нет ни cookie, ни токена",
			setup:      func(r *http.Request) {},
			setupMock:  func() {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "токен без логина",
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: auth.CookieName, Value: "anonymous"})
			},
			setupMock: func() {
				tokenBuilder.EXPECT().GetClaims("anonymous", secret).Return(&auth.Claims{ID: 1}, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			var (
				gotLogin string
				gotID    int64
			)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotLogin, _ = r.Context().Value(contextkeys.Login).(string)
				gotID, _ = r.Context().Value(contextkeys.ID).(int64)
				w.WriteHeader(http.StatusOK)
			})

			var v auth.TokenVerifier = verifier
			if tt.noVerifier {
				v = nil
			}

			r := httptest.NewRequest(http.MethodGet, "/api/topology", nil)
			tt.setup(r)
			w := httptest.NewRecorder()

			LoginToContextMiddleware(secret, tokenBuilder, v, users)(next).ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantLogin, gotLogin)
			assert.Equal(t, tt.wantID, gotID)
		})
	}
}
