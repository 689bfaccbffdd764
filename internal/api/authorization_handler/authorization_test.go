package authorization_handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trsv-dev/simple-topology-console/internal/api/response"
	authMocks "github.com/trsv-dev/simple-topology-console/internal/auth/mocks"
	"github.com/trsv-dev/simple-topology-console/internal/errs"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
	"github.com/trsv-dev/simple-topology-console/internal/models"
	storageMocks "github.com/trsv-dev/simple-topology-console/internal/storage/mocks"
)

func init() {
	logger.InitLogger("error", "stdout")
}

const testSecret = "test-secret-key"

// TestNewAuthorizationHandler Проверяет конструктор AuthorizationHandler.
func TestNewAuthorizationHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewAuthorizationHandler(storageMocks.NewMockStorage(ctrl), authMocks.NewMockTokenBuilder(ctrl), testSecret)

	assert.NotNil(t, handler.storage, "storage должен быть инициализирован")
	assert.NotNil(t, handler.tokenBuilder, "tokenBuilder должен быть инициализирован")
	assert.Equal(t, testSecret, handler.JWTSecretKey, "JWTSecretKey должен совпадать")
}

// errorReader - helper для эмуляции ошибки чтения тела запроса
type errorReader struct{}

func (er *errorReader) Read(p []byte) (n int, err error) {
	return 0, errors.New("read error")
}

// TestUserAuthorization Проверяет авторизацию оператора.
func TestUserAuthorization(t *testing.T) {
	validBody := func() io.Reader {
		return bytes.NewBufferString(`{"login":"operator","password":"password"}`)
	}

	tests := []struct {
		name       string
		method     string
		body       io.Reader
		setupMock  func(s *storageMocks.MockStorage, tb *authMocks.MockTokenBuilder)
		wantStatus int
		wantToken  string
	}{
		{
			name:       "метод не POST",
			method:     http.MethodGet,
			setupMock:  func(*storageMocks.MockStorage, *authMocks.MockTokenBuilder) {},
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:       "ошибка чтения тела",
			method:     http.MethodPost,
			body:       &errorReader{},
			setupMock:  func(*storageMocks.MockStorage, *authMocks.MockTokenBuilder) {},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "невалидный JSON",
			method:     http.MethodPost,
			body:       bytes.NewBufferString("{"),
			setupMock:  func(*storageMocks.MockStorage, *authMocks.MockTokenBuilder) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "короткий пароль",
			method:     http.MethodPost,
			body:       bytes.NewBufferString(`{"login":"operator","password":"123"}`),
			setupMock:  func(*storageMocks.MockStorage, *authMocks.MockTokenBuilder) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "неверная пара логин/пароль",
			method: http.MethodPost,
			body:   validBody(),
			setupMock: func(s *storageMocks.MockStorage, _ *authMocks.MockTokenBuilder) {
				s.EXPECT().GetUser(gomock.Any(), gomock.Any()).
					Return(nil, errs.NewErrWrongLoginOrPassword(errors.New("mismatch")))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "ошибка хранилища",
			method: http.MethodPost,
			body:   validBody(),
			setupMock: func(s *storageMocks.MockStorage, _ *authMocks.MockTokenBuilder) {
				s.EXPECT().GetUser(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:   "успешная авторизация",
			method: http.MethodPost,
			body:   validBody(),
			setupMock: func(s *storageMocks.MockStorage, tb *authMocks.MockTokenBuilder) {
				verified := &models.User{ID: 3, Login: "operator"}
				s.EXPECT().GetUser(gomock.Any(), gomock.Any()).Return(verified, nil)
				tb.EXPECT().BuildJWTToken(verified, testSecret).Return("test-jwt-token", nil)
			},
			wantStatus: http.StatusOK,
			wantToken:  "test-jwt-token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := storageMocks.NewMockStorage(ctrl)
			mockTokenBuilder := authMocks.NewMockTokenBuilder(ctrl)
			tt.setupMock(mockStorage, mockTokenBuilder)

			handler := NewAuthorizationHandler(mockStorage, mockTokenBuilder, testSecret)

			r := httptest.NewRequest(tt.method, "/api/user/login", tt.body)
			w := httptest.NewRecorder()

			handler.UserAuthorization(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantToken != "" {
				var got response.AuthResponse
				require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.Equal(t, tt.wantToken, got.Token)
				assert.Equal(t, "operator", got.Login)
			}
		})
	}
}
