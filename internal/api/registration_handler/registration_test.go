package registration_handler

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
	"github.com/trsv-dev/simple-topology-console/internal/auth"
	authMocks "github.com/trsv-dev/simple-topology-console/internal/auth/mocks"
	"github.com/trsv-dev/simple-topology-console/internal/errs"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
	"github.com/trsv-dev/simple-topology-console/internal/models"
	storageMocks "github.com/trsv-dev/simple-topology-console/internal/storage/mocks"
)

func init() {
	// инициализируем логгер для избежания nil pointer dereference в тестах
	logger.InitLogger("error", "stdout")
}

const testSecret = "test-jwt-secret-key"

func jsonBody(v any) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewBuffer(b)
}

// TestUserRegistration Проверяет регистрацию операторов.
func TestUserRegistration(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		body             io.Reader
		openRegistration bool
		setupMock        func(s *storageMocks.MockStorage, tb *authMocks.MockTokenBuilder)
		wantStatus       int
		wantToken        string
	}{
		{
			name:       "метод не POST",
			method:     http.MethodGet,
			setupMock:  func(*storageMocks.MockStorage, *authMocks.MockTokenBuilder) {},
			wantStatus: http.StatusMethodNotAllowed,
		},
		{
			name:             "невалидный JSON",
			method:           http.MethodPost,
			body:             bytes.NewBufferString("{invalid}"),
			openRegistration: true,
			setupMock:        func(*storageMocks.MockStorage, *authMocks.MockTokenBuilder) {},
			wantStatus:       http.StatusBadRequest,
		},
		{
			name:             "ошибка чтения тела запроса",
			method:           http.MethodPost,
			body:             &errorReader{},
			openRegistration: true,
			setupMock:        func(*storageMocks.MockStorage, *authMocks.MockTokenBuilder) {},
			wantStatus:       http.StatusBadRequest,
		},
		{
			name:       "закрытая регистрация без ключа",
			method:     http.MethodPost,
			body:       jsonBody(models.User{Login: "operator", Password: "password"}),
			setupMock:  func(*storageMocks.MockStorage, *authMocks.MockTokenBuilder) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:             "логин менее 4 символов",
			method:           http.MethodPost,
			body:             jsonBody(models.User{Login: "usr", Password: "password"}),
			openRegistration: true,
			setupMock:        func(*storageMocks.MockStorage, *authMocks.MockTokenBuilder) {},
			wantStatus:       http.StatusBadRequest,
		},
		{
			name:             "пользователь уже существует",
			method:           http.MethodPost,
			body:             jsonBody(models.User{Login: "existing", Password: "password"}),
			openRegistration: true,
			setupMock: func(s *storageMocks.MockStorage, _ *authMocks.MockTokenBuilder) {
				s.EXPECT().CreateUser(gomock.Any(), gomock.AssignableToTypeOf(&models.User{})).
					Return(nil, errs.NewErrLoginIsTaken("existing", errors.New("duplicate key")))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:             "внутренняя ошибка хранилища",
			method:           http.MethodPost,
			body:             jsonBody(models.User{Login: "operator", Password: "password"}),
			openRegistration: true,
			setupMock: func(s *storageMocks.MockStorage, _ *authMocks.MockTokenBuilder) {
				s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, errors.New("database error"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:             "ошибка создания токена",
			method:           http.MethodPost,
			body:             jsonBody(models.User{Login: "operator", Password: "password"}),
			openRegistration: true,
			setupMock: func(s *storageMocks.MockStorage, tb *authMocks.MockTokenBuilder) {
				s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(&models.User{ID: 1, Login: "operator"}, nil)
				tb.EXPECT().BuildJWTToken(gomock.Any(), testSecret).Return("", errors.New("sign error"))
			},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:             "успешная регистрация",
			method:           http.MethodPost,
			body:             jsonBody(models.User{Login: "operator", Password: "password"}),
			openRegistration: true,
			setupMock: func(s *storageMocks.MockStorage, tb *authMocks.MockTokenBuilder) {
				s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(&models.User{ID: 7, Login: "operator"}, nil)
				tb.EXPECT().BuildJWTToken(&models.User{ID: 7, Login: "operator"}, testSecret).Return("token", nil)
			},
			wantStatus: http.StatusCreated,
			wantToken:  "token",
		},
		{
			name:   "закрытая регистрация с верным ключом",
			method: http.MethodPost,
			body: jsonBody(models.RegisterRequest{
				User:            models.User{Login: "operator", Password: "password"},
				RegistrationKey: "reg-key",
			}),
			setupMock: func(s *storageMocks.MockStorage, tb *authMocks.MockTokenBuilder) {
				s.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(&models.User{ID: 8, Login: "operator"}, nil)
				tb.EXPECT().BuildJWTToken(gomock.Any(), testSecret).Return("token-8", nil)
			},
			wantStatus: http.StatusCreated,
			wantToken:  "token-8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := storageMocks.NewMockStorage(ctrl)
			mockTokenBuilder := authMocks.NewMockTokenBuilder(ctrl)
			tt.setupMock(mockStorage, mockTokenBuilder)

			handler := NewRegistrationHandler(mockStorage, mockTokenBuilder, testSecret, "reg-key", tt.openRegistration)

			r := httptest.NewRequest(tt.method, "/api/user/register", tt.body)
			w := httptest.NewRecorder()

			handler.UserRegistration(w, r)

			res := w.Result()
			defer res.Body.Close()

			assert.Equal(t, tt.wantStatus, res.StatusCode)

			if tt.wantToken != "" {
				var got response.AuthResponse
				require.NoError(t, json.NewDecoder(res.Body).Decode(&got))
				assert.Equal(t, tt.wantToken, got.Token)
				assert.Equal(t, "operator", got.Login)

				cookies := res.Cookies()
				require.Len(t, cookies, 1)
				assert.Equal(t, auth.CookieName, cookies[0].Name)
				assert.Equal(t, tt.wantToken, cookies[0].Value)
			}
		})
	}
}

// errorReader Вспомогательная структура для имитации ошибки при чтении.
type errorReader struct{}

func (e *errorReader) Read(p []byte) (n int, err error) {
	return 0, errors.New("read error")
}
