package registration_handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/trsv-dev/simple-topology-console/internal/api/response"
	"github.com/trsv-dev/simple-topology-console/internal/auth"
	"github.com/trsv-dev/simple-topology-console/internal/errs"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
	"github.com/trsv-dev/simple-topology-console/internal/models"
	"github.com/trsv-dev/simple-topology-console/internal/storage"
)

// RegistrationHandler Обработчик регистрации операторов.
type RegistrationHandler struct {
	storage          storage.UserStorage
	tokenBuilder     auth.TokenBuilder
	JWTSecretKey     string
	registrationKey  string
	openRegistration bool
}

// NewRegistrationHandler Конструктор RegistrationHandler.
func NewRegistrationHandler(storage storage.UserStorage, tokenBuilder auth.TokenBuilder, JWTSecretKey string, registrationKey string, openRegistration bool) *RegistrationHandler {
	return &RegistrationHandler{
		storage:          storage,
		tokenBuilder:     tokenBuilder,
		JWTSecretKey:     JWTSecretKey,
		registrationKey:  registrationKey,
		openRegistration: openRegistration,
	}
}

// UserRegistration Регистрация оператора.
func (h *RegistrationHandler) UserRegistration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	defer r.Body.Close()
	data, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Log.Error("Ошибка чтения тела запроса", logger.String("error", err.Error()))
		response.ErrorJSON(w, http.StatusBadRequest, "Ошибка чтения тела запроса")
		return
	}

	var registerRequest models.RegisterRequest
	if err = json.Unmarshal(data, &registerRequest); err != nil {
		logger.Log.Error("Ошибка декодирования тела запроса при регистрации", logger.String("error", err.Error()))
		response.ErrorJSON(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	// при закрытой регистрации нужен ключ из конфигурации
	if !h.openRegistration && registerRequest.RegistrationKey != h.registrationKey {
		logger.Log.Warn("Попытка регистрации с невалидным ключом", logger.String("login", registerRequest.Login))
		response.ErrorJSON(w, http.StatusBadRequest, "невалидный ключ регистрации")
		return
	}

	user := models.User{
		Login:    registerRequest.Login,
		Password: registerRequest.Password,
	}

	if err = user.Validate(); err != nil {
		logger.Log.Error("Ошибка при валидации регистрационных данных", logger.String("err", err.Error()))
		response.ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.storage.CreateUser(ctx, &user)
	var ErrLoginIsTaken *errs.ErrLoginIsTaken
	switch {
	case errors.As(err, &ErrLoginIsTaken):
		logger.Log.Info("Такой оператор уже существует",
			logger.String("login", ErrLoginIsTaken.Login),
			logger.String("err", ErrLoginIsTaken.Err.Error()))
		response.ErrorJSON(w, http.StatusConflict, "Пользователь уже существует")
		return
	case err != nil:
		logger.Log.Error("Ошибка при создании оператора", logger.String("err", err.Error()))
		response.ErrorJSON(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	tokenString, err := h.tokenBuilder.BuildJWTToken(created, h.JWTSecretKey)
	if err != nil {
		logger.Log.Error("Ошибка при создании JWT-токена", logger.String("err", err.Error()))
		response.ErrorJSON(w, http.StatusInternalServerError, "Ошибка при создании JWT-токена")
		return
	}

	auth.CreateCookie(w, tokenString)

	logger.Log.Debug("Успешная регистрация оператора", logger.String("login", created.Login))

	response.JSON(w, http.StatusCreated, response.AuthResponse{
		Message: "Пользователь зарегистрирован",
		Login:   created.Login,
		Token:   tokenString,
	})
}
