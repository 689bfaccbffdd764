package authorization_handler

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

// AuthorizationHandler Обработчик авторизации.
type AuthorizationHandler struct {
	storage      storage.UserStorage
	tokenBuilder auth.TokenBuilder
	JWTSecretKey string
}

// NewAuthorizationHandler Конструктор AuthorizationHandler.
func NewAuthorizationHandler(storage storage.UserStorage, tokenBuilder auth.TokenBuilder, JWTSecretKey string) *AuthorizationHandler {
	return &AuthorizationHandler{
		storage:      storage,
		tokenBuilder: tokenBuilder,
		JWTSecretKey: JWTSecretKey,
	}
}

// UserAuthorization Авторизация операторов.
func (h *AuthorizationHandler) UserAuthorization(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Log.Error("Ошибка чтения тела запроса", logger.String("error", err.Error()))
		response.ErrorJSON(w, http.StatusInternalServerError, "Ошибка чтения тела запроса")
		return
	}

	var user models.User
	if err = json.Unmarshal(body, &user); err != nil {
		logger.Log.Error("Ошибка анмаршаллинга данных в модель User", logger.String("error", err.Error()))
		response.ErrorJSON(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	if err = user.Validate(); err != nil {
		logger.Log.Error("Ошибка при валидации данных пользователя", logger.String("err", err.Error()))
		response.ErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	verifiedUser, err := h.storage.GetUser(ctx, &user)
	var ErrWrongLoginOrPassword *errs.ErrWrongLoginOrPassword
	switch {
	case errors.As(err, &ErrWrongLoginOrPassword):
		logger.Log.Warn("Неверная пара логин/пароль", logger.String("login", user.Login))
		response.ErrorJSON(w, http.StatusUnauthorized, "Неверная пара логин/пароль")
		return
	case err != nil:
		logger.Log.Error("Внутренняя ошибка сервера", logger.String("err", err.Error()))
		response.ErrorJSON(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	tokenString, err := h.tokenBuilder.BuildJWTToken(verifiedUser, h.JWTSecretKey)
	if err != nil {
		logger.Log.Error("Ошибка при создании JWT-токена", logger.String("err", err.Error()))
		response.ErrorJSON(w, http.StatusInternalServerError, "Ошибка при создании JWT-токена")
		return
	}

	auth.CreateCookie(w, tokenString)

	logger.Log.Debug("Успешная авторизация оператора", logger.String("login", verifiedUser.Login))

	response.JSON(w, http.StatusOK, response.AuthResponse{
		Message: "Пользователь авторизован",
		Login:   verifiedUser.Login,
		Token:   tokenString,
	})
}
