package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/trsv-dev/simple-topology-console/internal/errs"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
)

// AuthResponse Успешный ответ при регистрации или авторизации пользователя.
type AuthResponse struct {
	Message string `json:"message"`
	Login   string `json:"login"`
	Token   string `json:"token"`
}

// APIError Модель возвращаемых ответов при ошибках.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// APISuccess Модель успешного ответа API.
type APISuccess struct {
	Message string `json:"message"`
}

// JSON Пишет в ответ хендлера произвольные данные.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// SuccessJSON Шаблон для успешного ответа в хендлерах.
func SuccessJSON(w http.ResponseWriter, status int, message string) {
	JSON(w, status, APISuccess{Message: message})
}

// ErrorJSON Шаблон для ответа с ошибкой в хендлерах.
func ErrorJSON(w http.ResponseWriter, status int, message string) {
	JSON(w, status, APIError{Code: status, Message: message})
}

// StatusOf HTTP-статус для ошибок консоли: неизвестные колонки, элементы, страницы
// и серверы - 404, некорректный путь или параметр - 400, недопустимое действие - 409,
// ошибки management endpoint'а - 502.
func StatusOf(err error) int {
	var (
		unknownColumn   *errs.ErrUnknownColumn
		itemNotFound    *errs.ErrItemNotFound
		unknownPlace    *errs.ErrUnknownPlace
		serverNotFound  *errs.ErrServerNotFound
		invalidPath     *errs.ErrInvalidPath
		invalidParam    *errs.ErrInvalidParameter
		unknownSetting  *errs.ErrUnknownSetting
		invalidSetting  *errs.ErrInvalidSetting
		notAllowed      *errs.ErrActionNotAllowed
		operationFailed *errs.ErrOperationFailed
		dispatcherErr   *errs.ErrDispatcher
	)

	switch {
	case errors.As(err, &unknownColumn), errors.As(err, &itemNotFound),
		errors.As(err, &unknownPlace), errors.As(err, &serverNotFound),
		errors.As(err, &unknownSetting):
		return http.StatusNotFound
	case errors.As(err, &invalidPath), errors.As(err, &invalidParam), errors.As(err, &invalidSetting):
		return http.StatusBadRequest
	case errors.As(err, &notAllowed):
		return http.StatusConflict
	case errors.As(err, &operationFailed), errors.As(err, &dispatcherErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// FromError Ответ с ошибкой по её типу. Текст внутренних ошибок не раскрывается.
func FromError(w http.ResponseWriter, err error) {
	status := StatusOf(err)

	if status == http.StatusInternalServerError {
		logger.Log.Error("Внутренняя ошибка сервера", logger.String("err", err.Error()))
		ErrorJSON(w, status, "Внутренняя ошибка сервера")
		return
	}

	logger.Log.Warn("Ошибка обработки запроса",
		logger.Int("status", status),
		logger.String("err", err.Error()),
	)
	ErrorJSON(w, status, err.Error())
}
