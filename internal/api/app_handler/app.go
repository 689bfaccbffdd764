package app_handler

import (
	"net/http"

	"github.com/trsv-dev/simple-topology-console/internal/api/response"
	"github.com/trsv-dev/simple-topology-console/internal/broadcast"
	"github.com/trsv-dev/simple-topology-console/internal/environment"
)

// AppHandler Структура для передачи общих зависимостей.
type AppHandler struct {
	Broadcaster  broadcast.Broadcaster
	JWTSecretKey string
	Environment  *environment.Environment
}

// NewAppHandler Конструктор AppHandler.
func NewAppHandler(JWTSecretKey string, broadcaster broadcast.Broadcaster, env *environment.Environment) *AppHandler {
	return &AppHandler{JWTSecretKey: JWTSecretKey, Broadcaster: broadcaster, Environment: env}
}

// Events Подписка браузера на поток событий (SSE). Поток выбирается параметром stream.
func (h *AppHandler) Events(w http.ResponseWriter, r *http.Request) {
	h.Broadcaster.HTTPHandler().ServeHTTP(w, r)
}

// GetEnvironment Сведения о management-сервере, прочитанные при старте.
func (h *AppHandler) GetEnvironment(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.Environment)
}
