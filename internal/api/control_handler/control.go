package control_handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trsv-dev/simple-topology-console/internal/api/response"
	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
	"github.com/trsv-dev/simple-topology-console/internal/models"
	"github.com/trsv-dev/simple-topology-console/internal/runtime"
)

// ServerResponse Сервер и действия, допустимые в его текущем состоянии.
type ServerResponse struct {
	Server  *runtime.Server  `json:"server"`
	Pending bool             `json:"pending"`
	Actions []runtime.Action `json:"actions"`
}

// ControlHandler Обрабатывает запросы управления серверами домена (start, stop, reload и т.д.).
type ControlHandler struct {
	actions    runtime.ActionExecutor
	dispatcher dmr.Dispatcher
}

// NewControlHandler Конструктор ControlHandler.
func NewControlHandler(actions runtime.ActionExecutor, dispatcher dmr.Dispatcher) *ControlHandler {
	return &ControlHandler{
		actions:    actions,
		dispatcher: dispatcher,
	}
}

// GetServer Текущее состояние сервера.
func (h *ControlHandler) GetServer(w http.ResponseWriter, r *http.Request) {
	host := chi.URLParam(r, "host")
	name := chi.URLParam(r, "server")

	server, err := runtime.ReadServer(r.Context(), h.dispatcher, host, name)
	if err != nil {
		response.FromError(w, err)
		return
	}

	resp := ServerResponse{
		Server:  server,
		Pending: h.actions.IsPending(host, name),
		Actions: []runtime.Action{},
	}
	if !resp.Pending {
		resp.Actions = runtime.AllowedActions(server)
	}

	response.JSON(w, http.StatusOK, resp)
}

// ServerAction Выполняет действие над сервером.
func (h *ControlHandler) ServerAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	creds := models.GetContextCreds(ctx)

	host := chi.URLParam(r, "host")
	name := chi.URLParam(r, "server")

	action, ok := runtime.ParseAction(chi.URLParam(r, "action"))
	if !ok {
		response.ErrorJSON(w, http.StatusBadRequest, fmt.Sprintf("Неизвестное действие `%s`", chi.URLParam(r, "action")))
		return
	}

	logger.Log.Info("Запрошено действие над сервером",
		logger.String("login", creds.Login),
		logger.String("host", host),
		logger.String("server", name),
		logger.String("action", string(action)))

	if _, err := h.actions.Execute(ctx, host, name, action); err != nil {
		response.FromError(w, err)
		return
	}

	response.SuccessJSON(w, http.StatusOK, fmt.Sprintf("Действие `%s` над сервером `%s/%s` выполнено", action, host, name))
}
