package ui_handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trsv-dev/simple-topology-console/internal/api/response"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
	"github.com/trsv-dev/simple-topology-console/internal/place"
	"github.com/trsv-dev/simple-topology-console/internal/ui"
)

// UIHandler Обработчик HTML-страниц консоли.
type UIHandler struct {
	manager *place.Manager
}

// NewUIHandler Конструктор UIHandler.
func NewUIHandler(manager *place.Manager) *UIHandler {
	return &UIHandler{manager: manager}
}

// Page Открывает страницу по запросу вида /ui/token;k=v.
func (h *UIHandler) Page(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "*")

	req, err := place.ParseRequest(raw)
	if err != nil {
		logger.Log.Warn("Некорректный запрос страницы",
			logger.String("request", raw),
			logger.String("err", err.Error()),
		)
		ui.RenderError(r.Context(), w, http.StatusBadRequest, err.Error())
		return
	}

	page, effective, err := h.manager.RevealPlace(r.Context(), req)
	if err != nil {
		status := response.StatusOf(err)
		message := err.Error()
		if status == http.StatusInternalServerError {
			logger.Log.Error("Не удалось подготовить страницу",
				logger.String("token", req.NameToken),
				logger.String("err", err.Error()),
			)
			message = "Внутренняя ошибка сервера"
		}
		ui.RenderError(r.Context(), w, status, message)
		return
	}

	if effective.NameToken != req.NameToken {
		logger.Log.Debug("Открыта страница по умолчанию",
			logger.String("requested", req.NameToken),
			logger.String("opened", effective.NameToken),
		)
	}

	if err = ui.Render(r.Context(), w, http.StatusOK, page); err != nil {
		logger.Log.Error("Не удалось отрисовать страницу",
			logger.String("token", effective.NameToken),
			logger.String("err", err.Error()),
		)
		ui.RenderError(r.Context(), w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
	}
}
