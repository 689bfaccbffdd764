package health_handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/trsv-dev/simple-topology-console/internal/api/response"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
	"github.com/trsv-dev/simple-topology-console/internal/netutils"
	"github.com/trsv-dev/simple-topology-console/internal/storage"
	"github.com/trsv-dev/simple-topology-console/internal/worker"
)

// HealthHandler обрабатывает HTTP-запросы для проверки состояния консоли.
type HealthHandler struct {
	storage       storage.Storage
	checker       netutils.Checker
	managementURL string
}

// NewHealthHandler Конструктор HealthHandler.
func NewHealthHandler(storage storage.Storage, checker netutils.Checker, managementURL string) *HealthHandler {
	return &HealthHandler{
		storage:       storage,
		checker:       checker,
		managementURL: managementURL,
	}
}

// GetHealth обрабатывает health-check запрос и возвращает статус готовности консоли.
// Возвращает HTTP 200, если база данных доступна, иначе HTTP 503.
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pingCtx, pingCancel := context.WithTimeout(ctx, 2*time.Second)
	defer pingCancel()

	if err := h.storage.Ping(pingCtx); err != nil {
		logger.Log.Error("База данных PostgreSQL не отвечает", logger.String("error", err.Error()))

		http.Error(w, "База данных недоступна", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// ManagementStatus Доступность management endpoint'а.
func (h *HealthHandler) ManagementStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	host, port, err := netutils.Endpoint(h.managementURL)
	if err != nil {
		logger.Log.Error("Некорректный адрес management endpoint'а", logger.String("err", err.Error()))
		response.ErrorJSON(w, http.StatusInternalServerError, "Некорректный адрес management endpoint'а")
		return
	}

	statusCtx, statusDone := context.WithTimeout(ctx, 3*time.Second)
	defer statusDone()

	statusCh := worker.EndpointStatusWorker(statusCtx, h.checker, host, port, 2*time.Second)

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(<-statusCh); err != nil {
		logger.Log.Error("Ошибка кодирования JSON", logger.String("err", err.Error()))
		response.ErrorJSON(w, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}
}
