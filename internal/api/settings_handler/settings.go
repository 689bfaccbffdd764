package settings_handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trsv-dev/simple-topology-console/internal/api/response"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
	"github.com/trsv-dev/simple-topology-console/internal/models"
	"github.com/trsv-dev/simple-topology-console/internal/settings"
	"github.com/trsv-dev/simple-topology-console/internal/storage"
)

// SettingsHandler Обработчик настроек оператора.
type SettingsHandler struct {
	storage storage.SettingsStorage
}

// NewSettingsHandler Конструктор SettingsHandler.
func NewSettingsHandler(storage storage.SettingsStorage) *SettingsHandler {
	return &SettingsHandler{storage: storage}
}

// GetSettings Текущие настройки оператора.
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, ok := settings.FromContext(r.Context())
	if !ok {
		logger.Log.Error("Не удалось получить настройки из контекста")
		response.ErrorJSON(w, http.StatusInternalServerError, "Ошибка сервера")
		return
	}

	response.JSON(w, http.StatusOK, s)
}

// SetSetting Проверяет и сохраняет значение настройки.
func (h *SettingsHandler) SetSetting(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	creds := models.GetContextCreds(ctx)

	key, err := settings.ParseKey(chi.URLParam(r, "key"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		logger.Log.Error("Ошибка чтения тела запроса", logger.String("error", err.Error()))
		response.ErrorJSON(w, http.StatusBadRequest, "Ошибка чтения тела запроса")
		return
	}

	var req models.SettingRequest
	if err = json.Unmarshal(body, &req); err != nil {
		response.ErrorJSON(w, http.StatusBadRequest, "Неверный формат запроса")
		return
	}

	if err = settings.Validate(key, req.Value); err != nil {
		response.FromError(w, err)
		return
	}

	if err = h.storage.SetSetting(ctx, creds.Login, string(key), req.Value); err != nil {
		logger.Log.Error("Ошибка сохранения настройки",
			logger.String("login", creds.Login),
			logger.String("key", string(key)),
			logger.String("err", err.Error()))
		response.ErrorJSON(w, http.StatusInternalServerError, "Ошибка сохранения настройки")
		return
	}

	logger.Log.Debug("Настройка сохранена",
		logger.String("login", creds.Login),
		logger.String("key", string(key)))

	s, ok := settings.FromContext(ctx)
	if !ok {
		response.SuccessJSON(w, http.StatusOK, "Настройка сохранена")
		return
	}
	// значение уже проверено
	_ = s.Set(key, req.Value)

	response.JSON(w, http.StatusOK, s)
}

// DeleteSetting Удаляет сохранённое значение: дальше действует значение по умолчанию.
func (h *SettingsHandler) DeleteSetting(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	creds := models.GetContextCreds(ctx)

	key, err := settings.ParseKey(chi.URLParam(r, "key"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	if err = h.storage.DeleteSetting(ctx, creds.Login, string(key)); err != nil {
		logger.Log.Error("Ошибка удаления настройки",
			logger.String("login", creds.Login),
			logger.String("key", string(key)),
			logger.String("err", err.Error()))
		response.ErrorJSON(w, http.StatusInternalServerError, "Ошибка удаления настройки")
		return
	}

	response.SuccessJSON(w, http.StatusOK, "Настройка сброшена")
}
