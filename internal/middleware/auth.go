package middleware

import (
	"net/http"

	"github.com/trsv-dev/simple-topology-console/internal/api/response"
	"github.com/trsv-dev/simple-topology-console/internal/contextkeys"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
	"github.com/trsv-dev/simple-topology-console/internal/models"
)

// RequireAuthMiddleware Пропускает запрос дальше, только если LoginToContextMiddleware
// положил в контекст логин и id оператора. Их отсутствие - ошибка сборки маршрутов.
func RequireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		creds := models.GetContextCreds(r.Context())
		if creds.Login == "" || creds.UserID <= 0 {
			requestID, _ := r.Context().Value(contextkeys.RequestID).(string)
			logger.Log.Error("В контексте нет данных оператора",
				logger.String("uri", r.RequestURI),
				logger.String("request_id", requestID),
				logger.Int64("user_id", creds.UserID))
			response.ErrorJSON(w, http.StatusInternalServerError, "Ошибка сервера")
			return
		}

		next.ServeHTTP(w, r)
	})
}
