package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/trsv-dev/simple-topology-console/internal/api/response"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
)

// ParseServerKeyMiddleware Проверяет параметры host и server маршрута.
// Имена не должны быть пустыми и не должны содержать '/' и '='.
func ParseServerKeyMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		for _, param := range []string{"host", "server"} {
			value := chi.URLParam(r, param)

			if value == "" {
				logger.Log.Warn("В запросе отсутствует параметр", logger.String("param", param))
				response.ErrorJSON(w, http.StatusBadRequest, "В запросе отсутствует "+param)
				return
			}

			if strings.ContainsAny(value, "/=") {
				logger.Log.Warn("Некорректный параметр",
					logger.String("param", param),
					logger.String("value", value),
				)
				response.ErrorJSON(w, http.StatusBadRequest, "Некорректное значение "+param)
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}
