package middleware

import (
	"net/http"

	"github.com/trsv-dev/simple-topology-console/internal/api/response"
	"github.com/trsv-dev/simple-topology-console/internal/bootstrap"
	"github.com/trsv-dev/simple-topology-console/internal/contextkeys"
	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	"github.com/trsv-dev/simple-topology-console/internal/environment"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
	"github.com/trsv-dev/simple-topology-console/internal/settings"
	"github.com/trsv-dev/simple-topology-console/internal/storage"
)

// SettingsMiddleware Загружает настройки оператора и кладёт их в контекст.
// Роли run-as из настроек применяются ко всем операциям management-модели в запросе.
func SettingsMiddleware(store storage.SettingsStorage, env *environment.Environment) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			login, _ := r.Context().Value(contextkeys.Login).(string)

			bc := &bootstrap.Context{Login: login, Environment: env}
			if err := bootstrap.Run(r.Context(), bc, bootstrap.NewLoadSettings(store)); err != nil {
				logger.Log.Error("Не удалось загрузить настройки оператора",
					logger.String("login", login),
					logger.String("err", err.Error()),
				)
				response.ErrorJSON(w, http.StatusInternalServerError, "Не удалось загрузить настройки")
				return
			}

			ctx := settings.WithContext(r.Context(), bc.Settings)
			if runAs := bc.Settings.Get(settings.RunAs); runAs.IsDefined() {
				ctx = dmr.WithRunAs(ctx, runAs.Set())
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
