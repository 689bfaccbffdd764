package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trsv-dev/simple-topology-console/internal/di_containers"
	"github.com/trsv-dev/simple-topology-console/internal/middleware"
	"github.com/trsv-dev/simple-topology-console/internal/place"
	"github.com/trsv-dev/simple-topology-console/static"
)

// Router Роутер.
func Router(h *di_containers.HandlersContainer) chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.LogMiddleware)
	router.Use(middleware.CorsMiddleware(h.AllowedOrigins))

	// публичные маршруты
	router.Get("/health", h.HealthHandler.GetHealth)
	router.Post("/api/user/register", h.RegistrationHandler.UserRegistration)
	router.Post("/api/user/login", h.AuthorizationHandler.UserAuthorization)

	if h.WebInterface {
		router.Handle(static.Prefix+"*", static.Handler())
		router.Handle("/", http.RedirectHandler(place.NewRequest(place.Homepage).Href(), http.StatusFound))
	}

	// маршруты, требующие авторизацию
	router.Group(func(r chi.Router) {
		r.Use(middleware.LoginToContextMiddleware(h.JWTSecretKey, h.TokenBuilder, h.TokenVerifier, h.Storage))
		r.Use(middleware.RequireAuthMiddleware)
		r.Use(middleware.SettingsMiddleware(h.Storage, h.Environment))

		r.Get("/api/environment", h.AppHandler.GetEnvironment)
		r.Get("/api/management/status", h.HealthHandler.ManagementStatus)

		r.Route("/api/user/settings", func(r chi.Router) {
			r.Get("/", h.SettingsHandler.GetSettings)
			r.Put("/{key}", h.SettingsHandler.SetSetting)
			r.Delete("/{key}", h.SettingsHandler.DeleteSetting)
		})

		r.Route("/api/topology", func(r chi.Router) {
			r.Get("/", h.TopologyHandler.GetTopology)
			r.Get("/hosts", h.TopologyHandler.GetHosts)
			r.Get("/server-groups", h.TopologyHandler.GetServerGroups)
			r.Get("/states", h.TopologyHandler.GetStates)
		})
		r.Get("/api/profiles/{profile}/servers", h.TopologyHandler.GetProfileServers)

		r.Get("/api/finder/{column}", h.FinderHandler.RenderColumn)
		r.Get("/api/finder/{column}/preview", h.FinderHandler.PreviewItem)

		r.Route("/api/servers/{host}/{server}", func(r chi.Router) {
			r.Use(middleware.ParseServerKeyMiddleware)

			r.Get("/", h.ControlHandler.GetServer)
			r.Post("/{action}", h.ControlHandler.ServerAction)
		})

		if h.WebInterface {
			r.Get("/events", h.AppHandler.Events)
			r.Get("/ui/*", h.UIHandler.Page)
		}
	})

	return router
}
