package di_containers

import (
	"github.com/trsv-dev/simple-topology-console/internal/api/app_handler"
	"github.com/trsv-dev/simple-topology-console/internal/api/authorization_handler"
	"github.com/trsv-dev/simple-topology-console/internal/api/control_handler"
	"github.com/trsv-dev/simple-topology-console/internal/api/finder_handler"
	"github.com/trsv-dev/simple-topology-console/internal/api/health_handler"
	"github.com/trsv-dev/simple-topology-console/internal/api/registration_handler"
	"github.com/trsv-dev/simple-topology-console/internal/api/settings_handler"
	"github.com/trsv-dev/simple-topology-console/internal/api/topology_handler"
	"github.com/trsv-dev/simple-topology-console/internal/api/ui_handler"
	"github.com/trsv-dev/simple-topology-console/internal/auth"
	"github.com/trsv-dev/simple-topology-console/internal/broadcast"
	"github.com/trsv-dev/simple-topology-console/internal/columns"
	"github.com/trsv-dev/simple-topology-console/internal/config"
	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	"github.com/trsv-dev/simple-topology-console/internal/environment"
	"github.com/trsv-dev/simple-topology-console/internal/health_storage"
	"github.com/trsv-dev/simple-topology-console/internal/netutils"
	"github.com/trsv-dev/simple-topology-console/internal/place"
	"github.com/trsv-dev/simple-topology-console/internal/presenters"
	"github.com/trsv-dev/simple-topology-console/internal/runtime"
	"github.com/trsv-dev/simple-topology-console/internal/storage"
)

// HandlersContainer Контейнер со всеми хендлерами приложения и зависимостями middleware.
type HandlersContainer struct {
	RegistrationHandler  *registration_handler.RegistrationHandler
	AuthorizationHandler *authorization_handler.AuthorizationHandler
	HealthHandler        *health_handler.HealthHandler
	SettingsHandler      *settings_handler.SettingsHandler
	TopologyHandler      *topology_handler.TopologyHandler
	FinderHandler        *finder_handler.FinderHandler
	ControlHandler       *control_handler.ControlHandler
	UIHandler            *ui_handler.UIHandler
	AppHandler           *app_handler.AppHandler

	// Topology Общий для хендлеров и воркера опроса топологии.
	Topology runtime.TopologyReader

	Storage        storage.Storage
	Environment    *environment.Environment
	TokenBuilder   auth.TokenBuilder
	TokenVerifier  auth.TokenVerifier
	JWTSecretKey   string
	AllowedOrigins []string
	WebInterface   bool
}

// NewHandlersContainer Конструктор контейнера с зависимостями для хендлеров.
// verifier может быть nil, если внешний провайдер не настроен.
func NewHandlersContainer(storage storage.Storage, stateCache health_storage.StateCacheStorage, srvConfig *config.Config,
	broadcaster broadcast.Broadcaster, tokenBuilder auth.TokenBuilder, verifier auth.TokenVerifier,
	dispatcher dmr.Dispatcher, env *environment.Environment, netChecker netutils.Checker) *HandlersContainer {

	topology := runtime.NewFunctions(env, dispatcher)
	actions := runtime.NewServerActions(env, dispatcher, broadcaster)

	f := columns.NewFinder(columns.Deps{
		Environment: env,
		Dispatcher:  dispatcher,
		Topology:    topology,
		Actions:     actions,
	})

	manager := place.NewManager(place.Homepage,
		presenters.NewHomePresenter(env),
		presenters.NewConfigurationPresenter(env, f),
		presenters.NewRuntimePresenter(env, dispatcher, f),
		presenters.NewModelBrowserPresenter(dispatcher),
		presenters.NewPathsPresenter(dispatcher),
		presenters.NewSystemPropertiesPresenter(dispatcher),
		presenters.NewServerConfigurationPresenter(env, dispatcher, actions),
	)

	return &HandlersContainer{
		RegistrationHandler: registration_handler.NewRegistrationHandler(storage, tokenBuilder,
			srvConfig.JWTSecretKey, srvConfig.RegistrationKey, srvConfig.OpenRegistration),
		AuthorizationHandler: authorization_handler.NewAuthorizationHandler(storage, tokenBuilder, srvConfig.JWTSecretKey),
		HealthHandler:        health_handler.NewHealthHandler(storage, netChecker, srvConfig.ManagementURL),
		SettingsHandler:      settings_handler.NewSettingsHandler(storage),
		TopologyHandler:      topology_handler.NewTopologyHandler(topology, stateCache),
		FinderHandler:        finder_handler.NewFinderHandler(env, f),
		ControlHandler:       control_handler.NewControlHandler(actions, dispatcher),
		UIHandler:            ui_handler.NewUIHandler(manager),
		AppHandler:           app_handler.NewAppHandler(srvConfig.JWTSecretKey, broadcaster, env),

		Topology:       topology,
		Storage:        storage,
		Environment:    env,
		TokenBuilder:   tokenBuilder,
		TokenVerifier:  verifier,
		JWTSecretKey:   srvConfig.JWTSecretKey,
		AllowedOrigins: srvConfig.AllowedOrigins,
		WebInterface:   srvConfig.WebInterface,
	}
}
