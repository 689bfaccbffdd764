package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/trsv-dev/simple-topology-console/internal/auth"
	"github.com/trsv-dev/simple-topology-console/internal/bootstrap"
	"github.com/trsv-dev/simple-topology-console/internal/broadcast"
	"github.com/trsv-dev/simple-topology-console/internal/config"
	"github.com/trsv-dev/simple-topology-console/internal/di_containers"
	"github.com/trsv-dev/simple-topology-console/internal/health_storage"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
	"github.com/trsv-dev/simple-topology-console/internal/netutils"
	"github.com/trsv-dev/simple-topology-console/internal/server"
	"github.com/trsv-dev/simple-topology-console/internal/storage"
	"github.com/trsv-dev/simple-topology-console/internal/storage/postgres"
	"github.com/trsv-dev/simple-topology-console/internal/worker"
)

// "Сборка" и запуск консоли.
func main() {
	// recover для логирования паник в main
	defer func() {
		if r := recover(); r != nil {
			log.Println("Паника в main:", fmt.Sprintf("%v", r))
		}
	}()

	// переменные окружения из .env для локальной разработки
	errEnv := godotenv.Load("../../.env.development")
	if errEnv != nil {
		log.Println("Не удалось загрузить .env:", errEnv)
	}

	srvConfig := config.InitConfig()

	logger.InitLogger(srvConfig.LogLevel, srvConfig.LogOutput)
	defer logger.Log.Close()

	dispatcher, err := di_containers.NewDispatcher(srvConfig)
	if err != nil {
		logger.Log.Error("Не удалось создать диспетчер management-операций", logger.Err(err))
		os.Exit(1)
	}

	ctx, done := context.WithCancel(context.Background())
	defer done()

	// окружение читается один раз: режим работы management-сервера не меняется без перезапуска
	bc := &bootstrap.Context{}
	if err = bootstrap.Run(ctx, bc, bootstrap.NewReadEnvironment(dispatcher)); err != nil {
		logger.Log.Error("Не удалось прочитать окружение management-сервера", logger.Err(err))
		os.Exit(1)
	}
	env := bc.Environment

	pgStorage, err := postgres.InitStorage(ctx, srvConfig.DatabaseURI)
	if err != nil {
		logger.Log.Error("Не удалось инициировать хранилище (БД)", logger.Err(err))
		os.Exit(1)
	}

	var handlersStorage storage.Storage = pgStorage

	tokenBuilder := auth.NewJWTTokenBuilder()

	var tokenVerifier auth.TokenVerifier
	if srvConfig.OIDCIssuer != "" {
		verifier, oidcErr := auth.NewOIDCVerifier(ctx, srvConfig.OIDCIssuer, srvConfig.OIDCClientID)
		if oidcErr != nil {
			logger.Log.Error("Не удалось настроить OIDC-провайдера", logger.Err(oidcErr))
			os.Exit(1)
		}
		tokenVerifier = verifier
		logger.Log.Info("Включена проверка bearer-токенов", logger.String("issuer", srvConfig.OIDCIssuer))
	}

	var broadcaster broadcast.Broadcaster
	if srvConfig.WebInterface {
		broadcaster = broadcast.NewR3labsSSEAdapter(
			broadcast.MakeJWTTopicResolver(srvConfig.JWTSecretKey, tokenBuilder),
		)
	} else {
		broadcaster = broadcast.NewNoopAdapter()
	}

	stateCache := health_storage.NewStateCache()
	netChecker := netutils.NewNetworkChecker(srvConfig.PrivilegedPing)

	handlersContainer := di_containers.NewHandlersContainer(handlersStorage, stateCache, srvConfig, broadcaster,
		tokenBuilder, tokenVerifier, dispatcher, env, netChecker)

	// первичное состояние серверов, чтобы первая рассылка не содержала всю топологию
	if warmUpErr := health_storage.WarmUpStateCache(ctx, handlersContainer.Topology, stateCache); warmUpErr != nil {
		logger.Log.Warn("Не удалось прогреть кэш состояний серверов", logger.Err(warmUpErr))
	}

	srv, serverErrorCh := server.RunServer(srvConfig.RunAddress, handlersContainer)

	workersCtx, workersCtxCancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup

	// воркер опроса топологии публикует изменения состояний серверов через SSE
	if srvConfig.WebInterface && !env.IsStandalone() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.TopologyBroadcastWorker(workersCtx, handlersContainer.Topology, stateCache, broadcaster, srvConfig.TopologyPoll)
		}()
	}

	// канал системных сигналов
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err, ok := <-serverErrorCh:
		if !ok {
			logger.Log.Info("Канал ошибок сервера закрыт")
			return
		}
		logger.Log.Error("Ошибка сервера", logger.Err(err))
	case sig := <-stop:
		logger.Log.Info("Получен сигнал остановки приложения", logger.String("sig", sig.String()))
	}

	logger.Log.Info("Начало процедуры остановки приложения...")

	workersCtxCancel()

	workersDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(workersDone)
	}()

	select {
	case <-workersDone:
		logger.Log.Info("Воркеры остановлены")
	case <-time.After(5 * time.Second):
		logger.Log.Warn("Таймаут ожидания воркеров")
	}

	logger.Log.Info("Закрытие broadcaster...")
	if err = broadcaster.Close(); err != nil {
		logger.Log.Warn("Ошибка закрытия SSE адаптера", logger.Err(err))
	}

	serverShutdownCtx, serverShutdownCancel := context.WithTimeout(context.Background(), 7*time.Second)
	defer serverShutdownCancel()

	if err = srv.Shutdown(serverShutdownCtx); err != nil {
		logger.Log.Error("Ошибка остановки сервера", logger.Err(err))
	} else {
		logger.Log.Info("Сервер остановлен")
	}

	logger.Log.Info("Закрытие соединения с БД...")
	if err = handlersStorage.Close(); err != nil {
		logger.Log.Error("Ошибка закрытия соединения с БД", logger.Err(err))
	}

	logger.Log.Info("Приложение завершено")
}
