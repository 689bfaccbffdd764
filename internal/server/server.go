package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/trsv-dev/simple-topology-console/internal/di_containers"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
	"github.com/trsv-dev/simple-topology-console/internal/router"
)

const (
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 2 * time.Minute
)

// NewServer HTTP-сервер консоли: API, HTML-представления и SSE.
// WriteTimeout не задаётся: SSE-подписка держит ответ открытым.
func NewServer(runAddress string, handlers *di_containers.HandlersContainer) *http.Server {
	return &http.Server{
		Addr:              runAddress,
		Handler:           router.Router(handlers),
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
}

// RunServer Запускает сервер в горутине и возвращает сам сервер и канал ошибок.
func RunServer(runAddress string, handlers *di_containers.HandlersContainer) (*http.Server, chan error) {
	server := NewServer(runAddress, handlers)

	serverErrorCh := make(chan error, 1)

	go func() {
		defer close(serverErrorCh)

		logger.Log.Info("Консоль запущена", logger.String("address", server.Addr),
			logger.Bool("web", handlers.WebInterface))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Ошибка сервера", logger.String("err", err.Error()))
			serverErrorCh <- err
		}
	}()

	return server, serverErrorCh
}
