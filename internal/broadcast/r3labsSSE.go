package broadcast

import (
	"context"
	"net/http"

	"github.com/r3labs/sse/v2"

	"github.com/trsv-dev/simple-topology-console/internal/logger"
)

// R3labsSSEAdapter Адаптер для библиотеки r3labs/sse.
// Поток для подписчика выбирает TopicResolver, а не сам клиент.
type R3labsSSEAdapter struct {
	srv     *sse.Server
	resolve TopicResolver
}

// NewR3labsSSEAdapter Создаёт адаптер и потоки topology и server-actions.
func NewR3labsSSEAdapter(resolve TopicResolver) *R3labsSSEAdapter {
	srv := sse.New()
	// состояние топологии публикуется целиком, старые события после переподключения не нужны
	srv.AutoReplay = false

	srv.CreateStream(TopologyStream)
	srv.CreateStream(ServerActionsStream)

	return &R3labsSSEAdapter{srv: srv, resolve: resolve}
}

// Publish Публикует событие в поток. Данные передаются в поле Event.Data.
func (a *R3labsSSEAdapter) Publish(topic string, data []byte) error {
	a.srv.Publish(topic, &sse.Event{Data: data})
	return nil
}

// Close Закрывает все EventSource соединения.
func (a *R3labsSSEAdapter) Close() error {
	a.srv.Close()
	return nil
}

// Subscribe r3labs реализует подписки по HTTP, а не через Go-каналы.
func (a *R3labsSSEAdapter) Subscribe(ctx context.Context, topic string) (<-chan []byte, func(), error) {
	return nil, nil, ErrSubscribeNotSupported
}

// HTTPHandler Обработчик подписки. Исходный запрос не изменяется: r3labs получает клон
// с путём "/" и параметром stream, который вернул resolver.
func (a *R3labsSSEAdapter) HTTPHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		topic, err := a.resolve(r)
		if err != nil {
			logger.Log.Debug("Отказ в подписке на события", logger.String("err", err.Error()))
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		if !a.srv.StreamExists(topic) {
			a.srv.CreateStream(topic)
		}

		r2 := r.Clone(r.Context())
		r2.URL.Path = "/"
		q := r2.URL.Query()
		q.Set("stream", topic)
		r2.URL.RawQuery = q.Encode()

		a.srv.ServeHTTP(w, r2)
	})
}
