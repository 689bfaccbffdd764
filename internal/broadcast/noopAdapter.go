package broadcast

import (
	"context"
	"net/http"
	"sync/atomic"

	"github.com/trsv-dev/simple-topology-console/internal/logger"
)

// NoopAdapter Broadcaster для режима без web-интерфейса: события топологии и действий
// над серверами отбрасываются, подписка недоступна.
type NoopAdapter struct {
	dropped atomic.Uint64
}

func NewNoopAdapter() *NoopAdapter {
	return &NoopAdapter{}
}

// Publish Отбрасывает событие.
func (n *NoopAdapter) Publish(topic string, data []byte) error {
	n.dropped.Add(1)
	logger.Log.Debug("Событие не отправлено: web-интерфейс выключен",
		logger.String("stream", topic), logger.Int("bytes", len(data)))
	return nil
}

// Dropped Количество отброшенных событий.
func (n *NoopAdapter) Dropped() uint64 {
	return n.dropped.Load()
}

func (n *NoopAdapter) Close() error {
	return nil
}

// Subscribe Канал подписки всегда nil.
func (n *NoopAdapter) Subscribe(ctx context.Context, topic string) (<-chan []byte, func(), error) {
	return nil, func() {}, nil
}

// HTTPHandler Отвечает 404 на любую подписку.
func (n *NoopAdapter) HTTPHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "web-интерфейс выключен", http.StatusNotFound)
	})
}
