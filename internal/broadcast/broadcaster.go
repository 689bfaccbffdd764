package broadcast

import (
	"context"
	"errors"
	"net/http"
)

//go:generate mockgen -destination=mocks/broadcast_mock.go -package=mocks . Broadcaster

// Потоки событий, на которые может подписаться браузер.
const (
	TopologyStream      = "topology"
	ServerActionsStream = "server-actions"
)

var (
	ErrSubscribeNotSupported = errors.New("подписка не реализована в данном адаптере; используйте HTTPHandler()")
)

// Broadcaster Публикация событий подписанным браузерам.
type Broadcaster interface {
	Subscribe(ctx context.Context, topic string) (<-chan []byte, func(), error)
	HTTPHandler() http.Handler
	Publish(topic string, data []byte) error
	Close() error
}

// TopicResolver Определяет поток по входящему запросу подписки.
type TopicResolver func(r *http.Request) (string, error)
