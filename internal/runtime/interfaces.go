package runtime

import "context"

//go:generate mockgen -destination=mocks/mock_topology_reader.go -package=mocks . TopologyReader

// TopologyReader Чтение топологии домена.
type TopologyReader interface {
	Topology(ctx context.Context) (*Topology, error)
	HostsWithServers(ctx context.Context) ([]*Host, error)
	ServerGroupsWithServers(ctx context.Context) ([]*ServerGroup, error)
	RunningServersOfProfile(ctx context.Context, profile string) ([]*Server, error)
}

//go:generate mockgen -destination=mocks/mock_action_executor.go -package=mocks . ActionExecutor

// ActionExecutor Выполнение действий над серверами.
type ActionExecutor interface {
	Execute(ctx context.Context, host, server string, action Action) (*Server, error)
	IsPending(host, server string) bool
}

// Publisher Публикация событий для подписчиков (SSE).
type Publisher interface {
	Publish(topic string, data []byte) error
}
