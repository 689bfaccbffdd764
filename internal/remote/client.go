package remote

import "context"

//go:generate mockgen -destination=mocks/mock_client.go -package=mocks . Client

// Client Интерфейс для выполнения команд на удалённом хосте.
type Client interface {
	RunCommand(ctx context.Context, cmd string) (string, error)
}

//go:generate mockgen -destination=mocks/mock_client_factory.go -package=mocks . ClientFactory

// ClientFactory Интерфейс для создания новых Client-объектов.
type ClientFactory interface {
	CreateClient(address, username, password string) (Client, error)
}
