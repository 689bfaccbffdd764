package storage

import (
	"context"

	"github.com/trsv-dev/simple-topology-console/internal/models"
)

// UserStorage Интерфейс для операторов консоли.
type UserStorage interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserIDByLogin(ctx context.Context, login string) (int64, error)
}
