package auth

import (
	"context"

	"github.com/trsv-dev/simple-topology-console/internal/models"
)

//go:generate mockgen -destination=mocks/mock_token_builder.go -package=mocks . TokenBuilder,TokenVerifier

// TokenBuilder Интерфейс для создания и парсинга JWT-токенов.
type TokenBuilder interface {
	BuildJWTToken(user *models.User, JWTSecretKey string) (string, error)
	GetClaims(tokenString, JWTSecretKey string) (*Claims, error)
}

// TokenVerifier Проверка bearer-токена внешнего провайдера.
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (*Claims, error)
}
