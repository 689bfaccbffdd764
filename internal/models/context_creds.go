package models

import (
	"context"

	"github.com/trsv-dev/simple-topology-console/internal/contextkeys"
)

// ContextCredentials Данные оператора из r.Context().
type ContextCredentials struct {
	Login  string
	UserID int64
}

// GetContextCreds Вытаскивает данные из контекста и возвращает структуру.
func GetContextCreds(ctx context.Context) *ContextCredentials {
	creds := &ContextCredentials{}

	if login, ok := ctx.Value(contextkeys.Login).(string); ok {
		creds.Login = login
	}

	if userID, ok := ctx.Value(contextkeys.ID).(int64); ok {
		creds.UserID = userID
	}

	return creds
}
