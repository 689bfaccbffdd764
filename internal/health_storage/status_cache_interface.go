package health_storage

import "github.com/trsv-dev/simple-topology-console/internal/models"

//go:generate mockgen -destination=mocks/state_cache_storage_mock.go -package=mocks . StateCacheStorage

// StateCacheStorage Последние известные состояния серверов домена.
type StateCacheStorage interface {
	Set(s models.ServerState) bool
	Get(key string) (models.ServerState, bool)
	Delete(key string)
	Keys() []string
	All() []models.ServerState
}
