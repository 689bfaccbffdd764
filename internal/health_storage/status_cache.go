package health_storage

import (
	"sort"
	"sync"

	"github.com/trsv-dev/simple-topology-console/internal/models"
)

// StateCache In-memory хранилище состояний серверов, ключ - "host/server".
type StateCache struct {
	mu    sync.RWMutex
	cache map[string]models.ServerState
}

// NewStateCache Конструктор StateCache.
func NewStateCache() *StateCache {
	return &StateCache{
		cache: make(map[string]models.ServerState),
	}
}

// Set Сохраняет состояние. Возвращает true, если состояние новое или изменилось.
func (sc *StateCache) Set(s models.ServerState) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	old, ok := sc.cache[s.Key]
	if ok && old.SameAs(s) {
		return false
	}

	sc.cache[s.Key] = s
	return true
}

// Get Состояние сервера по ключу.
func (sc *StateCache) Get(key string) (models.ServerState, bool) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	v, ok := sc.cache[key]

	return v, ok
}

// Delete Удаляет состояние сервера.
func (sc *StateCache) Delete(key string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	delete(sc.cache, key)
}

// Keys Ключи всех серверов в кэше.
func (sc *StateCache) Keys() []string {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	keys := make([]string, 0, len(sc.cache))
	for k := range sc.cache {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// All Все состояния, упорядоченные по ключу.
func (sc *StateCache) All() []models.ServerState {
	sc.mu.RLock()
	defer sc.mu.RUnlock()

	res := make([]models.ServerState, 0, len(sc.cache))
	for _, s := range sc.cache {
		res = append(res, s)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Key < res[j].Key })

	return res
}
