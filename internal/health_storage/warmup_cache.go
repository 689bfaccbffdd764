package health_storage

import (
	"context"
	"time"

	"github.com/trsv-dev/simple-topology-console/internal/models"
	"github.com/trsv-dev/simple-topology-console/internal/runtime"
)

// StateOf Снимок состояния сервера.
func StateOf(s *runtime.Server, now time.Time) models.ServerState {
	return models.ServerState{
		Key:          s.Key(),
		Host:         s.Host(),
		Server:       s.Name(),
		ServerGroup:  s.ServerGroup(),
		Status:       string(s.Status),
		ServerState:  string(s.ServerState),
		SuspendState: string(s.SuspendState),
		UpdatedAt:    now,
	}
}

// WarmUpStateCache "Прогрев" in-memory хранилища: первое чтение топологии без оповещения браузеров.
func WarmUpStateCache(ctx context.Context, reader runtime.TopologyReader, stateCache StateCacheStorage) error {
	topology, err := reader.Topology(ctx)
	if err != nil {
		return err
	}

	now := time.Now()
	for _, server := range topology.Servers {
		stateCache.Set(StateOf(server, now))
	}

	return nil
}
