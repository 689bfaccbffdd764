package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/trsv-dev/simple-topology-console/internal/broadcast"
	"github.com/trsv-dev/simple-topology-console/internal/health_storage"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
	"github.com/trsv-dev/simple-topology-console/internal/models"
	"github.com/trsv-dev/simple-topology-console/internal/runtime"
)

// TopologyBroadcastWorker Периодически перечитывает топологию домена и публикует
// изменившиеся состояния серверов в поток broadcast.TopologyStream.
func TopologyBroadcastWorker(ctx context.Context, reader runtime.TopologyReader, stateCache health_storage.StateCacheStorage, publisher broadcast.Broadcaster, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Log.Info("Запущен опрос топологии домена", logger.Duration("interval", interval))

	for {
		if err := fetchAndPublish(ctx, reader, stateCache, publisher, interval); err != nil {
			logger.Log.Error("Ошибка опроса топологии домена", logger.Err(err))
		}

		select {
		case <-ctx.Done():
			logger.Log.Info("Опрос топологии домена остановлен", logger.Err(ctx.Err()))
			return
		case <-ticker.C: // следующий цикл по таймеру
		}
	}
}

// fetchAndPublish Читает топологию, обновляет кэш и публикует изменения, если они есть.
func fetchAndPublish(ctx context.Context, reader runtime.TopologyReader, stateCache health_storage.StateCacheStorage, publisher broadcast.Broadcaster, timeout time.Duration) error {
	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	topology, err := reader.Topology(fetchCtx)
	if err != nil {
		return err
	}

	// без полного списка серверов отсутствие сервера не означает его удаление
	if topology.Partial {
		logger.Log.Warn("Топология прочитана не полностью, состояния серверов не обновляются",
			logger.Int("servers", len(topology.Servers)),
		)
		return nil
	}

	changes := diffStates(topology.Servers, stateCache, time.Now())
	if len(changes) == 0 {
		return nil
	}

	b, err := json.Marshal(changes)
	if err != nil {
		return err
	}

	logger.Log.Debug("Изменились состояния серверов", logger.Int("count", len(changes)))

	return publisher.Publish(broadcast.TopologyStream, b)
}

// diffStates Обновляет кэш и возвращает новые, изменившиеся и пропавшие серверы.
func diffStates(servers []*runtime.Server, stateCache health_storage.StateCacheStorage, now time.Time) []models.ServerState {
	changes := make([]models.ServerState, 0)
	seen := make(map[string]struct{}, len(servers))

	for _, server := range servers {
		state := health_storage.StateOf(server, now)
		seen[state.Key] = struct{}{}
		if stateCache.Set(state) {
			changes = append(changes, state)
		}
	}

	for _, key := range stateCache.Keys() {
		if _, ok := seen[key]; ok {
			continue
		}
		if old, ok := stateCache.Get(key); ok {
			old.Removed = true
			old.UpdatedAt = now
			changes = append(changes, old)
		}
		stateCache.Delete(key)
	}

	return changes
}
