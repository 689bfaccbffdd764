package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trsv-dev/simple-topology-console/internal/broadcast"
	broadcastMocks "github.com/trsv-dev/simple-topology-console/internal/broadcast/mocks"
	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	dmrMocks "github.com/trsv-dev/simple-topology-console/internal/dmr/mocks"
	"github.com/trsv-dev/simple-topology-console/internal/environment"
	"github.com/trsv-dev/simple-topology-console/internal/health_storage"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
	"github.com/trsv-dev/simple-topology-console/internal/models"
	netutilsMocks "github.com/trsv-dev/simple-topology-console/internal/netutils/mocks"
	"github.com/trsv-dev/simple-topology-console/internal/runtime"
	runtimeMocks "github.com/trsv-dev/simple-topology-console/internal/runtime/mocks"
)

func init() {
	// инициализируем логгер для всех тестов
	logger.InitLogger("error", "stdout")
}

func testServer(t *testing.T, host, name, status string) *runtime.Server {
	t.Helper()

	node, err := dmr.ParseModelNode([]byte(`{"name":"` + name + `","group":"main-server-group","status":"` + status + `"}`))
	require.NoError(t, err)

	return runtime.NewServerFromConfig(host, node)
}

func decodeChanges(t *testing.T, data []byte) []models.ServerState {
	t.Helper()

	var changes []models.ServerState
	require.NoError(t, json.Unmarshal(data, &changes))
	return changes
}

// TestFetchAndPublishChanges Публикуются только новые, изменившиеся и пропавшие серверы.
func TestFetchAndPublishChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stateCache := health_storage.NewStateCache()
	stateCache.Set(health_storage.StateOf(testServer(t, "master", "server-one", "STARTED"), time.Now()))
	stateCache.Set(health_storage.StateOf(testServer(t, "master", "server-two", "STOPPED"), time.Now()))
	stateCache.Set(health_storage.StateOf(testServer(t, "slave", "server-gone", "STARTED"), time.Now()))

	reader := runtimeMocks.NewMockTopologyReader(ctrl)
	reader.EXPECT().Topology(gomock.Any()).Return(&runtime.Topology{Servers: []*runtime.Server{
		testServer(t, "master", "server-one", "STARTED"),
		testServer(t, "master", "server-two", "STARTED"),
		testServer(t, "slave", "server-new", "STOPPED"),
	}}, nil)

	var published []byte
	mockBroadcaster := broadcastMocks.NewMockBroadcaster(ctrl)
	mockBroadcaster.EXPECT().
		Publish(broadcast.TopologyStream, gomock.Any()).
		DoAndReturn(func(_ string, data []byte) error {
			published = data
			return nil
		})

	err := fetchAndPublish(context.Background(), reader, stateCache, mockBroadcaster, time.Second)
	require.NoError(t, err)

	changes := decodeChanges(t, published)
	keys := make(map[string]models.ServerState, len(changes))
	for _, c := range changes {
		keys[c.Key] = c
	}

	assert.Len(t, changes, 3)
	assert.Equal(t, "STARTED", keys["master/server-two"].Status)
	assert.Equal(t, "STOPPED", keys["slave/server-new"].Status)
	assert.True(t, keys["slave/server-gone"].Removed)
	assert.NotContains(t, keys, "master/server-one")

	_, ok := stateCache.Get("slave/server-gone")
	assert.False(t, ok, "пропавший сервер удаляется из кэша")
}

// TestFetchAndPublishNoChanges Без изменений ничего не публикуется.
func TestFetchAndPublishNoChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stateCache := health_storage.NewStateCache()
	stateCache.Set(health_storage.StateOf(testServer(t, "master", "server-one", "STARTED"), time.Now()))

	reader := runtimeMocks.NewMockTopologyReader(ctrl)
	reader.EXPECT().Topology(gomock.Any()).Return(&runtime.Topology{Servers: []*runtime.Server{
		testServer(t, "master", "server-one", "STARTED"),
	}}, nil)

	mockBroadcaster := broadcastMocks.NewMockBroadcaster(ctrl)
	mockBroadcaster.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	assert.NoError(t, fetchAndPublish(context.Background(), reader, stateCache, mockBroadcaster, time.Second))
}

// TestFetchAndPublishPartialTopology Провал шага конфигураций серверов не превращается
// в удаление серверов: ничего не публикуется, кэш не меняется.
func TestFetchAndPublishPartialTopology(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stateCache := health_storage.NewStateCache()
	stateCache.Set(health_storage.StateOf(testServer(t, "master", "server-one", "STARTED"), time.Now()))
	stateCache.Set(health_storage.StateOf(testServer(t, "master", "server-two", "STOPPED"), time.Now()))

	steps := []string{
		`{"outcome":"success","result":{"master":{"master":true,"host-state":"running"}}}`,
		`{"outcome":"success","result":{"main-server-group":{"profile":"full"}}}`,
		`{"outcome":"failed","failure-description":"WFLYCTL0030: timeout"}`,
		`{"outcome":"success","result":[
			{"address":[{"host":"master"},{"server":"server-one"}],"outcome":"success",
			 "result":{"name":"server-one","server-state":"running"}}]}`,
	}
	result := dmr.NewObject()
	for i, step := range steps {
		n, err := dmr.ParseModelNode([]byte(step))
		require.NoError(t, err)
		result = result.With(fmt.Sprintf("step-%d", i+1), n)
	}

	mockDispatcher := dmrMocks.NewMockDispatcher(ctrl)
	mockDispatcher.EXPECT().
		ExecuteComposite(gomock.Any(), gomock.Any()).
		Return(dmr.NewCompositeResult(result), nil)

	reader := runtime.NewFunctions(environment.New(environment.Domain, environment.Community), mockDispatcher)

	mockBroadcaster := broadcastMocks.NewMockBroadcaster(ctrl)
	mockBroadcaster.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	err := fetchAndPublish(context.Background(), reader, stateCache, mockBroadcaster, time.Second)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"master/server-one", "master/server-two"}, stateCache.Keys())
	state, ok := stateCache.Get("master/server-two")
	require.True(t, ok)
	assert.False(t, state.Removed)
	assert.Equal(t, "STOPPED", state.Status)
}

// TestFetchAndPublishErrors Ошибки чтения и публикации возвращаются.
func TestFetchAndPublishErrors(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(r *runtimeMocks.MockTopologyReader, b *broadcastMocks.MockBroadcaster)
		wantErr   string
	}{
		{
			name: "ошибка чтения топологии",
			setupMock: func(r *runtimeMocks.MockTopologyReader, b *broadcastMocks.MockBroadcaster) {
				r.EXPECT().Topology(gomock.Any()).Return(nil, errors.New("refused"))
			},
			wantErr: "refused",
		},
		{
			name: "ошибка публикации",
			setupMock: func(r *runtimeMocks.MockTopologyReader, b *broadcastMocks.MockBroadcaster) {
				r.EXPECT().Topology(gomock.Any()).Return(&runtime.Topology{Servers: []*runtime.Server{
					testServer(t, "master", "server-one", "STARTED"),
				}}, nil)
				b.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("closed"))
			},
			wantErr: "closed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := runtimeMocks.NewMockTopologyReader(ctrl)
			mockBroadcaster := broadcastMocks.NewMockBroadcaster(ctrl)
			tt.setupMock(reader, mockBroadcaster)

			err := fetchAndPublish(context.Background(), reader, health_storage.NewStateCache(), mockBroadcaster, time.Second)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

// TestTopologyBroadcastWorkerStopsByContext Воркер опрашивает топологию, пока не отменён контекст.
func TestTopologyBroadcastWorkerStopsByContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var calls atomic.Int32
	reader := runtimeMocks.NewMockTopologyReader(ctrl)
	reader.EXPECT().Topology(gomock.Any()).
		DoAndReturn(func(context.Context) (*runtime.Topology, error) {
			calls.Add(1)
			return &runtime.Topology{}, nil
		}).
		MinTimes(1)

	mockBroadcaster := broadcastMocks.NewMockBroadcaster(ctrl)

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		TopologyBroadcastWorker(ctx, reader, health_storage.NewStateCache(), mockBroadcaster, 50*time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("воркер не остановился по контексту")
	}

	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}

// TestEndpointStatusWorker Проверяет определение статуса management endpoint'а.
func TestEndpointStatusWorker(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(c *netutilsMocks.MockChecker)
		wantStatus string
	}{
		{
			name: "порт доступен",
			setupMock: func(c *netutilsMocks.MockChecker) {
				c.EXPECT().CheckTCP(gomock.Any(), "10.0.0.1", "9990", time.Second).Return(true)
			},
			wantStatus: models.EndpointOK,
		},
		{
			name: "порт закрыт, хост отвечает",
			setupMock: func(c *netutilsMocks.MockChecker) {
				c.EXPECT().CheckTCP(gomock.Any(), "10.0.0.1", "9990", time.Second).Return(false)
				c.EXPECT().CheckICMP(gomock.Any(), "10.0.0.1", time.Second).Return(true)
			},
			wantStatus: models.EndpointDegraded,
		},
		{
			name: "хост недоступен",
			setupMock: func(c *netutilsMocks.MockChecker) {
				c.EXPECT().CheckTCP(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false)
				c.EXPECT().CheckICMP(gomock.Any(), gomock.Any(), gomock.Any()).Return(false)
			},
			wantStatus: models.EndpointUnreachable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			checker := netutilsMocks.NewMockChecker(ctrl)
			tt.setupMock(checker)

			status := <-EndpointStatusWorker(context.Background(), checker, "10.0.0.1", "9990", time.Second)

			assert.Equal(t, tt.wantStatus, status.Status)
			assert.Equal(t, "10.0.0.1", status.Address)
			assert.Equal(t, "9990", status.Port)
		})
	}
}

// TestEndpointStatusWorkerCancelled Отменённый контекст означает недоступность.
func TestEndpointStatusWorkerCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	status := <-EndpointStatusWorker(ctx, netutilsMocks.NewMockChecker(ctrl), "10.0.0.1", "9990", time.Second)
	assert.Equal(t, models.EndpointUnreachable, status.Status)
}
