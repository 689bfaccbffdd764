package topology_handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	"github.com/trsv-dev/simple-topology-console/internal/errs"
	stateCacheMocks "github.com/trsv-dev/simple-topology-console/internal/health_storage/mocks"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
	"github.com/trsv-dev/simple-topology-console/internal/models"
	"github.com/trsv-dev/simple-topology-console/internal/runtime"
	runtimeMocks "github.com/trsv-dev/simple-topology-console/internal/runtime/mocks"
)

func init() {
	logger.InitLogger("error", "stdout")
}

func testServer(t *testing.T, host, name string) *runtime.Server {
	t.Helper()

	node, err := dmr.ParseModelNode([]byte(`{"name":"` + name + `","group":"main-server-group","status":"STOPPED"}`))
	require.NoError(t, err)
	return runtime.NewServerFromConfig(host, node)
}

// TestGetTopology Проверяет чтение топологии и ответы при ошибках.
func TestGetTopology(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(t *testing.T, m *runtimeMocks.MockTopologyReader)
		wantStatus int
	}{
		{
			name: "успешное чтение",
			setupMock: func(t *testing.T, m *runtimeMocks.MockTopologyReader) {
				m.EXPECT().Topology(gomock.Any()).Return(&runtime.Topology{
					Hosts:        []*runtime.Host{{Name: "master", DomainController: true}},
					ServerGroups: []*runtime.ServerGroup{},
					Servers:      []*runtime.Server{testServer(t, "master", "server-one")},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "ошибка management endpoint'а",
			setupMock: func(_ *testing.T, m *runtimeMocks.MockTopologyReader) {
				m.EXPECT().Topology(gomock.Any()).
					Return(nil, errs.NewErrOperationFailed("composite", "/", "WFLYCTL0030"))
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name: "внутренняя ошибка",
			setupMock: func(_ *testing.T, m *runtimeMocks.MockTopologyReader) {
				m.EXPECT().Topology(gomock.Any()).Return(nil, errors.New("boom"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := runtimeMocks.NewMockTopologyReader(ctrl)
			tt.setupMock(t, reader)

			w := httptest.NewRecorder()
			NewTopologyHandler(reader, stateCacheMocks.NewMockStateCacheStorage(ctrl)).
				GetTopology(w, httptest.NewRequest(http.MethodGet, "/api/topology", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			var got struct {
				Hosts []struct {
					Name             string `json:"name"`
					DomainController bool   `json:"domain-controller"`
				} `json:"hosts"`
				Servers []struct {
					Name string `json:"name"`
					Host string `json:"host"`
				} `json:"servers"`
			}
			require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
			require.Len(t, got.Hosts, 1)
			assert.True(t, got.Hosts[0].DomainController)
			require.Len(t, got.Servers, 1)
			assert.Equal(t, "server-one", got.Servers[0].Name)
			assert.Equal(t, "master", got.Servers[0].Host)
		})
	}
}

// TestGetHostsAndGroups Проверяет списки хостов и групп.
func TestGetHostsAndGroups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := runtimeMocks.NewMockTopologyReader(ctrl)
	reader.EXPECT().HostsWithServers(gomock.Any()).Return([]*runtime.Host{{Name: "master"}, {Name: "slave-1"}}, nil)
	reader.EXPECT().ServerGroupsWithServers(gomock.Any()).Return(nil, errs.NewErrDispatcher("http://dc:9990/management", errors.New("refused")))

	h := NewTopologyHandler(reader, stateCacheMocks.NewMockStateCacheStorage(ctrl))

	w := httptest.NewRecorder()
	h.GetHosts(w, httptest.NewRequest(http.MethodGet, "/api/topology/hosts", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var hosts []runtime.Host
	require.NoError(t, json.NewDecoder(w.Body).Decode(&hosts))
	assert.Equal(t, "master", hosts[0].Name)
	assert.Equal(t, "slave-1", hosts[1].Name)

	w = httptest.NewRecorder()
	h.GetServerGroups(w, httptest.NewRequest(http.MethodGet, "/api/topology/server-groups", nil))
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

// TestGetProfileServers Проверяет серверы профиля.
func TestGetProfileServers(t *testing.T) {
	tests := []struct {
		name       string
		profile    string
		setupMock  func(t *testing.T, m *runtimeMocks.MockTopologyReader)
		wantStatus int
		wantCount  int
	}{
		{
			name:    "серверы профиля",
			profile: "full",
			setupMock: func(t *testing.T, m *runtimeMocks.MockTopologyReader) {
				m.EXPECT().RunningServersOfProfile(gomock.Any(), "full").
					Return([]*runtime.Server{testServer(t, "master", "a"), testServer(t, "slave", "b")}, nil)
			},
			wantStatus: http.StatusOK,
			wantCount:  2,
		},
		{
			name:       "пустой профиль",
			profile:    "",
			setupMock:  func(*testing.T, *runtimeMocks.MockTopologyReader) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := runtimeMocks.NewMockTopologyReader(ctrl)
			tt.setupMock(t, reader)

			r := httptest.NewRequest(http.MethodGet, "/api/profiles/"+tt.profile+"/servers", nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("profile", tt.profile)
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			NewTopologyHandler(reader, stateCacheMocks.NewMockStateCacheStorage(ctrl)).GetProfileServers(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCount > 0 {
				var got []map[string]any
				require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
				assert.Len(t, got, tt.wantCount)
			}
		})
	}
}

// TestGetStates Состояния берутся из кэша воркера.
func TestGetStates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := stateCacheMocks.NewMockStateCacheStorage(ctrl)
	cache.EXPECT().All().Return([]models.ServerState{{Key: "master/server-one", Status: "STARTED"}})

	w := httptest.NewRecorder()
	NewTopologyHandler(runtimeMocks.NewMockTopologyReader(ctrl), cache).
		GetStates(w, httptest.NewRequest(http.MethodGet, "/api/topology/states", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var got []models.ServerState
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Len(t, got, 1)
	assert.Equal(t, "STARTED", got[0].Status)
}
