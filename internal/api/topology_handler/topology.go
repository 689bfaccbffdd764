package topology_handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trsv-dev/simple-topology-console/internal/api/response"
	"github.com/trsv-dev/simple-topology-console/internal/health_storage"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
	"github.com/trsv-dev/simple-topology-console/internal/runtime"
)

// TopologyHandler Чтение топологии домена.
type TopologyHandler struct {
	reader     runtime.TopologyReader
	stateCache health_storage.StateCacheStorage
}

// NewTopologyHandler Конструктор TopologyHandler.
func NewTopologyHandler(reader runtime.TopologyReader, stateCache health_storage.StateCacheStorage) *TopologyHandler {
	return &TopologyHandler{
		reader:     reader,
		stateCache: stateCache,
	}
}

// GetTopology Хосты, группы и серверы домена.
func (h *TopologyHandler) GetTopology(w http.ResponseWriter, r *http.Request) {
	topology, err := h.reader.Topology(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, topology)
}

// GetHosts Хосты с их серверами, domain controller первым.
func (h *TopologyHandler) GetHosts(w http.ResponseWriter, r *http.Request) {
	hosts, err := h.reader.HostsWithServers(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, hosts)
}

// GetServerGroups Группы серверов с их серверами.
func (h *TopologyHandler) GetServerGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.reader.ServerGroupsWithServers(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, groups)
}

// GetProfileServers Запущенные серверы, использующие профиль.
func (h *TopologyHandler) GetProfileServers(w http.ResponseWriter, r *http.Request) {
	profile := chi.URLParam(r, "profile")
	if profile == "" {
		response.ErrorJSON(w, http.StatusBadRequest, "Не указан профиль")
		return
	}

	servers, err := h.reader.RunningServersOfProfile(r.Context(), profile)
	if err != nil {
		logger.Log.Warn("Не удалось получить серверы профиля",
			logger.String("profile", profile),
			logger.String("err", err.Error()))
		response.FromError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, servers)
}

// GetStates Последние состояния серверов, известные воркеру опроса топологии.
func (h *TopologyHandler) GetStates(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.stateCache.All())
}
