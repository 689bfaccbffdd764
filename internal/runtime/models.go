package runtime

import (
	"encoding/json"
	"strings"

	"github.com/trsv-dev/simple-topology-console/internal/dmr"
)

// ServerConfigStatus Статус server-config.
type ServerConfigStatus string

const (
	StatusStarted      ServerConfigStatus = "STARTED"
	StatusStarting     ServerConfigStatus = "STARTING"
	StatusStopped      ServerConfigStatus = "STOPPED"
	StatusStopping     ServerConfigStatus = "STOPPING"
	StatusDisabled     ServerConfigStatus = "DISABLED"
	StatusFailed       ServerConfigStatus = "FAILED"
	StatusDoesNotExist ServerConfigStatus = "DOES_NOT_EXIST"
	StatusUnknown      ServerConfigStatus = "UNKNOWN"
)

// ServerState Состояние запущенного сервера.
type ServerState string

const (
	StateRunning         ServerState = "RUNNING"
	StateStarting        ServerState = "STARTING"
	StateStopping        ServerState = "STOPPING"
	StateReloadRequired  ServerState = "RELOAD_REQUIRED"
	StateRestartRequired ServerState = "RESTART_REQUIRED"
	StateUndefined       ServerState = ""
)

// SuspendState Состояние приостановки запущенного сервера.
type SuspendState string

const (
	SuspendRunning    SuspendState = "RUNNING"
	SuspendPreSuspend SuspendState = "PRE_SUSPEND"
	SuspendSuspending SuspendState = "SUSPENDING"
	SuspendSuspended  SuspendState = "SUSPENDED"
	SuspendUndefined  SuspendState = ""
)

// RunningMode Режим работы запущенного сервера.
type RunningMode string

const (
	ModeNormal    RunningMode = "NORMAL"
	ModeAdminOnly RunningMode = "ADMIN_ONLY"
	ModeUndefined RunningMode = ""
)

// "reload-required" -> "RELOAD_REQUIRED"
func normalize(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
}

func parseStatus(s string) ServerConfigStatus {
	switch status := ServerConfigStatus(normalize(s)); status {
	case StatusStarted, StatusStarting, StatusStopped, StatusStopping,
		StatusDisabled, StatusFailed, StatusDoesNotExist:
		return status
	default:
		return StatusUnknown
	}
}

// Server Сервер домена: атрибуты server-config и, если процесс запущен, runtime-атрибуты.
// Хост и server-group задаются при создании и больше не меняются.
type Server struct {
	name        string
	host        string
	serverGroup string

	Status       ServerConfigStatus
	AutoStart    bool
	PortOffset   int64
	ProfileName  string
	RunningMode  RunningMode
	ServerState  ServerState
	SuspendState SuspendState
	UUID         string
	attributes   dmr.ModelNode
}

// NewServerFromConfig Сервер из ресурса server-config указанного хоста.
func NewServerFromConfig(host string, node dmr.ModelNode) *Server {
	return &Server{
		name:        node.Get(dmr.Name).AsString(),
		host:        host,
		serverGroup: node.Get(dmr.Group).AsString(),
		Status:      parseStatus(node.Get(dmr.Status).AsString()),
		AutoStart:   node.Get(dmr.AutoStart).AsBool(),
		PortOffset:  node.Get(dmr.SocketBindingPortOffset).AsInt(),
		attributes:  node,
	}
}

// NewRunningServer Сервер из runtime-ресурса /host=*/server=*. Такой ресурс есть только
// у запущенных серверов, поэтому статус - STARTED.
func NewRunningServer(host string, node dmr.ModelNode) *Server {
	group := node.Get(dmr.ServerGroup).AsString()
	if group == "" {
		group = node.Get(dmr.Group).AsString()
	}

	s := &Server{
		name:        node.Get(dmr.Name).AsString(),
		host:        host,
		serverGroup: group,
		Status:      StatusStarted,
		AutoStart:   node.Get(dmr.AutoStart).AsBool(),
		PortOffset:  node.Get(dmr.SocketBindingPortOffset).AsInt(),
		attributes:  node,
	}
	s.AddServerAttributes(node)

	return s
}

// AddServerAttributes Добавляет runtime-атрибуты. Для незапущенных серверов ничего не делает.
func (s *Server) AddServerAttributes(node dmr.ModelNode) {
	if !s.IsStarted() {
		return
	}

	s.ProfileName = node.Get(dmr.ProfileName).AsString()
	s.RunningMode = RunningMode(normalize(node.Get(dmr.RunningMode).AsString()))
	s.ServerState = ServerState(normalize(node.Get(dmr.ServerState).AsString()))
	s.SuspendState = SuspendState(normalize(node.Get(dmr.SuspendState).AsString()))
	s.UUID = node.Get(dmr.UUID).AsString()

	if s.PortOffset == 0 {
		s.PortOffset = node.Get(dmr.SocketBindingPortOffset).AsInt()
	}

	merged := s.attributes
	if !merged.IsDefined() {
		merged = dmr.NewObject()
	}
	for _, p := range node.AsPropertyList() {
		merged = merged.With(p.Name, p.Value)
	}
	s.attributes = merged
}

func (s *Server) Name() string        { return s.name }
func (s *Server) Host() string        { return s.host }
func (s *Server) ServerGroup() string { return s.serverGroup }

// Key Уникальный ключ сервера в домене: имена серверов уникальны только в пределах хоста.
func (s *Server) Key() string {
	return s.host + "/" + s.name
}

// Attributes Все прочитанные атрибуты: server-config и runtime.
func (s *Server) Attributes() dmr.ModelNode {
	return s.attributes
}

// Attribute Произвольный атрибут server-config или server.
func (s *Server) Attribute(name string) dmr.ModelNode {
	return s.attributes.Get(name)
}

// ServerConfigAddress /host=<host>/server-config=<name>.
func (s *Server) ServerConfigAddress() dmr.ResourceAddress {
	return dmr.NewAddress(dmr.Host, s.host, dmr.ServerConfig, s.name)
}

// ServerAddress /host=<host>/server=<name>.
func (s *Server) ServerAddress() dmr.ResourceAddress {
	return dmr.NewAddress(dmr.Host, s.host, dmr.Server, s.name)
}

func (s *Server) IsStarted() bool {
	return s.Status == StatusStarted
}

func (s *Server) IsStarting() bool {
	return s.Status == StatusStarting || s.ServerState == StateStarting
}

func (s *Server) IsRunning() bool {
	return s.IsStarted() && s.ServerState == StateRunning
}

func (s *Server) IsStopped() bool {
	return s.Status == StatusStopped || s.Status == StatusDisabled
}

func (s *Server) NeedsReload() bool {
	return s.ServerState == StateReloadRequired
}

func (s *Server) NeedsRestart() bool {
	return s.ServerState == StateRestartRequired
}

func (s *Server) IsSuspended() bool {
	return s.SuspendState == SuspendSuspended
}

func (s *Server) IsAdminMode() bool {
	return s.RunningMode == ModeAdminOnly
}

// HasError true, если сервер в ошибочном состоянии.
func (s *Server) HasError() bool {
	return s.Status == StatusFailed
}

type serverView struct {
	Name         string             `json:"name"`
	Host         string             `json:"host"`
	ServerGroup  string             `json:"server-group"`
	Status       ServerConfigStatus `json:"status"`
	AutoStart    bool               `json:"auto-start"`
	PortOffset   int64              `json:"socket-binding-port-offset"`
	ProfileName  string             `json:"profile-name,omitempty"`
	RunningMode  RunningMode        `json:"running-mode,omitempty"`
	ServerState  ServerState        `json:"server-state,omitempty"`
	SuspendState SuspendState       `json:"suspend-state,omitempty"`
	UUID         string             `json:"uuid,omitempty"`
}

// MarshalJSON JSON-представление сервера для API и SSE.
func (s *Server) MarshalJSON() ([]byte, error) {
	return json.Marshal(serverView{
		Name:         s.name,
		Host:         s.host,
		ServerGroup:  s.serverGroup,
		Status:       s.Status,
		AutoStart:    s.AutoStart,
		PortOffset:   s.PortOffset,
		ProfileName:  s.ProfileName,
		RunningMode:  s.RunningMode,
		ServerState:  s.ServerState,
		SuspendState: s.SuspendState,
		UUID:         s.UUID,
	})
}

// Host Хост домена (host controller) и его серверы.
type Host struct {
	Name             string    `json:"name"`
	DomainController bool      `json:"domain-controller"`
	HostState        string    `json:"host-state,omitempty"`
	ProductName      string    `json:"product-name,omitempty"`
	ProductVersion   string    `json:"product-version,omitempty"`
	Servers          []*Server `json:"servers"`
}

// NewHost Хост из элемента read-children-resources(child-type=host).
func NewHost(p dmr.Property) *Host {
	node := p.Value
	dc := node.Get(dmr.Master).AsBool() || node.Get(dmr.DomainController).HasDefined(dmr.Local)

	return &Host{
		Name:             p.Name,
		DomainController: dc,
		HostState:        node.Get(dmr.HostState).AsString(),
		ProductName:      node.Get(dmr.ProductName).AsString(),
		ProductVersion:   node.Get(dmr.ProductVersion).AsString(),
		Servers:          []*Server{},
	}
}

func (h *Host) addServer(s *Server) {
	h.Servers = append(h.Servers, s)
}

// ServersWithStatus Серверы хоста с одним из указанных статусов.
func (h *Host) ServersWithStatus(statuses ...ServerConfigStatus) []*Server {
	return filterByStatus(h.Servers, statuses)
}

// ServerGroup Группа серверов.
type ServerGroup struct {
	Name               string    `json:"name"`
	Profile            string    `json:"profile"`
	SocketBindingGroup string    `json:"socket-binding-group"`
	Servers            []*Server `json:"servers"`
}

// NewServerGroup Группа из элемента read-children-resources(child-type=server-group).
func NewServerGroup(p dmr.Property) *ServerGroup {
	return &ServerGroup{
		Name:               p.Name,
		Profile:            p.Value.Get(dmr.Profile).AsString(),
		SocketBindingGroup: p.Value.Get(dmr.SocketBindingGroup).AsString(),
		Servers:            []*Server{},
	}
}

func (g *ServerGroup) addServer(s *Server) {
	g.Servers = append(g.Servers, s)
}

// ServersWithStatus Серверы группы с одним из указанных статусов.
func (g *ServerGroup) ServersWithStatus(statuses ...ServerConfigStatus) []*Server {
	return filterByStatus(g.Servers, statuses)
}

func filterByStatus(servers []*Server, statuses []ServerConfigStatus) []*Server {
	out := make([]*Server, 0, len(servers))
	for _, s := range servers {
		for _, status := range statuses {
			if s.Status == status {
				out = append(out, s)
				break
			}
		}
	}
	return out
}
