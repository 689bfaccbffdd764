package models

import "time"

// Статусы management endpoint'а.
const (
	EndpointOK          = "OK"
	EndpointDegraded    = "Degraded"
	EndpointUnreachable = "Unreachable"
)

// EndpointStatus Доступность management endpoint'а.
type EndpointStatus struct {
	Address string `json:"address"`
	Port    string `json:"port"`
	Status  string `json:"status"`
}

// ServerState Снимок состояния сервера домена для оповещения браузеров.
type ServerState struct {
	Key          string    `json:"key"`
	Host         string    `json:"host"`
	Server       string    `json:"server"`
	ServerGroup  string    `json:"server-group"`
	Status       string    `json:"status"`
	ServerState  string    `json:"server-state,omitempty"`
	SuspendState string    `json:"suspend-state,omitempty"`
	Removed      bool      `json:"removed,omitempty"`
	UpdatedAt    time.Time `json:"updated-at"`
}

// SameAs true, если состояние не изменилось (время обновления не сравнивается).
func (s ServerState) SameAs(other ServerState) bool {
	return s.Status == other.Status &&
		s.ServerState == other.ServerState &&
		s.SuspendState == other.SuspendState &&
		s.ServerGroup == other.ServerGroup &&
		s.Removed == other.Removed
}
