package runtime

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	"github.com/trsv-dev/simple-topology-console/internal/environment"
	"github.com/trsv-dev/simple-topology-console/internal/errs"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
)

// ServerActionsTopic Топик SSE с событиями действий над серверами.
const ServerActionsTopic = "server-actions"

// Action Действие над сервером.
type Action string

const (
	ActionStart   Action = "start"
	ActionStop    Action = "stop"
	ActionReload  Action = "reload"
	ActionRestart Action = "restart"
	ActionSuspend Action = "suspend"
	ActionResume  Action = "resume"
	ActionRemove  Action = "remove"
)

// ParseAction Действие по имени.
func ParseAction(s string) (Action, bool) {
	switch a := Action(s); a {
	case ActionStart, ActionStop, ActionReload, ActionRestart, ActionSuspend, ActionResume, ActionRemove:
		return a, true
	default:
		return "", false
	}
}

// AllowedActions Действия, допустимые в текущем состоянии сервера.
func AllowedActions(s *Server) []Action {
	switch {
	case s.IsStarted():
		actions := []Action{ActionReload, ActionRestart}
		if s.IsSuspended() {
			actions = append(actions, ActionResume)
		} else {
			actions = append(actions, ActionSuspend)
		}
		return append(actions, ActionStop)
	case s.IsStopped():
		return []Action{ActionStart, ActionRemove}
	case s.HasError():
		return []Action{ActionStart, ActionStop}
	default:
		return []Action{}
	}
}

func isAllowed(s *Server, action Action) bool {
	for _, a := range AllowedActions(s) {
		if a == action {
			return true
		}
	}
	return false
}

// Состояние действия в событии.
const (
	actionPending = "pending"
	actionDone    = "done"
	actionFailed  = "failed"
)

// ActionEvent Событие о ходе действия над сервером.
type ActionEvent struct {
	Host   string `json:"host"`
	Server string `json:"server"`
	Action Action `json:"action"`
	State  string `json:"state"`
	Error  string `json:"error,omitempty"`
}

// ServerActions Выполняет действия над серверами домена и отслеживает незавершённые.
type ServerActions struct {
	env        *environment.Environment
	dispatcher dmr.Dispatcher
	publisher  Publisher

	mu      sync.Mutex
	pending map[string]Action
}

// NewServerActions Конструктор ServerActions.
func NewServerActions(env *environment.Environment, dispatcher dmr.Dispatcher, publisher Publisher) *ServerActions {
	return &ServerActions{
		env:        env,
		dispatcher: dispatcher,
		publisher:  publisher,
		pending:    make(map[string]Action),
	}
}

// IsPending true, пока над сервером выполняется действие.
func (a *ServerActions) IsPending(host, server string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	_, ok := a.pending[host+"/"+server]
	return ok
}

// Execute Проверяет, что действие допустимо, и выполняет его. Возвращает состояние
// сервера до выполнения действия.
func (a *ServerActions) Execute(ctx context.Context, host, name string, action Action) (*Server, error) {
	if a.env.IsStandalone() {
		return nil, errs.NewErrActionNotAllowed(string(action), name, "действия над серверами доступны только в domain-режиме")
	}

	server, err := ReadServer(ctx, a.dispatcher, host, name)
	if err != nil {
		return nil, err
	}

	if !isAllowed(server, action) {
		return server, errs.NewErrActionNotAllowed(string(action), server.Key(), fmt.Sprintf("статус %s", server.Status))
	}

	if !a.markPending(server.Key(), action) {
		return server, errs.NewErrActionNotAllowed(string(action), server.Key(), "над сервером уже выполняется действие")
	}
	defer a.clearPending(server.Key())

	a.publish(ActionEvent{Host: host, Server: name, Action: action, State: actionPending})

	_, err = a.dispatcher.Execute(ctx, actionOperation(server, action))
	if err != nil {
		logger.Log.Warn("Действие над сервером завершилось ошибкой",
			logger.String("server", server.Key()),
			logger.String("action", string(action)),
			logger.String("err", err.Error()),
		)
		a.publish(ActionEvent{Host: host, Server: name, Action: action, State: actionFailed, Error: err.Error()})
		return server, err
	}

	logger.Log.Info("Действие над сервером выполнено",
		logger.String("server", server.Key()),
		logger.String("action", string(action)),
	)
	a.publish(ActionEvent{Host: host, Server: name, Action: action, State: actionDone})

	return server, nil
}

// ReadServer Текущее состояние сервера: server-config и, если есть, runtime-ресурс.
func ReadServer(ctx context.Context, dispatcher dmr.Dispatcher, host, name string) (*Server, error) {
	configAddress := dmr.NewAddress(dmr.Host, host, dmr.ServerConfig, name)
	serverAddress := dmr.NewAddress(dmr.Host, host, dmr.Server, name)

	result, err := dispatcher.ExecuteComposite(ctx, dmr.NewComposite(
		dmr.NewOperation(dmr.ReadResource, configAddress).Param(dmr.IncludeRuntime, true).Build(),
		dmr.NewOperation(dmr.ReadResource, serverAddress).
			Param(dmr.AttributesOnly, true).
			Param(dmr.IncludeRuntime, true).
			Build(),
	))
	if err != nil {
		return nil, err
	}

	config := result.Step(0)
	if config.IsFailure() || !config.Get(dmr.ResultKey).IsDefined() {
		return nil, errs.NewErrServerNotFound(host, name)
	}

	node := config.Get(dmr.ResultKey)
	if !node.HasDefined(dmr.Name) {
		node = node.With(dmr.Name, dmr.StringNode(name))
	}
	server := NewServerFromConfig(host, node)

	if rt := result.Step(1); !rt.IsFailure() {
		server.AddServerAttributes(rt.Get(dmr.ResultKey))
	}

	return server, nil
}

func actionOperation(s *Server, action Action) dmr.Operation {
	b := dmr.NewOperation(string(action), s.ServerConfigAddress())

	switch action {
	case ActionStart, ActionStop, ActionReload, ActionRestart:
		b.Param(dmr.Blocking, true)
	case ActionSuspend:
		b.Param(dmr.Timeout, 0)
	}

	return b.Build()
}

func (a *ServerActions) markPending(key string, action Action) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, busy := a.pending[key]; busy {
		return false
	}
	a.pending[key] = action
	return true
}

func (a *ServerActions) clearPending(key string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.pending, key)
}

func (a *ServerActions) publish(event ActionEvent) {
	if a.publisher == nil {
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Error("Не удалось сериализовать событие", logger.String("err", err.Error()))
		return
	}

	if err = a.publisher.Publish(ServerActionsTopic, data); err != nil {
		logger.Log.Warn("Не удалось опубликовать событие", logger.String("err", err.Error()))
	}
}
