package presenters

import (
	"context"
	"errors"

	"github.com/trsv-dev/simple-topology-console/internal/columns"
	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	"github.com/trsv-dev/simple-topology-console/internal/environment"
	"github.com/trsv-dev/simple-topology-console/internal/errs"
	"github.com/trsv-dev/simple-topology-console/internal/finder"
	"github.com/trsv-dev/simple-topology-console/internal/place"
	"github.com/trsv-dev/simple-topology-console/internal/runtime"
)

// ServerPage Данные страницы сервера домена.
type ServerPage struct {
	Server     *runtime.Server
	Pending    bool
	Attributes []dmr.Property
	Actions    []finder.ItemAction
	ModelHref  string
}

// ServerConfigurationPresenter Страница сервера: конфигурация, состояние и доступные действия.
type ServerConfigurationPresenter struct {
	env        *environment.Environment
	dispatcher dmr.Dispatcher
	actions    runtime.ActionExecutor
}

// NewServerConfigurationPresenter Конструктор ServerConfigurationPresenter.
func NewServerConfigurationPresenter(env *environment.Environment, dispatcher dmr.Dispatcher, actions runtime.ActionExecutor) *ServerConfigurationPresenter {
	return &ServerConfigurationPresenter{env: env, dispatcher: dispatcher, actions: actions}
}

func (p *ServerConfigurationPresenter) NameToken() string { return place.ServerConfiguration }

func (p *ServerConfigurationPresenter) PrepareFromRequest(ctx context.Context, req place.Request) (*place.Page, error) {
	if p.env.IsStandalone() {
		return nil, errs.NewErrInvalidParameter(place.ServerParam, "", errors.New("страница сервера доступна только в domain-режиме"))
	}

	host := req.Parameter(place.HostParam, "")
	name := req.Parameter(place.ServerParam, "")
	if host == "" {
		return nil, errs.NewErrInvalidParameter(place.HostParam, host, errors.New("параметр обязателен"))
	}
	if name == "" {
		return nil, errs.NewErrInvalidParameter(place.ServerParam, name, errors.New("параметр обязателен"))
	}

	server, err := runtime.ReadServer(ctx, p.dispatcher, host, name)
	if err != nil {
		return nil, err
	}

	data := ServerPage{
		Server:    server,
		Pending:   p.actions.IsPending(host, name),
		ModelHref: modelBrowserHref(server.ServerConfigAddress()),
	}
	for _, prop := range server.Attributes().AsPropertyList() {
		if prop.Value.IsDefined() {
			data.Attributes = append(data.Attributes, prop)
		}
	}
	if !data.Pending {
		for _, action := range runtime.AllowedActions(server) {
			data.Actions = append(data.Actions, finder.PostAction(string(action), columns.ServerActionHref(host, name, action)))
		}
	}

	return &place.Page{Title: server.Name(), Template: "server", Data: data}, nil
}
