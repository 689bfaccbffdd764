package presenters

import (
	"context"

	"github.com/trsv-dev/simple-topology-console/internal/columns"
	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	"github.com/trsv-dev/simple-topology-console/internal/environment"
	"github.com/trsv-dev/simple-topology-console/internal/finder"
	"github.com/trsv-dev/simple-topology-console/internal/place"
)

// RuntimePresenter Страница runtime. В домене - finder по хостам или группам,
// в standalone - атрибуты самого сервера.
type RuntimePresenter struct {
	env        *environment.Environment
	dispatcher dmr.Dispatcher
	domain     *finderPresenter
}

// NewRuntimePresenter Конструктор RuntimePresenter.
func NewRuntimePresenter(env *environment.Environment, dispatcher dmr.Dispatcher, f *finder.Finder) *RuntimePresenter {
	return &RuntimePresenter{
		env:        env,
		dispatcher: dispatcher,
		domain: &finderPresenter{
			token:   place.Runtime,
			title:   "Runtime",
			initial: columns.BrowseByColumn,
			env:     env,
			finder:  f,
		},
	}
}

func (p *RuntimePresenter) NameToken() string { return place.Runtime }

func (p *RuntimePresenter) PrepareFromRequest(ctx context.Context, req place.Request) (*place.Page, error) {
	if !p.env.IsStandalone() {
		return p.domain.PrepareFromRequest(ctx, req)
	}

	attributes, err := readAttributes(ctx, p.dispatcher, dmr.Root)
	if err != nil {
		return nil, err
	}

	return &place.Page{
		Title:    "Runtime",
		Template: "resource",
		Data: ResourcePage{
			Address:    dmr.Root.String(),
			Attributes: attributes,
		},
	}, nil
}
