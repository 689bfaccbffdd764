package presenters

import (
	"context"

	"github.com/trsv-dev/simple-topology-console/internal/environment"
	"github.com/trsv-dev/simple-topology-console/internal/place"
	"github.com/trsv-dev/simple-topology-console/internal/settings"
)

// Link Ссылка на страницу консоли.
type Link struct {
	Title string
	Href  string
}

// HomePage Данные домашней страницы.
type HomePage struct {
	Title       string
	Environment *environment.Environment
	Links       []Link
}

// HomePresenter Домашняя страница.
type HomePresenter struct {
	env *environment.Environment
}

// NewHomePresenter Конструктор HomePresenter.
func NewHomePresenter(env *environment.Environment) *HomePresenter {
	return &HomePresenter{env: env}
}

func (p *HomePresenter) NameToken() string { return place.Homepage }

func (p *HomePresenter) PrepareFromRequest(ctx context.Context, _ place.Request) (*place.Page, error) {
	title := settings.DefaultTitle
	if s, ok := settings.FromContext(ctx); ok && s.Get(settings.Title).IsDefined() {
		title = s.Get(settings.Title).String()
	}

	return &place.Page{
		Title:    title,
		Template: "home",
		Data: HomePage{
			Title:       title,
			Environment: p.env,
			Links: []Link{
				{Title: "Configuration", Href: place.NewRequest(place.Configuration).Href()},
				{Title: "Runtime", Href: place.NewRequest(place.Runtime).Href()},
				{Title: "Model Browser", Href: place.NewRequest(place.ModelBrowser).Href()},
			},
		},
	}, nil
}
