package presenters

import (
	"context"

	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	"github.com/trsv-dev/simple-topology-console/internal/environment"
	"github.com/trsv-dev/simple-topology-console/internal/finder"
	"github.com/trsv-dev/simple-topology-console/internal/place"
)

// FinderPage Данные страницы с finder'ом: колонки выбранного пути и предпросмотр.
type FinderPage struct {
	Token   string
	Path    string
	Columns []*finder.View
	Preview *finder.Preview
}

// finderPresenter Общая часть страниц с finder'ом. Параметр path выбирает путь,
// без него finder сбрасывается к начальной колонке и её предпросмотру.
type finderPresenter struct {
	token          string
	title          string
	initial        string
	env            *environment.Environment
	finder         *finder.Finder
	initialPreview func() *finder.Preview
}

func (p *finderPresenter) NameToken() string { return p.token }

func (p *finderPresenter) PrepareFromRequest(ctx context.Context, req place.Request) (*place.Page, error) {
	path, err := finder.ParsePath(req.Parameter(place.PathParam, ""))
	if err != nil {
		return nil, err
	}

	fc := finder.NewContext(p.token, dmr.NewStatementContext(p.env.IsStandalone()))
	views, err := p.finder.Reveal(ctx, fc, path, p.initial)
	if err != nil {
		return nil, err
	}

	data := FinderPage{Token: p.token, Path: path.String(), Columns: views}

	if len(path) == 0 {
		if p.initialPreview != nil {
			data.Preview = p.initialPreview()
		}
	} else {
		last := path[len(path)-1]
		// выбор применяется заново: Reveal уже изменил fc
		previewContext := finder.NewContext(p.token, dmr.NewStatementContext(p.env.IsStandalone()))
		data.Preview, err = p.finder.Preview(ctx, previewContext, path, last.Column, last.Item)
		if err != nil {
			return nil, err
		}
	}

	return &place.Page{Title: p.title, Template: "finder", Data: data}, nil
}
