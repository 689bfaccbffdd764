package presenters

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	"github.com/trsv-dev/simple-topology-console/internal/errs"
	"github.com/trsv-dev/simple-topology-console/internal/place"
	"github.com/trsv-dev/simple-topology-console/internal/settings"
)

// PageParam Номер страницы таблицы, начиная с 1.
const PageParam = "page"

// PropertyRow Строка таблицы дочерних ресурсов.
type PropertyRow struct {
	Name       string
	Attributes []dmr.Property
	Href       string
}

// PropertiesPage Данные страницы со списком однотипных ресурсов.
type PropertiesPage struct {
	Title    string
	Rows     []PropertyRow
	Total    int
	Page     int
	Pages    int
	PrevHref string
	NextHref string
}

// PropertiesPresenter Постраничный список дочерних ресурсов корня (paths, system-properties).
// Размер страницы берётся из настройки page-size оператора.
type PropertiesPresenter struct {
	token      string
	title      string
	childType  string
	dispatcher dmr.Dispatcher
}

// NewPathsPresenter Страница путей.
func NewPathsPresenter(dispatcher dmr.Dispatcher) *PropertiesPresenter {
	return &PropertiesPresenter{token: place.Paths, title: "Paths", childType: dmr.Path, dispatcher: dispatcher}
}

// NewSystemPropertiesPresenter Страница системных свойств.
func NewSystemPropertiesPresenter(dispatcher dmr.Dispatcher) *PropertiesPresenter {
	return &PropertiesPresenter{token: place.SystemProperties, title: "System Properties", childType: dmr.SystemProperty, dispatcher: dispatcher}
}

func (p *PropertiesPresenter) NameToken() string { return p.token }

func (p *PropertiesPresenter) PrepareFromRequest(ctx context.Context, req place.Request) (*place.Page, error) {
	page, err := pageParam(req)
	if err != nil {
		return nil, err
	}

	op := dmr.NewOperation(dmr.ReadChildrenResources, dmr.Root).
		Param(dmr.ChildType, p.childType).
		Param(dmr.IncludeRuntime, true).
		Build()

	result, err := p.dispatcher.Execute(ctx, op)
	if err != nil {
		return nil, err
	}

	rows := make([]PropertyRow, 0)
	for _, prop := range result.AsPropertyList() {
		rows = append(rows, PropertyRow{
			Name:       prop.Name,
			Attributes: prop.Value.AsPropertyList(),
			Href:       modelBrowserHref(dmr.NewAddress(p.childType, prop.Name)),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })

	size := settings.PageSizeFromContext(ctx)
	data := PropertiesPage{
		Title: p.title,
		Total: len(rows),
		Page:  page,
		Pages: (len(rows) + size - 1) / size,
	}
	if data.Pages == 0 {
		data.Pages = 1
	}

	from := (page - 1) * size
	if from < len(rows) {
		to := from + size
		if to > len(rows) {
			to = len(rows)
		}
		data.Rows = rows[from:to]
	}

	if page > 1 {
		data.PrevHref = place.NewRequest(p.token).With(PageParam, strconv.Itoa(page-1)).Href()
	}
	if page < data.Pages {
		data.NextHref = place.NewRequest(p.token).With(PageParam, strconv.Itoa(page+1)).Href()
	}

	return &place.Page{Title: p.title, Template: "properties", Data: data}, nil
}

func pageParam(req place.Request) (int, error) {
	raw := req.Parameter(PageParam, "1")
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errs.NewErrInvalidParameter(PageParam, raw, err)
	}
	if page < 1 {
		return 0, errs.NewErrInvalidParameter(PageParam, raw, errors.New("номер страницы должен быть больше нуля"))
	}
	return page, nil
}
