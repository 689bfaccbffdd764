package columns

import (
	"context"

	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	"github.com/trsv-dev/simple-topology-console/internal/finder"
)

// NewInterfaceColumn Сетевые интерфейсы.
func NewInterfaceColumn(dispatcher dmr.Dispatcher) *finder.FinderColumn[string] {
	return namedResourceColumn(dispatcher, InterfaceColumn, Interfaces, dmr.Interface)
}

// NewSocketBindingColumn Группы socket binding'ов.
func NewSocketBindingColumn(dispatcher dmr.Dispatcher) *finder.FinderColumn[string] {
	return namedResourceColumn(dispatcher, SocketBindingColumn, SocketBindings, dmr.SocketBindingGroup)
}

// namedResourceColumn Колонка с именами корневых ресурсов childType: действие
// открывает ресурс в model browser'е, предпросмотр показывает атрибуты.
func namedResourceColumn(dispatcher dmr.Dispatcher, id, title, childType string) *finder.FinderColumn[string] {
	return finder.NewBuilder[string](id, title).
		ItemsProvider(func(ctx context.Context, _ *finder.Context) ([]string, error) {
			return readChildrenNames(ctx, dispatcher, dmr.Root, childType)
		}).
		ItemRenderer(func(_ *finder.Context, name string) finder.ItemDisplay {
			return finder.ItemDisplay{
				ID:         name,
				Title:      name,
				FilterData: name,
				Actions:    []finder.ItemAction{modelBrowserAction(dmr.NewAddress(childType, name))},
			}
		}).
		ColumnAction(finder.NavigateAction(List, modelBrowserListHref(childType))).
		ShowCount().
		WithFilter().
		OnPreview(func(ctx context.Context, _ *finder.Context, name string) (*finder.Preview, error) {
			return attributesPreview(ctx, dispatcher, name, dmr.NewAddress(childType, name))
		}).
		Build()
}
