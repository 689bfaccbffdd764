package columns

import (
	"context"

	"github.com/trsv-dev/simple-topology-console/internal/finder"
)

// NewBrowseByColumn Начальная колонка runtime-страницы домена: по хостам или по группам.
func NewBrowseByColumn() finder.Column {
	return finder.NewBuilder[customItem](BrowseByColumn, BrowseBy).
		Items(folder(Hosts, HostColumn), folder(ServerGroups, ServerGroupColumn)).
		ItemRenderer(func(_ *finder.Context, item customItem) finder.ItemDisplay {
			return item.display()
		}).
		OnPreview(func(_ context.Context, _ *finder.Context, item customItem) (*finder.Preview, error) {
			return staticPreview(item.title, finder.AsID(item.title)), nil
		}).
		Build()
}

// browseByHosts true, если серверы выбираются через колонку хостов.
func browseByHosts(fc *finder.Context) bool {
	item, ok := fc.Path.Item(BrowseByColumn)
	return ok && item == finder.AsID(Hosts)
}

// browseByServerGroups true, если серверы выбираются через колонку групп.
func browseByServerGroups(fc *finder.Context) bool {
	item, ok := fc.Path.Item(BrowseByColumn)
	return ok && item == finder.AsID(ServerGroups)
}
