package columns

import (
	"context"

	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	"github.com/trsv-dev/simple-topology-console/internal/finder"
	"github.com/trsv-dev/simple-topology-console/internal/runtime"
)

// NewProfileColumn Профили домена. Выбор профиля задаёт {selected.profile}.
func NewProfileColumn(dispatcher dmr.Dispatcher, topology runtime.TopologyReader) *finder.FinderColumn[string] {
	return finder.NewBuilder[string](ProfileColumn, Profiles).
		ItemsProvider(func(ctx context.Context, _ *finder.Context) ([]string, error) {
			return readChildrenNames(ctx, dispatcher, dmr.Root, dmr.Profile)
		}).
		ItemRenderer(func(_ *finder.Context, name string) finder.ItemDisplay {
			return finder.ItemDisplay{
				ID:         name,
				Title:      name,
				FilterData: name,
				NextColumn: SubsystemColumn,
				Actions:    []finder.ItemAction{modelBrowserAction(dmr.NewAddress(dmr.Profile, name))},
			}
		}).
		ShowCount().
		WithFilter().
		OnSelect(func(fc *finder.Context, name string) {
			fc.Statement.Select(dmr.SelectedProfile, name)
		}).
		OnPreview(func(ctx context.Context, _ *finder.Context, name string) (*finder.Preview, error) {
			servers, err := topology.RunningServersOfProfile(ctx, name)
			if err != nil {
				return nil, err
			}

			html, err := renderPreview("profile", map[string]any{"Profile": name, "Servers": servers})
			if err != nil {
				return nil, err
			}
			return finder.NewPreview(name, html), nil
		}).
		Build()
}
