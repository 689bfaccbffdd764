package columns

import (
	"context"

	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	"github.com/trsv-dev/simple-topology-console/internal/finder"
	"github.com/trsv-dev/simple-topology-console/internal/runtime"
)

// NewServerGroupColumn Группы серверов по алфавиту.
func NewServerGroupColumn(topology runtime.TopologyReader) *finder.FinderColumn[*runtime.ServerGroup] {
	return finder.NewBuilder[*runtime.ServerGroup](ServerGroupColumn, ServerGroups).
		ItemsProvider(func(ctx context.Context, _ *finder.Context) ([]*runtime.ServerGroup, error) {
			return topology.ServerGroupsWithServers(ctx)
		}).
		ItemRenderer(func(_ *finder.Context, g *runtime.ServerGroup) finder.ItemDisplay {
			return finder.ItemDisplay{
				ID:         g.Name,
				Title:      g.Name,
				Subtitle:   g.Profile,
				FilterData: g.Name + " " + g.Profile,
				NextColumn: ServerColumn,
				Actions:    []finder.ItemAction{modelBrowserAction(dmr.NewAddress(dmr.ServerGroup, g.Name))},
			}
		}).
		ShowCount().
		WithFilter().
		OnSelect(func(fc *finder.Context, g *runtime.ServerGroup) {
			fc.Statement.Select(dmr.SelectedServerGroup, g.Name)
		}).
		OnPreview(func(_ context.Context, _ *finder.Context, g *runtime.ServerGroup) (*finder.Preview, error) {
			return serversPreview(g.Name, "server-group", g)
		}).
		Build()
}
