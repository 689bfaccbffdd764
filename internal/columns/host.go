package columns

import (
	"context"

	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	"github.com/trsv-dev/simple-topology-console/internal/finder"
	"github.com/trsv-dev/simple-topology-console/internal/runtime"
)

// Значки строк.
const (
	iconOK       = "ok"
	iconWarning  = "warning"
	iconError    = "error"
	iconDisabled = "disabled"
	iconStopped  = "stopped"
	iconUnknown  = "unknown"
)

// NewHostColumn Хосты домена, контроллер домена первым.
func NewHostColumn(topology runtime.TopologyReader) *finder.FinderColumn[*runtime.Host] {
	return finder.NewBuilder[*runtime.Host](HostColumn, Hosts).
		ItemsProvider(func(ctx context.Context, _ *finder.Context) ([]*runtime.Host, error) {
			return topology.HostsWithServers(ctx)
		}).
		ItemRenderer(func(_ *finder.Context, h *runtime.Host) finder.ItemDisplay {
			d := finder.ItemDisplay{
				ID:         h.Name,
				Title:      h.Name,
				FilterData: h.Name + " host controller",
				NextColumn: ServerColumn,
				Icon:       hostIcon(h.HostState),
				Tooltip:    h.HostState,
				Actions:    []finder.ItemAction{modelBrowserAction(dmr.NewAddress(dmr.Host, h.Name))},
			}
			if h.DomainController {
				d.Subtitle = "Domain Controller"
				d.FilterData = h.Name + " domain controller"
			}
			return d
		}).
		ShowCount().
		WithFilter().
		OnSelect(func(fc *finder.Context, h *runtime.Host) {
			fc.Statement.Select(dmr.SelectedHost, h.Name)
		}).
		OnPreview(func(_ context.Context, _ *finder.Context, h *runtime.Host) (*finder.Preview, error) {
			return serversPreview(h.Name, "host", h)
		}).
		Build()
}

func hostIcon(state string) string {
	switch runtime.ServerState(normalizeState(state)) {
	case runtime.StateRunning:
		return iconOK
	case runtime.StateReloadRequired, runtime.StateRestartRequired:
		return iconWarning
	case runtime.StateStarting:
		return iconDisabled
	default:
		return iconUnknown
	}
}
