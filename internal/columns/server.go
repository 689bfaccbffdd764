package columns

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	"github.com/trsv-dev/simple-topology-console/internal/finder"
	"github.com/trsv-dev/simple-topology-console/internal/place"
	"github.com/trsv-dev/simple-topology-console/internal/runtime"
)

const allServerConfigs dmr.AddressTemplate = "/host=*/server-config=*"

// ServerActionHref Адрес API действия над сервером.
func ServerActionHref(host, server string, action runtime.Action) string {
	return "/api/servers/" + url.PathEscape(host) + "/" + url.PathEscape(server) + "/" + string(action)
}

// NewServerColumn Серверы выбранного хоста или выбранной группы, по имени.
func NewServerColumn(dispatcher dmr.Dispatcher, actions runtime.ActionExecutor) *finder.FinderColumn[*runtime.Server] {
	return finder.NewBuilder[*runtime.Server](ServerColumn, Servers).
		ItemsProvider(func(ctx context.Context, fc *finder.Context) ([]*runtime.Server, error) {
			return readServers(ctx, dispatcher, fc)
		}).
		ItemRenderer(func(fc *finder.Context, s *runtime.Server) finder.ItemDisplay {
			pending := actions.IsPending(s.Host(), s.Name())
			tooltip, icon := serverStatus(s, pending)

			d := finder.ItemDisplay{
				ID:         s.Key(),
				Title:      s.Name(),
				FilterData: serverFilterData(s),
				Tooltip:    tooltip,
				Icon:       icon,
				Pending:    pending,
				Actions:    serverActions(s, pending),
			}
			if browseByServerGroups(fc) {
				d.Subtitle = s.Host()
			}
			if s.IsStarted() {
				d.NextColumn = ServerMonitorColumn
			}
			return d
		}).
		ShowCount().
		WithFilter().
		OnSelect(func(fc *finder.Context, s *runtime.Server) {
			// при просмотре по группам {selected.host} тоже должен быть задан
			fc.Statement.Select(dmr.SelectedHost, s.Host())
			fc.Statement.Select(dmr.SelectedServer, s.Name())
		}).
		OnPreview(func(_ context.Context, _ *finder.Context, s *runtime.Server) (*finder.Preview, error) {
			html, err := renderPreview("server", map[string]any{
				"Server":  s,
				"Pending": actions.IsPending(s.Host(), s.Name()),
			})
			if err != nil {
				return nil, err
			}
			return finder.NewPreview(s.Name(), html), nil
		}).
		Build()
}

// readServers Читает server-config'и, затем одним composite-запросом runtime-атрибуты
// запущенных серверов.
func readServers(ctx context.Context, dispatcher dmr.Dispatcher, fc *finder.Context) ([]*runtime.Server, error) {
	if fc.Statement.Standalone() {
		return []*runtime.Server{}, nil
	}

	var (
		servers []*runtime.Server
		err     error
	)
	switch {
	case browseByHosts(fc):
		servers, err = serverConfigsOfHost(ctx, dispatcher, fc)
	case browseByServerGroups(fc):
		servers, err = serverConfigsOfGroup(ctx, dispatcher, fc)
	default:
		return nil, errors.New("серверы выбираются только через хост или группу серверов")
	}
	if err != nil {
		return nil, err
	}

	started := make([]*runtime.Server, 0, len(servers))
	steps := make([]dmr.Operation, 0, len(servers))
	for _, s := range servers {
		if !s.IsStarted() {
			continue
		}
		started = append(started, s)
		steps = append(steps, dmr.NewOperation(dmr.ReadResource, s.ServerAddress()).
			Param(dmr.AttributesOnly, true).
			Param(dmr.IncludeRuntime, true).
			Build())
	}

	if len(steps) > 0 {
		result, err := dispatcher.ExecuteComposite(ctx, dmr.NewComposite(steps...))
		if err != nil {
			return nil, err
		}
		for i, s := range started {
			step := result.Step(i)
			if !step.IsDefined() || step.IsFailure() {
				continue
			}
			s.AddServerAttributes(step.Get(dmr.ResultKey))
		}
	}

	sort.SliceStable(servers, func(i, j int) bool {
		if servers[i].Name() != servers[j].Name() {
			return servers[i].Name() < servers[j].Name()
		}
		return servers[i].Host() < servers[j].Host()
	})

	return servers, nil
}

func serverConfigsOfHost(ctx context.Context, dispatcher dmr.Dispatcher, fc *finder.Context) ([]*runtime.Server, error) {
	host := fc.Statement.SelectedHost()
	if host == "" {
		return nil, errors.New("не выбран хост")
	}

	op := dmr.NewOperation(dmr.ReadChildrenResources, dmr.NewAddress(dmr.Host, host)).
		Param(dmr.ChildType, dmr.ServerConfig).
		Param(dmr.IncludeRuntime, true).
		Build()

	result, err := dispatcher.Execute(ctx, op)
	if err != nil {
		return nil, err
	}

	properties := result.AsPropertyList()
	servers := make([]*runtime.Server, 0, len(properties))
	for _, p := range properties {
		servers = append(servers, runtime.NewServerFromConfig(host, p.Value.With(dmr.Name, dmr.StringNode(p.Name))))
	}
	return servers, nil
}

func serverConfigsOfGroup(ctx context.Context, dispatcher dmr.Dispatcher, fc *finder.Context) ([]*runtime.Server, error) {
	group := fc.Statement.SelectedServerGroup()
	if group == "" {
		return nil, errors.New("не выбрана группа серверов")
	}

	address, err := resolve(fc, allServerConfigs)
	if err != nil {
		return nil, err
	}

	op := dmr.NewOperation(dmr.Query, address).
		Param(dmr.Where, map[string]string{dmr.Group: group}).
		Build()

	result, err := dispatcher.Execute(ctx, op)
	if err != nil {
		return nil, err
	}

	servers := make([]*runtime.Server, 0)
	for _, node := range result.AsList() {
		if node.IsFailure() {
			continue
		}
		host := dmr.AddressFromNode(node.Get(dmr.AddressKey)).Parent().LastValue()
		servers = append(servers, runtime.NewServerFromConfig(host, node.Get(dmr.ResultKey)))
	}
	return servers, nil
}

func serverFilterData(s *runtime.Server) string {
	data := []string{s.Name(), attributeValue(string(s.Status))}
	if s.IsStarted() {
		data = append(data, attributeValue(string(s.ServerState)), attributeValue(string(s.SuspendState)))
	} else {
		data = append(data, "stopped")
	}
	return strings.Join(data, " ")
}

// serverStatus Подсказка и значок строки сервера.
func serverStatus(s *runtime.Server, pending bool) (string, string) {
	switch {
	case pending:
		return "Pending", iconUnknown
	case s.IsAdminMode():
		return "Admin only", iconDisabled
	case s.IsStarting():
		return "Starting", iconDisabled
	case s.IsSuspended():
		return "Suspended", iconWarning
	case s.NeedsReload():
		return "Needs reload", iconWarning
	case s.NeedsRestart():
		return "Needs restart", iconWarning
	case s.IsRunning():
		return "Running", iconOK
	case s.HasError():
		return "Failed", iconError
	case s.IsStopped():
		return "Stopped", iconStopped
	default:
		return "Unknown state", iconUnknown
	}
}

// serverActions Переход к странице сервера и, если над сервером ничего не выполняется,
// допустимые действия в порядке reload, restart, suspend|resume, stop.
func serverActions(s *runtime.Server, pending bool) []finder.ItemAction {
	view := place.NewRequest(place.ServerConfiguration).
		With(place.HostParam, s.Host()).
		With(place.ServerParam, s.Name())

	items := []finder.ItemAction{finder.NavigateAction(View, view.Href())}
	if pending {
		return items
	}

	for _, action := range runtime.AllowedActions(s) {
		items = append(items, finder.PostAction(actionTitle(action), ServerActionHref(s.Host(), s.Name(), action)))
	}
	return items
}

func actionTitle(action runtime.Action) string {
	a := string(action)
	if a == "" {
		return a
	}
	return strings.ToUpper(a[:1]) + a[1:]
}

// "RELOAD_REQUIRED" -> "reload-required"
func attributeValue(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", "-"))
}

// "reload-required" -> "RELOAD_REQUIRED"
func normalizeState(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
}

// NewServerMonitorColumn Разделы запущенного сервера.
func NewServerMonitorColumn() finder.Column {
	return finder.NewBuilder[finder.ItemDisplay](ServerMonitorColumn, Monitor).
		ItemsProvider(func(_ context.Context, fc *finder.Context) ([]finder.ItemDisplay, error) {
			host, server := fc.Statement.SelectedHost(), fc.Statement.SelectedServer()
			if host == "" || server == "" {
				return nil, fmt.Errorf("не выбран сервер (host=%q, server=%q)", host, server)
			}

			status := place.NewRequest(place.ServerConfiguration).
				With(place.HostParam, host).
				With(place.ServerParam, server)

			return []finder.ItemDisplay{
				{Title: "Status", Actions: []finder.ItemAction{finder.NavigateAction(View, status.Href())}},
				{Title: "Runtime Model", Actions: []finder.ItemAction{modelBrowserAction(dmr.NewAddress(dmr.Host, host, dmr.Server, server))}},
			}, nil
		}).
		ItemRenderer(func(_ *finder.Context, d finder.ItemDisplay) finder.ItemDisplay {
			return d
		}).
		Build()
}
