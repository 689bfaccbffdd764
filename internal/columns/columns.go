package columns

import (
	"context"
	"fmt"

	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	"github.com/trsv-dev/simple-topology-console/internal/environment"
	"github.com/trsv-dev/simple-topology-console/internal/finder"
	"github.com/trsv-dev/simple-topology-console/internal/place"
	"github.com/trsv-dev/simple-topology-console/internal/runtime"
)

// Deps Зависимости колонок.
type Deps struct {
	Environment *environment.Environment
	Dispatcher  dmr.Dispatcher
	Topology    runtime.TopologyReader
	Actions     runtime.ActionExecutor
	Subsystems  *SubsystemRegistry
}

// NewFinder Finder со всеми колонками консоли.
func NewFinder(d Deps) *finder.Finder {
	if d.Subsystems == nil {
		d.Subsystems = DefaultSubsystemRegistry()
	}

	return finder.New(
		NewConfigurationColumn(d.Environment),
		NewProfileColumn(d.Dispatcher, d.Topology),
		NewSubsystemColumn(d.Dispatcher, d.Subsystems),
		NewInterfaceColumn(d.Dispatcher),
		NewSocketBindingColumn(d.Dispatcher),
		NewBrowseByColumn(),
		NewHostColumn(d.Topology),
		NewServerGroupColumn(d.Topology),
		NewServerColumn(d.Dispatcher, d.Actions),
		NewServerMonitorColumn(),
	)
}

// readChildrenNames Имена дочерних ресурсов типа childType.
func readChildrenNames(ctx context.Context, dispatcher dmr.Dispatcher, address dmr.ResourceAddress, childType string) ([]string, error) {
	op := dmr.NewOperation(dmr.ReadChildrenNames, address).Param(dmr.ChildType, childType).Build()

	result, err := dispatcher.Execute(ctx, op)
	if err != nil {
		return nil, err
	}

	nodes := result.AsList()
	names := make([]string, 0, len(nodes))
	for _, n := range nodes {
		names = append(names, n.AsString())
	}
	return names, nil
}

// attributesPreview Предпросмотр с атрибутами ресурса.
func attributesPreview(ctx context.Context, dispatcher dmr.Dispatcher, header string, address dmr.ResourceAddress) (*finder.Preview, error) {
	op := dmr.NewOperation(dmr.ReadResource, address).
		Param(dmr.AttributesOnly, true).
		Param(dmr.IncludeRuntime, true).
		Build()

	result, err := dispatcher.Execute(ctx, op)
	if err != nil {
		return nil, err
	}

	html, err := renderPreview("attributes", result.AsPropertyList())
	if err != nil {
		return nil, err
	}
	return finder.NewPreview(header, html), nil
}

// modelBrowserListHref Список корневых ресурсов childType в model browser'е.
func modelBrowserListHref(childType string) string {
	return place.NewRequest(place.ModelBrowser).
		With(place.AddressParam, dmr.Root.String()).
		With(place.ChildTypeParam, childType).
		Href()
}

// modelBrowserAction Действие "View", открывающее ресурс в model browser'е.
func modelBrowserAction(address dmr.ResourceAddress) finder.ItemAction {
	return finder.NavigateAction(View, place.NewRequest(place.ModelBrowser).With(place.AddressParam, address.String()).Href())
}

func tokenAction(token string) finder.ItemAction {
	return finder.NavigateAction(View, place.NewRequest(token).Href())
}

func resolve(fc *finder.Context, template dmr.AddressTemplate, wildcards ...string) (dmr.ResourceAddress, error) {
	address, err := template.Resolve(fc.Statement, wildcards...)
	if err != nil {
		return dmr.Root, fmt.Errorf("колонка не может разрешить адрес: %w", err)
	}
	return address, nil
}
