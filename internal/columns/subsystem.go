package columns

import (
	"context"

	"github.com/trsv-dev/simple-topology-console/internal/dmr"
	"github.com/trsv-dev/simple-topology-console/internal/finder"
	"github.com/trsv-dev/simple-topology-console/internal/place"
)

const (
	profileTemplate   dmr.AddressTemplate = "{selected.profile}"
	subsystemTemplate dmr.AddressTemplate = "{selected.profile}/subsystem=*"
)

// NewSubsystemColumn Подсистемы выбранного профиля (в standalone - сервера).
func NewSubsystemColumn(dispatcher dmr.Dispatcher, subsystems *SubsystemRegistry) *finder.FinderColumn[SubsystemMetadata] {
	return finder.NewBuilder[SubsystemMetadata](SubsystemColumn, Subsystems).
		ItemsProvider(func(ctx context.Context, fc *finder.Context) ([]SubsystemMetadata, error) {
			address, err := resolve(fc, profileTemplate)
			if err != nil {
				return nil, err
			}

			names, err := readChildrenNames(ctx, dispatcher, address, dmr.Subsystem)
			if err != nil {
				return nil, err
			}

			items := make([]SubsystemMetadata, 0, len(names))
			for _, name := range names {
				items = append(items, subsystems.Get(name))
			}
			return items, nil
		}).
		ItemRenderer(func(fc *finder.Context, item SubsystemMetadata) finder.ItemDisplay {
			d := finder.ItemDisplay{
				ID:         item.Name,
				Title:      item.Title,
				Subtitle:   item.Subtitle,
				FilterData: item.Title,
				NextColumn: item.NextColumn,
			}
			if item.Subtitle != "" {
				d.FilterData = item.Title + " " + item.Subtitle
			}

			switch {
			case item.BuiltIn && item.Token != "":
				d.Actions = []finder.ItemAction{finder.NavigateAction(View, place.NewRequest(item.Token).Href())}
			case !item.BuiltIn:
				if address, err := subsystemTemplate.Resolve(fc.Statement, item.Name); err == nil {
					d.Actions = []finder.ItemAction{modelBrowserAction(address)}
				}
			}
			return d
		}).
		ShowCount().
		WithFilter().
		OnPreview(func(ctx context.Context, fc *finder.Context, item SubsystemMetadata) (*finder.Preview, error) {
			if text, ok := staticText("subsystem/" + item.Name); ok {
				return finder.NewPreview(item.Title, text), nil
			}

			address, err := resolve(fc, subsystemTemplate, item.Name)
			if err != nil {
				return nil, err
			}

			result, err := dispatcher.Execute(ctx, dmr.NewOperation(dmr.ReadResourceDescription, address).Build())
			if err != nil {
				return nil, err
			}

			html, err := renderPreview("description", result.Get(dmr.Description).AsString())
			if err != nil {
				return nil, err
			}
			return finder.NewPreview(item.Title, html), nil
		}).
		Build()
}
