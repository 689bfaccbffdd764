package columns

import (
	"context"

	"github.com/trsv-dev/simple-topology-console/internal/environment"
	"github.com/trsv-dev/simple-topology-console/internal/finder"
	"github.com/trsv-dev/simple-topology-console/internal/place"
)

// customItem Элемент колонки с фиксированным набором элементов: папка или ссылка на страницу.
type customItem struct {
	title      string
	nextColumn string
	token      string
}

func folder(title, nextColumn string) customItem {
	return customItem{title: title, nextColumn: nextColumn}
}

func link(title, token string) customItem {
	return customItem{title: title, token: token}
}

func (i customItem) display() finder.ItemDisplay {
	d := finder.ItemDisplay{
		Title:      i.title,
		NextColumn: i.nextColumn,
		Folder:     i.nextColumn != "",
	}
	if i.token != "" {
		d.Actions = []finder.ItemAction{tokenAction(i.token)}
	}
	return d
}

// NewConfigurationColumn Начальная колонка страницы конфигурации. В домене вместо
// подсистем показываются профили: подсистемы выбираются внутри профиля.
func NewConfigurationColumn(env *environment.Environment) finder.Column {
	first := folder(Subsystems, SubsystemColumn)
	if !env.IsStandalone() {
		first = folder(Profiles, ProfileColumn)
	}

	return finder.NewBuilder[customItem](ConfigurationColumn, Configuration).
		Items(
			first,
			folder(Interfaces, InterfaceColumn),
			folder(SocketBindings, SocketBindingColumn),
			link(Paths, place.Paths),
			link(SystemProperties, place.SystemProperties),
		).
		ItemRenderer(func(_ *finder.Context, item customItem) finder.ItemDisplay {
			return item.display()
		}).
		OnPreview(func(_ context.Context, _ *finder.Context, item customItem) (*finder.Preview, error) {
			return staticPreview(item.title, finder.AsID(item.title)), nil
		}).
		Build()
}

// ConfigurationPreview Предпросмотр страницы конфигурации до выбора элемента.
func ConfigurationPreview(env *environment.Environment) *finder.Preview {
	if env.IsStandalone() {
		return staticPreview(Configuration, "configuration-standalone")
	}
	return staticPreview(Configuration, "configuration-domain")
}
