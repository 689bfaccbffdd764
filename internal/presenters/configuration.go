package presenters

import (
	"github.com/trsv-dev/simple-topology-console/internal/columns"
	"github.com/trsv-dev/simple-topology-console/internal/environment"
	"github.com/trsv-dev/simple-topology-console/internal/finder"
	"github.com/trsv-dev/simple-topology-console/internal/place"
)

// NewConfigurationPresenter Страница конфигурации.
func NewConfigurationPresenter(env *environment.Environment, f *finder.Finder) place.Presenter {
	return &finderPresenter{
		token:   place.Configuration,
		title:   columns.Configuration,
		initial: columns.ConfigurationColumn,
		env:     env,
		finder:  f,
		initialPreview: func() *finder.Preview {
			return columns.ConfigurationPreview(env)
		},
	}
}
