package bootstrap

import (
	"context"
	"fmt"

	"github.com/trsv-dev/simple-topology-console/internal/logger"
	"github.com/trsv-dev/simple-topology-console/internal/settings"
	"github.com/trsv-dev/simple-topology-console/internal/storage"
)

// LoadSettings Заполняет настройки оператора: сохранённые значения или значения по умолчанию.
// Загружает run-as, поэтому должна идти после задач, которым run-as не нужен.
type LoadSettings struct {
	store storage.SettingsStorage
}

// NewLoadSettings store может быть nil: тогда используются только значения по умолчанию.
func NewLoadSettings(store storage.SettingsStorage) *LoadSettings {
	return &LoadSettings{store: store}
}

func (t *LoadSettings) Name() string { return "load-settings" }

func (t *LoadSettings) Apply(ctx context.Context, bc *Context) error {
	stored := make(map[settings.Key]string)

	if t.store != nil && bc.Login != "" {
		values, err := t.store.GetSettings(ctx, bc.Login)
		if err != nil {
			return fmt.Errorf("не удалось получить сохранённые настройки: %w", err)
		}
		for k, v := range values {
			stored[settings.Key(k)] = v
		}
	}

	s := settings.New()
	s.Load(settings.Title, stored, settings.DefaultTitle)
	s.Load(settings.CollectUserData, stored, bc.Environment.IsCommunity())
	s.Load(settings.Locale, stored, settings.DefaultLocale)
	s.Load(settings.PageSize, stored, settings.DefaultPageSize)
	s.Load(settings.Poll, stored, true)
	s.Load(settings.PollTime, stored, settings.DefaultPollTime)
	s.Load(settings.RunAs, stored, nil)
	bc.Settings = s

	logger.Log.Debug("Загружены настройки", logger.String("login", bc.Login), logger.String("settings", s.String()))

	return nil
}
