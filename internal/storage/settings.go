package storage

import "context"

//go:generate mockgen -destination=mocks/settings_storage_mock.go -package=mocks . SettingsStorage

// SettingsStorage Сохранённые настройки операторов.
type SettingsStorage interface {
	GetSettings(ctx context.Context, login string) (map[string]string, error)
	SetSetting(ctx context.Context, login, key, value string) error
	DeleteSetting(ctx context.Context, login, key string) error
}
