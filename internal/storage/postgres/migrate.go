package postgres

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/trsv-dev/simple-topology-console/internal/logger"
	"github.com/trsv-dev/simple-topology-console/migrations"
)

// ApplyMigrations Применяет все миграции из embed.FS.
func ApplyMigrations(DatabaseURI string) error {
	d, err := iofs.New(migrations.Files, ".")
	if err != nil {
		logger.Log.Error("Ошибка подготовки встраивания миграций", logger.String("err", err.Error()))
		return fmt.Errorf("ошибка подготовки встраивания миграций: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", d, DatabaseURI)
	if err != nil {
		logger.Log.Error("Ошибка подготовки миграций", logger.String("err", err.Error()))
		return fmt.Errorf("ошибка подготовки миграций: %w", err)
	}

	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Log.Warn("Ошибка закрытия источника миграций", logger.String("err", srcErr.Error()))
		}
		if dbErr != nil {
			logger.Log.Warn("Ошибка закрытия соединения мигратора", logger.String("err", dbErr.Error()))
		}
	}()

	err = m.Up()
	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Log.Info("Нет новых миграций")
			return nil
		}
		return fmt.Errorf("ошибка применения миграции: %w", err)
	}

	logger.Log.Info("Миграции были применены")
	return nil
}
