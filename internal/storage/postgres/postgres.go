package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/trsv-dev/simple-topology-console/internal/logger"
)

// Пул соединений: консоль хранит только учётные записи и настройки операторов.
const (
	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
	pingTimeout     = 5 * time.Second
)

// PgStorage Учётные записи и настройки операторов в PostgreSQL.
type PgStorage struct {
	DB *sql.DB
}

// InitStorage Подключение к БД и применение миграций.
func InitStorage(ctx context.Context, databaseURI string) (*PgStorage, error) {
	db, err := sql.Open("pgx", databaseURI)
	if err != nil {
		logger.Log.Error("Ошибка подключения к БД PostgreSQL", logger.String("err", err.Error()))
		return nil, fmt.Errorf("ошибка подключения к БД PostgreSQL: %w", err)
	}

	pg, err := newPgStorage(ctx, db)
	if err != nil {
		return nil, err
	}

	if err = ApplyMigrations(databaseURI); err != nil {
		logger.Log.Error("Ошибка применения миграций к БД PostgreSQL", logger.String("err", err.Error()))
		_ = db.Close()
		return nil, fmt.Errorf("ошибка применения миграций к БД PostgreSQL: %w", err)
	}

	logger.Log.Info("Настройки операторов хранятся в PostgreSQL")
	return pg, nil
}

// newPgStorage Настраивает пул и проверяет соединение. При ошибке соединение закрывается.
func newPgStorage(ctx context.Context, db *sql.DB) (*PgStorage, error) {
	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		logger.Log.Error("БД PostgreSQL не отвечает", logger.String("err", err.Error()))
		_ = db.Close()
		return nil, fmt.Errorf("нет связи с БД PostgreSQL: %w", err)
	}

	return &PgStorage{DB: db}, nil
}

// Ping Используется health-check'ом.
func (pg *PgStorage) Ping(ctx context.Context) error {
	return pg.DB.PingContext(ctx)
}

func (pg *PgStorage) Close() error {
	if err := pg.DB.Close(); err != nil {
		logger.Log.Error("Ошибка закрытия соединения с БД PostgreSQL", logger.String("err", err.Error()))
		return fmt.Errorf("ошибка закрытия БД PostgreSQL: %w", err)
	}

	return nil
}
