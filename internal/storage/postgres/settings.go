package postgres

import (
	"context"
	"fmt"

	"github.com/trsv-dev/simple-topology-console/internal/errs"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
)

// GetSettings Сохранённые настройки оператора.
func (pg *PgStorage) GetSettings(ctx context.Context, login string) (map[string]string, error) {
	query := `SELECT s.key, s.value FROM user_settings s
              JOIN users u ON u.id = s.user_id
              WHERE u.login = $1`

	rows, err := pg.DB.QueryContext(ctx, query, login)
	if err != nil {
		logger.Log.Error("Ошибка при получении настроек оператора", logger.String("err", err.Error()))
		return nil, fmt.Errorf("ошибка при получении настроек оператора: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("ошибка чтения настроек оператора: %w", err)
		}
		values[key] = value
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения настроек оператора: %w", err)
	}

	return values, nil
}

// SetSetting Сохраняет (или заменяет) настройку оператора.
func (pg *PgStorage) SetSetting(ctx context.Context, login, key, value string) error {
	query := `INSERT INTO user_settings (user_id, key, value)
              SELECT id, $2, $3 FROM users WHERE login = $1
              ON CONFLICT (user_id, key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`

	result, err := pg.DB.ExecContext(ctx, query, login, key, value)
	if err != nil {
		logger.Log.Error("Ошибка сохранения настройки", logger.String("err", err.Error()))
		return fmt.Errorf("ошибка сохранения настройки: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при выполнении запроса: %w", err)
	}

	if affected == 0 {
		return errs.NewErrLoginNotFound(fmt.Errorf("оператор `%s` не найден", login))
	}

	return nil
}

// DeleteSetting Удаляет настройку: дальше действует значение по умолчанию.
func (pg *PgStorage) DeleteSetting(ctx context.Context, login, key string) error {
	query := `DELETE FROM user_settings
              WHERE key = $2 AND user_id = (SELECT id FROM users WHERE login = $1)`

	if _, err := pg.DB.ExecContext(ctx, query, login, key); err != nil {
		logger.Log.Error("Ошибка удаления настройки", logger.String("err", err.Error()))
		return fmt.Errorf("ошибка удаления настройки: %w", err)
	}

	return nil
}
