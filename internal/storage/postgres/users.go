package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/trsv-dev/simple-topology-console/internal/errs"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
	"github.com/trsv-dev/simple-topology-console/internal/models"
)

// CreateUser Создание оператора. Пароль хранится в виде bcrypt-хэша.
func (pg *PgStorage) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("Не удалось хэшировать пароль", logger.String("err", err.Error()))
		return nil, err
	}

	query := `INSERT INTO users (login, password) VALUES ($1, $2) RETURNING id`

	var created models.User
	created.Login = user.Login

	err = pg.DB.QueryRowContext(ctx, query, user.Login, string(hashedPassword)).Scan(&created.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		switch {
		// дубликат логина
		case errors.As(err, &pgErr) && pgErr.Code == "23505":
			return nil, errs.NewErrLoginIsTaken(user.Login, err)
		default:
			logger.Log.Error("Ошибка при создании оператора", logger.String("err", err.Error()))
			return nil, fmt.Errorf("ошибка создания оператора: %w", err)
		}
	}

	return &created, nil
}

// GetUser Возвращает оператора, если логин и пароль верны.
func (pg *PgStorage) GetUser(ctx context.Context, user *models.User) (*models.User, error) {
	var userFromDB models.User

	query := `SELECT id, login, password FROM users WHERE login = $1`
	err := pg.DB.QueryRowContext(ctx, query, user.Login).Scan(&userFromDB.ID, &userFromDB.Login, &userFromDB.Password)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, errs.NewErrWrongLoginOrPassword(err)
		default:
			logger.Log.Error("Ошибка запроса", logger.String("err", err.Error()))
			return nil, err
		}
	}

	if err = bcrypt.CompareHashAndPassword([]byte(userFromDB.Password), []byte(user.Password)); err != nil {
		return nil, errs.NewErrWrongLoginOrPassword(err)
	}

	userFromDB.Password = ""
	return &userFromDB, nil
}

// GetUserIDByLogin Возвращает ID оператора.
func (pg *PgStorage) GetUserIDByLogin(ctx context.Context, login string) (int64, error) {
	var userID int64

	query := `SELECT id FROM users WHERE login = $1`
	err := pg.DB.QueryRowContext(ctx, query, login).Scan(&userID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return 0, errs.NewErrLoginNotFound(err)
		default:
			logger.Log.Error("Ошибка запроса", logger.String("err", err.Error()))
			return 0, err
		}
	}

	return userID, nil
}
