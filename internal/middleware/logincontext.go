package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/trsv-dev/simple-topology-console/internal/api/response"
	"github.com/trsv-dev/simple-topology-console/internal/auth"
	"github.com/trsv-dev/simple-topology-console/internal/contextkeys"
	"github.com/trsv-dev/simple-topology-console/internal/errs"
	"github.com/trsv-dev/simple-topology-console/internal/logger"
	"github.com/trsv-dev/simple-topology-console/internal/storage"
)

const bearerPrefix = "Bearer "

// LoginToContextMiddleware Извлекает оператора из JWT-cookie или bearer-токена внешнего провайдера
// и кладёт логин и id в контекст запроса.
// verifier может быть nil: тогда принимается только cookie.
// Логин из bearer-токена должен быть зарегистрирован в хранилище.
func LoginToContextMiddleware(JWTSecretKey string, tokenBuilder auth.TokenBuilder, verifier auth.TokenVerifier, users storage.UserStorage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var (
				claims *auth.Claims
				err    error
			)

			if tokenCookie, cookieErr := r.Cookie(auth.CookieName); cookieErr == nil {
				claims, err = tokenBuilder.GetClaims(tokenCookie.Value, JWTSecretKey)
				if err != nil {
					logger.Log.Warn("Некорректный JWT-токен", logger.String("err", err.Error()))
					response.ErrorJSON(w, http.StatusUnauthorized, "Пользователь не аутентифицирован")
					return
				}
			} else if header := r.Header.Get("Authorization"); verifier != nil && strings.HasPrefix(header, bearerPrefix) {
				claims, err = verifier.Verify(r.Context(), strings.TrimPrefix(header, bearerPrefix))
				if err != nil {
					logger.Log.Warn("Bearer-токен отклонён", logger.String("err", err.Error()))
					response.ErrorJSON(w, http.StatusUnauthorized, "Пользователь не аутентифицирован")
					return
				}

				claims.ID, err = users.GetUserIDByLogin(r.Context(), claims.Login)
				if err != nil {
					var notFound *errs.ErrLoginNotFound
					if errors.As(err, &notFound) {
						logger.Log.Warn("Оператор внешнего провайдера не зарегистрирован", logger.String("login", claims.Login))
						response.ErrorJSON(w, http.StatusForbidden, "Оператор не зарегистрирован")
						return
					}
					logger.Log.Error("Ошибка идентификации пользователя", logger.String("err", err.Error()))
					response.ErrorJSON(w, http.StatusInternalServerError, "Ошибка идентификации пользователя")
					return
				}
			} else {
				logger.Log.Debug("Пользователь не аутентифицирован", logger.String("uri", r.RequestURI))
				response.ErrorJSON(w, http.StatusUnauthorized, "Пользователь не аутентифицирован")
				return
			}

			if claims.Login == "" {
				logger.Log.Error("В токене нет логина")
				response.ErrorJSON(w, http.StatusUnauthorized, "Пользователь не аутентифицирован")
				return
			}

			ctx := context.WithValue(r.Context(), contextkeys.Login, claims.Login)
			ctx = context.WithValue(ctx, contextkeys.ID, claims.ID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
