package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/user-accounts/internal/http/response"
	"github.com/magabrotheeeer/user-accounts/internal/lib/jwt"
	"github.com/magabrotheeeer/user-accounts/internal/lib/sl"
	"github.com/magabrotheeeer/user-accounts/internal/models"
)

// tokenScheme схема заголовка Authorization для токена доступа.
const tokenScheme = "AccessToken "

// UserLoader загружает пользователя по идентификатору из токена.
type UserLoader interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// JWTMiddleware возвращает middleware, которое проверяет токен доступа
// в заголовке Authorization.
//
// Логика работы:
//  1. Считывает значение заголовка Authorization.
//  2. Проверяет, что он начинается со схемы "AccessToken ".
//  3. Валидирует токен и извлекает из него идентификатор пользователя.
//  4. Загружает пользователя и кладёт его в контекст запроса.
//  5. Передаёт управление следующему обработчику.
func JWTMiddleware(jwtMaker jwt.Maker, users UserLoader, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JWTMiddleware"
			authHeader := r.Header.Get("Authorization")

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, tokenScheme) {
				log.Error("missing authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Message(response.MissingAuthHeader))
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, tokenScheme)

			claims, err := jwtMaker.ParseToken(tokenStr)
			if err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Message(response.InvalidToken))
				return
			}

			u, err := users.GetUserByID(r.Context(), claims.UserID)
			if err != nil {
				log.Error("token user not found", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Message(response.InvalidToken))
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
