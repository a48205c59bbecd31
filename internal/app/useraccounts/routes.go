// Package useraccounts предоставляет маршруты и жизненный цикл основного приложения.
package useraccounts

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/user-accounts/internal/http/handlers/user/list"
	"github.com/magabrotheeeer/user-accounts/internal/http/handlers/user/login"
	"github.com/magabrotheeeer/user-accounts/internal/http/handlers/user/profile"
	"github.com/magabrotheeeer/user-accounts/internal/http/handlers/user/read"
	"github.com/magabrotheeeer/user-accounts/internal/http/handlers/user/register"
	"github.com/magabrotheeeer/user-accounts/internal/http/handlers/user/remove"
	"github.com/magabrotheeeer/user-accounts/internal/http/handlers/user/update"
	"github.com/magabrotheeeer/user-accounts/internal/http/middlewarectx"
	"github.com/magabrotheeeer/user-accounts/internal/lib/jwt"
	userservice "github.com/magabrotheeeer/user-accounts/internal/services/user"
	"github.com/magabrotheeeer/user-accounts/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, service *userservice.Service,
	db *repository.Storage, jwtMaker jwt.Maker) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	// Открытые конечные точки
	r.With(middlewarectx.JSONPayload(logger)).
		Post("/users/login/", login.New(logger, service, userservice.LoginSchema(db)).ServeHTTP)
	r.With(middlewarectx.JSONPayload(logger)).
		Post("/users/registration/", register.New(logger, service, userservice.RegistrationSchema(db)).ServeHTTP)

	// Группа с аутентификацией по токену доступа
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(jwtMaker, db, logger))
		r.Use(middlewarectx.RateLimitMiddleware(logger))
		r.Get("/users/profile/", profile.New(logger).ServeHTTP)
		r.Get("/users/", list.New(logger, service).ServeHTTP)
		r.Get("/users/{id}", read.New(logger, service).ServeHTTP)
		r.With(middlewarectx.JSONPayload(logger)).
			Patch("/users/{id}", update.New(logger, service).ServeHTTP)
		r.Delete("/users/{id}", remove.New(logger, service).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
