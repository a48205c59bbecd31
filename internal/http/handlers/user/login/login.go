// Package login реализует HTTP-обработчик входа пользователя.
//
// Handler валидирует login и password по схеме входа (существование
// пользователя и соответствие пароля проверяются на уровне схемы)
// и возвращает подписанный токен доступа.
package login

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/user-accounts/internal/http/middlewarectx"
	"github.com/magabrotheeeer/user-accounts/internal/http/response"
	"github.com/magabrotheeeer/user-accounts/internal/lib/sl"
	"github.com/magabrotheeeer/user-accounts/internal/schema"
	userservice "github.com/magabrotheeeer/user-accounts/internal/services/user"
	"github.com/magabrotheeeer/user-accounts/internal/storage/repository"
)

// Handler обрабатывает запросы на вход пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
	schema  *schema.Schema
}

// Service описывает интерфейс бизнес-логики входа.
type Service interface {
	Login(ctx context.Context, login, password string) (string, error)
}

// New создает новый Handler с переданным логгером, сервисом и схемой входа.
func New(log *slog.Logger, service Service, sch *schema.Schema) *Handler {
	return &Handler{
		log:     log,
		service: service,
		schema:  sch,
	}
}

// ServeHTTP обрабатывает вход пользователя.
//
// @Summary Вход пользователя
// @Tags auth
// @Accept  json
// @Produce json
// @Success 200 {object} map[string]string "Токен доступа"
// @Failure 400 {object} map[string]any "Ошибка валидации"
// @Router /users/login/ [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.login.New"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	data := middlewarectx.Payload(r.Context())

	errs, err := h.schema.Validate(r.Context(), data)
	if err != nil {
		log.Error("failed to validate request", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Message(response.InternalError))
		return
	}
	if errs != nil {
		log.Error("invalid request", slog.Any("errors", errs))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.ValidationErrors(errs))
		return
	}
	log.Info("all fields are validated")

	login, _ := data["login"].(string)
	rawPassword, _ := data["password"].(string)

	token, err := h.service.Login(r.Context(), login, rawPassword)
	if errors.Is(err, repository.ErrUserNotFound) || errors.Is(err, userservice.ErrInvalidCredentials) {
		log.Error("incorrect user or password", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Message(userservice.UserNotExist))
		return
	}
	if err != nil {
		log.Error("could not generate token", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Message(response.InternalError))
		return
	}

	log.Info("user logged in", slog.String("login", login))
	render.JSON(w, r, map[string]string{
		"access_token": token,
	})
}
