// Package register реализует HTTP-обработчик регистрации нового пользователя.
package register

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
	"github.com/magabrotheeeer/user-accounts/internal/models"
	"github.com/magabrotheeeer/user-accounts/internal/schema"
	"github.com/magabrotheeeer/user-accounts/internal/storage/repository"
)

// Handler обрабатывает запросы на регистрацию пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
	schema  *schema.Schema
}

// Service описывает интерфейс бизнес-логики регистрации.
type Service interface {
	Register(ctx context.Context, login, password, name, email string,
		isActive, isAdmin bool) (*models.User, error)
}

// New создает новый Handler с переданным логгером, сервисом и схемой регистрации.
func New(log *slog.Logger, service Service, sch *schema.Schema) *Handler {
	return &Handler{
		log:     log,
		service: service,
		schema:  sch,
	}
}

// ServeHTTP обрабатывает регистрацию нового пользователя.
//
// @Summary Регистрация нового пользователя
// @Tags auth
// @Accept  json
// @Produce json
// @Success 201 {object} models.User "Созданный пользователь"
// @Failure 400 {object} map[string]any "Ошибка валидации или занятые login/email"
// @Router /users/registration/ [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.register.New"

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
	name, _ := data["name"].(string)
	email, _ := data["email"].(string)
	isActive, _ := data["is_active"].(bool)
	isAdmin, _ := data["is_admin"].(bool)

	u, err := h.service.Register(r.Context(), login, rawPassword, name, email, isActive, isAdmin)
	if errors.Is(err, repository.ErrAlreadyExists) {
		// Гонка: уникальность нарушена после успешной проверки схемы.
		log.Error("unique constraint violated", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Message(response.SomethingWentWrong))
		return
	}
	if err != nil {
		log.Error("failed to register new user", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Message(response.InternalError))
		return
	}

	log.Info("created new user", slog.String("login", u.Login))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, u)
}
