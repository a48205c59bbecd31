// Package update реализует HTTP-обработчик частичного обновления пользователя.
//
// Валидация выполняется в частичном режиме: отсутствующие поля не обязательны,
// присутствующие проверяются полностью. Проверка занятости login и email
// исключает обновляемую запись.
package update

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/user-accounts/internal/http/middlewarectx"
	"github.com/magabrotheeeer/user-accounts/internal/http/response"
	"github.com/magabrotheeeer/user-accounts/internal/lib/sl"
	"github.com/magabrotheeeer/user-accounts/internal/models"
	"github.com/magabrotheeeer/user-accounts/internal/schema"
	userservice "github.com/magabrotheeeer/user-accounts/internal/services/user"
	"github.com/magabrotheeeer/user-accounts/internal/storage/repository"
)

// Handler обрабатывает запросы частичного обновления пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики обновления пользователя.
type Service interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, id int64, data map[string]any) (*models.User, error)
	UpdateSchema(excludeID int64) *schema.Schema
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.update.New"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Error("failed to decode id from url", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Message(response.MissedResourceID))
		return
	}

	if _, err := h.service.GetByID(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			log.Info("user not found", slog.Int64("id", id))
			render.JSON(w, r, response.Message(userservice.UserNotFound))
			return
		}
		log.Error("failed to read user", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Message(response.InternalError))
		return
	}

	data := middlewarectx.Payload(r.Context())

	errs, err := h.service.UpdateSchema(id).ValidatePartial(r.Context(), data)
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

	u, err := h.service.Update(r.Context(), id, data)
	if errors.Is(err, repository.ErrAlreadyExists) {
		// Гонка: уникальность нарушена после успешной проверки схемы.
		log.Error("unique constraint violated", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Message(response.SomethingWentWrong))
		return
	}
	if errors.Is(err, repository.ErrUserNotFound) {
		log.Info("user not found", slog.Int64("id", id))
		render.JSON(w, r, response.Message(userservice.UserNotFound))
		return
	}
	if err != nil {
		log.Error("failed to update user", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Message(response.InternalError))
		return
	}

	log.Info("success to update user", slog.Int64("id", u.ID))
	render.JSON(w, r, u)
}
