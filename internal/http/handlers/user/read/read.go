// Package read реализует HTTP-обработчик получения пользователя по ID.
//
// Отсутствующая запись — мягкое состояние: возвращается статус 200
// с сообщением, а не ошибка HTTP.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/user-accounts/internal/http/response"
	"github.com/magabrotheeeer/user-accounts/internal/lib/sl"
	"github.com/magabrotheeeer/user-accounts/internal/models"
	userservice "github.com/magabrotheeeer/user-accounts/internal/services/user"
	"github.com/magabrotheeeer/user-accounts/internal/storage/repository"
)

// Handler обрабатывает запросы на получение пользователя по идентификатору.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения пользователя.
type Service interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP обрабатывает HTTP-запрос на получение пользователя по ID.
//
// @Summary Профиль пользователя по ID
// @Tags users
// @Produce json
// @Param   id path int true "ID пользователя"
// @Success 200 {object} models.User
// @Router /users/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.read.New"

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

	u, err := h.service.GetByID(r.Context(), id)
	if errors.Is(err, repository.ErrUserNotFound) {
		log.Info("user not found", slog.Int64("id", id))
		render.JSON(w, r, response.Message(userservice.UserNotFound))
		return
	}
	if err != nil {
		log.Error("failed to read user", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Message(response.InternalError))
		return
	}

	log.Info("success to read user", slog.Int64("id", u.ID))
	render.JSON(w, r, u)
}
