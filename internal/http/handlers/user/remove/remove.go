// Package remove реализует HTTP-обработчик удаления пользователя.
//
// Удаление собственной учётной записи отклоняется до проверки существования
// цели. Отсутствующая запись — мягкое состояние со статусом 200.
package remove

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
	userservice "github.com/magabrotheeeer/user-accounts/internal/services/user"
	"github.com/magabrotheeeer/user-accounts/internal/storage/repository"
)

// Handler обрабатывает запросы на удаление пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики удаления пользователя.
type Service interface {
	Delete(ctx context.Context, id int64) error
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.remove.New"

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

	cur := middlewarectx.CurrentUser(r.Context())
	if cur == nil {
		log.Error("user not found in context")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Message(response.InvalidToken))
		return
	}
	if cur.ID == id {
		log.Error("attempt to delete own account", slog.Int64("id", id))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Message(userservice.DeleteYourselfValidation))
		return
	}

	err = h.service.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrUserNotFound) {
		log.Info("user not found", slog.Int64("id", id))
		render.JSON(w, r, response.Message(userservice.UserNotFound))
		return
	}
	if err != nil {
		log.Error("failed to delete user", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Message(response.InternalError))
		return
	}

	log.Info("user deleted", slog.Int64("id", id))
	render.JSON(w, r, response.Message(userservice.UserWasDeleted))
}
