// Package list реализует HTTP-обработчик списка пользователей.
//
// Пагинация включается только когда оба параметра запроса page и limit —
// синтаксически корректные положительные целые; иначе возвращается полный
// список. Пустой результат — не ошибка: возвращается статус 200 с сообщением.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/user-accounts/internal/http/response"
	"github.com/magabrotheeeer/user-accounts/internal/lib/sl"
	"github.com/magabrotheeeer/user-accounts/internal/models"
	userservice "github.com/magabrotheeeer/user-accounts/internal/services/user"
)

// Handler обрабатывает запросы списка пользователей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики выборки пользователей.
type Service interface {
	List(ctx context.Context, limit, offset int) ([]*models.User, error)
	ListAll(ctx context.Context) ([]*models.User, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.list.New"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	page, pageOK := positiveInt(r.URL.Query().Get("page"))
	limit, limitOK := positiveInt(r.URL.Query().Get("limit"))

	var users []*models.User
	var err error
	if pageOK && limitOK {
		users, err = h.service.List(r.Context(), limit, (page-1)*limit)
	} else {
		users, err = h.service.ListAll(r.Context())
	}
	if err != nil {
		log.Error("failed to list users", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Message(response.InternalError))
		return
	}

	if len(users) == 0 {
		log.Info("no users found")
		render.JSON(w, r, response.Message(userservice.UsersNotFound))
		return
	}

	log.Info("list users", slog.Int("count", len(users)))
	render.JSON(w, r, users)
}

// positiveInt разбирает строку из десятичных цифр в положительное целое.
func positiveInt(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
