package middlewarectx

import (
	"context"
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/user-accounts/internal/http/response"
	"github.com/magabrotheeeer/user-accounts/internal/lib/sl"
)

// JSONPayload возвращает middleware, которое для записывающих методов
// проверяет тип содержимого и разбирает тело запроса в map[string]any.
//
// Тип содержимого, отличный от application/json, отклоняется с сообщением
// "Wrong request data type."; пустое или неразбираемое тело — с сообщением
// "Empty payload.". Разобранная нагрузка кладётся в контекст запроса.
func JSONPayload(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.JSONPayload"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
			default:
				next.ServeHTTP(w, r)
				return
			}

			mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
			if err != nil || mediaType != "application/json" {
				log.Error("wrong request data type",
					slog.String("content_type", r.Header.Get("Content-Type")))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Message(response.WrongRequestDataType))
				return
			}

			var data map[string]any
			if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
				log.Error("failed to decode request body", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Message(response.EmptyPayload))
				return
			}
			if len(data) == 0 {
				log.Error("empty payload")
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Message(response.EmptyPayload))
				return
			}

			ctx := context.WithValue(r.Context(), PayloadKey, data)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
