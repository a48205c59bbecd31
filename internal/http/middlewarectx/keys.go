// Package middlewarectx содержит HTTP middleware конвейера обработки запроса:
// аутентификацию по токену доступа, разбор JSON‑нагрузки для записывающих
// методов и ограничение частоты запросов. Результаты работы middleware
// передаются обработчикам через контекст запроса.
package middlewarectx

import (
	"context"

	"github.com/magabrotheeeer/user-accounts/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// UserKey — ключ аутентифицированного пользователя в контексте.
	UserKey Key = "user"
	// PayloadKey — ключ разобранной JSON‑нагрузки в контексте.
	PayloadKey Key = "payload"
)

// CurrentUser возвращает аутентифицированного пользователя из контекста.
func CurrentUser(ctx context.Context) *models.User {
	u, _ := ctx.Value(UserKey).(*models.User)
	return u
}

// Payload возвращает разобранную JSON‑нагрузку из контекста.
func Payload(ctx context.Context) map[string]any {
	data, _ := ctx.Value(PayloadKey).(map[string]any)
	return data
}
