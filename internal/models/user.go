// Package models содержит доменную модель пользователя системы.
// Структура используется в бизнес‑логике, при работе с хранилищем
// и при сериализации ответов API.
package models

import "time"

// User представляет учётную запись пользователя системы.
// Хэш пароля никогда не попадает в сериализованный ответ.
type User struct {
	ID           int64     `json:"id"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	IsActive     bool      `json:"is_active"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
