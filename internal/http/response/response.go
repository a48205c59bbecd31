// Package response содержит вспомогательные функции и тексты сообщений
// для формирования JSON‑ответов HTTP‑обработчиков. Успешная полезная
// нагрузка сериализуется как есть (объект или массив записей); сообщения
// и карты ошибок валидации публикуются под зарезервированным ключом message.
package response

import "github.com/magabrotheeeer/user-accounts/internal/schema"

// Тексты сообщений конвейера обработки запроса.
const (
	MissingAuthHeader    = "Missing authorization header."
	InvalidToken         = "Invalid token."
	WrongRequestDataType = "Wrong request data type."
	EmptyPayload         = "Empty payload."
	MissedResourceID     = "Missed resource id."
	SomethingWentWrong   = "Something went wrong. Please check your input data, " +
		"maybe it's incorrect."
	InternalError = "Internal server error."
)

// Message возвращает тело ответа с единственным сообщением.
func Message(msg string) map[string]any {
	return map[string]any{"message": msg}
}

// ValidationErrors возвращает тело ответа с картой ошибок валидации,
// сгруппированных по именам полей.
func ValidationErrors(errs schema.Errors) map[string]any {
	return map[string]any{"message": errs}
}

// Empty возвращает пустой объект для операций без полезной нагрузки.
func Empty() map[string]any {
	return map[string]any{}
}
