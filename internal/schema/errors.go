package schema

import "fmt"

// SchemaLevelKey ключ, под которым в карте ошибок публикуются нарушения
// уровня всей схемы (межполевые проверки и недопустимые поля).
const SchemaLevelKey = "_schema"

// Тексты ошибок валидации.
const (
	MsgMissingRequired = "Missing data for required field."
	MsgNotString       = "Not a valid string."
	MsgNotBoolean      = "Not a valid boolean."
	MsgNotInteger      = "Not a valid integer."
	MsgNotEmail        = "Not a valid email address."
)

// MsgShorterThanMin возвращает текст ошибки для строки короче минимальной длины.
func MsgShorterThanMin(min int) string {
	return fmt.Sprintf("Shorter than minimum length %d.", min)
}

// MsgInvalidField возвращает текст ошибки для необъявленного поля.
func MsgInvalidField(name string) string {
	return fmt.Sprintf("Invalid field: %s.", name)
}

// Errors карта ошибок валидации: имя поля (или SchemaLevelKey) — упорядоченный
// список сообщений. Несколько одновременных нарушений одного поля сохраняются все.
type Errors map[string][]string

func (e Errors) add(key, msg string) {
	e[key] = append(e[key], msg)
}
