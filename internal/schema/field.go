package schema

import (
	"encoding/json"
	"math"
	"unicode/utf8"

	"github.com/go-playground/validator"
)

var emailValidate = validator.New()

// Rule проверяет приведённое значение поля и возвращает текст нарушения
// либо пустую строку. Все правила поля выполняются, их сообщения накапливаются.
type Rule func(value any) string

// Field описывает одно объявленное поле схемы: тип, обязательность и правила.
type Field struct {
	name     string
	required bool
	dumpOnly bool
	cast     func(value any) (any, string)
	rules    []Rule
}

// Option настраивает объявленное поле.
type Option func(*Field)

// Required помечает поле обязательным: его отсутствие во входных данных
// является ошибкой (кроме частичного режима).
func Required() Option {
	return func(f *Field) { f.required = true }
}

// DumpOnly помечает поле как доступное только для сериализации: оно считается
// объявленным, но при загрузке входных данных игнорируется.
func DumpOnly() Option {
	return func(f *Field) { f.dumpOnly = true }
}

// MinLength добавляет правило минимальной длины строки.
func MinLength(min int) Option {
	return func(f *Field) {
		f.rules = append(f.rules, func(value any) string {
			s, ok := value.(string)
			if !ok {
				return ""
			}
			if utf8.RuneCountInString(s) < min {
				return MsgShorterThanMin(min)
			}
			return ""
		})
	}
}

// String объявляет строковое поле.
func String(name string, opts ...Option) Field {
	f := Field{name: name, cast: castString}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// Email объявляет строковое поле с проверкой синтаксиса электронной почты.
// Правило синтаксиса выполняется раньше остальных правил поля.
func Email(name string, opts ...Option) Field {
	f := Field{name: name, cast: castString}
	f.rules = append(f.rules, func(value any) string {
		s, ok := value.(string)
		if !ok {
			return ""
		}
		if err := emailValidate.Var(s, "email"); err != nil {
			return MsgNotEmail
		}
		return ""
	})
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// Boolean объявляет логическое поле.
func Boolean(name string, opts ...Option) Field {
	f := Field{name: name, cast: castBool}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// Int объявляет целочисленное поле.
func Int(name string, opts ...Option) Field {
	f := Field{name: name, cast: castInt}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// DateTime объявляет поле метки времени. Используется для объявления
// сериализуемых полей модели; при загрузке принимает строковое значение.
func DateTime(name string, opts ...Option) Field {
	f := Field{name: name, cast: castString}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

func castString(value any) (any, string) {
	s, ok := value.(string)
	if !ok {
		return nil, MsgNotString
	}
	return s, ""
}

func castBool(value any) (any, string) {
	b, ok := value.(bool)
	if !ok {
		return nil, MsgNotBoolean
	}
	return b, ""
}

func castInt(value any) (any, string) {
	switch v := value.(type) {
	case int:
		return int64(v), ""
	case int64:
		return v, ""
	case float64:
		// JSON-числа декодируются в float64
		if v != math.Trunc(v) {
			return nil, MsgNotInteger
		}
		return int64(v), ""
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return nil, MsgNotInteger
		}
		return n, ""
	default:
		return nil, MsgNotInteger
	}
}
