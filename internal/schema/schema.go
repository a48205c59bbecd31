// Package schema реализует декларативную валидацию входных данных запроса.
//
// Схема описывает допустимую форму полезной нагрузки: набор именованных полей
// с типами и ограничениями плюс межполевые проверки. Результат валидации —
// карта ошибок по именам полей; нарушения уровня схемы публикуются под ключом
// SchemaLevelKey. Проверки, которым нужен доступ к хранилищу, получают его
// через внедрённый интерфейс, а не через глобальное соединение.
package schema

import (
	"context"
	"sort"
)

// Check межполевая проверка схемы. Возвращает текст нарушения (пустая строка,
// если нарушения нет) и ошибку инфраструктуры, прерывающую валидацию.
// Проверка сама охраняет себя от отсутствующих или невалидных полей.
type Check func(ctx context.Context, data map[string]any) (string, error)

// Schema декларативное описание допустимой формы полезной нагрузки.
type Schema struct {
	fields map[string]Field
	order  []string
	checks []Check
}

// New собирает схему из объявленных полей.
func New(fields ...Field) *Schema {
	s := &Schema{fields: make(map[string]Field, len(fields))}
	for _, f := range fields {
		s.fields[f.name] = f
		s.order = append(s.order, f.name)
	}
	return s
}

// WithChecks добавляет межполевые проверки и возвращает ту же схему.
func (s *Schema) WithChecks(checks ...Check) *Schema {
	s.checks = append(s.checks, checks...)
	return s
}

// Validate выполняет полную валидацию: обязательные поля должны присутствовать.
// Пустая карта ошибок (nil) означает успех.
func (s *Schema) Validate(ctx context.Context, data map[string]any) (Errors, error) {
	return s.validate(ctx, data, false)
}

// ValidatePartial выполняет частичную валидацию (используется при обновлении):
// обязательность отсутствующих полей не проверяется, все остальные ограничения
// для присутствующих полей сохраняются.
func (s *Schema) ValidatePartial(ctx context.Context, data map[string]any) (Errors, error) {
	return s.validate(ctx, data, true)
}

func (s *Schema) validate(ctx context.Context, data map[string]any, partial bool) (Errors, error) {
	errs := Errors{}

	// Проверка лишних полей выполняется раньше любых других: первое же
	// необъявленное поле завершает валидацию.
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, ok := s.fields[k]; !ok {
			errs.add(SchemaLevelKey, MsgInvalidField(k))
			return errs, nil
		}
	}

	for _, name := range s.order {
		f := s.fields[name]
		if f.dumpOnly {
			continue
		}
		value, present := data[name]
		if !present {
			if f.required && !partial {
				errs.add(name, MsgMissingRequired)
			}
			continue
		}
		cast, msg := f.cast(value)
		if msg != "" {
			errs.add(name, msg)
			continue
		}
		for _, rule := range f.rules {
			if m := rule(cast); m != "" {
				errs.add(name, m)
			}
		}
	}

	// Межполевые проверки выполняются после пополевых и охраняют себя сами,
	// поэтому запускаются даже при наличии ошибок отдельных полей.
	for _, check := range s.checks {
		msg, err := check(ctx, data)
		if err != nil {
			return nil, err
		}
		if msg != "" {
			errs.add(SchemaLevelKey, msg)
		}
	}

	if len(errs) == 0 {
		return nil, nil
	}
	return errs, nil
}
