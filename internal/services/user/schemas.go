package user

import (
	"context"
	"errors"

	"github.com/magabrotheeeer/user-accounts/internal/lib/password"
	"github.com/magabrotheeeer/user-accounts/internal/models"
	"github.com/magabrotheeeer/user-accounts/internal/schema"
	"github.com/magabrotheeeer/user-accounts/internal/storage/repository"
)

// ExistsChecker проверяет занятость login или email в хранилище.
// Внедряется в межполевую проверку схемы вместо глобального соединения.
type ExistsChecker interface {
	UserExists(ctx context.Context, login, email string, excludeID int64) (bool, error)
}

// LoginFinder ищет пользователя по login для проверки учётных данных.
type LoginFinder interface {
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
}

func userFields() []schema.Field {
	return []schema.Field{
		schema.Int("id", schema.DumpOnly()),
		schema.String("login", schema.Required(), schema.MinLength(4)),
		schema.String("name", schema.Required(), schema.MinLength(2)),
		schema.Email("email", schema.Required(), schema.MinLength(5)),
		schema.String("password", schema.Required()),
		schema.Boolean("is_active", schema.Required()),
		schema.Boolean("is_admin"),
		schema.DateTime("created_at", schema.DumpOnly()),
		schema.DateTime("updated_at", schema.DumpOnly()),
	}
}

// RegistrationSchema описывает полезную нагрузку регистрации,
// включая проверку занятости login и email.
func RegistrationSchema(db ExistsChecker) *schema.Schema {
	return schema.New(userFields()...).WithChecks(userExistsCheck(db, 0))
}

// UpdateSchema описывает полезную нагрузку частичного обновления.
// Проверка занятости исключает обновляемую запись по excludeID.
func UpdateSchema(db ExistsChecker, excludeID int64) *schema.Schema {
	return schema.New(userFields()...).WithChecks(userExistsCheck(db, excludeID))
}

// LoginSchema описывает полезную нагрузку входа: существование пользователя
// и соответствие пароля проверяются на уровне схемы.
func LoginSchema(db LoginFinder) *schema.Schema {
	return schema.New(
		schema.String("login", schema.Required()),
		schema.String("password", schema.Required()),
	).WithChecks(credentialsCheck(db))
}

func userExistsCheck(db ExistsChecker, excludeID int64) schema.Check {
	return func(ctx context.Context, data map[string]any) (string, error) {
		login, _ := data["login"].(string)
		email, _ := data["email"].(string)
		if login == "" && email == "" {
			return "", nil
		}
		exists, err := db.UserExists(ctx, login, email, excludeID)
		if err != nil {
			return "", err
		}
		if exists {
			return UserAlreadyExist, nil
		}
		return "", nil
	}
}

func credentialsCheck(db LoginFinder) schema.Check {
	return func(ctx context.Context, data map[string]any) (string, error) {
		login, ok := data["login"].(string)
		if !ok || login == "" {
			return "", nil
		}
		u, err := db.GetUserByLogin(ctx, login)
		if errors.Is(err, repository.ErrUserNotFound) {
			return InvalidLogin, nil
		}
		if err != nil {
			return "", err
		}
		rawPassword, ok := data["password"].(string)
		if !ok {
			return "", nil
		}
		if err := password.CompareHash(u.PasswordHash, rawPassword); err != nil {
			return InvalidPassword, nil
		}
		return "", nil
	}
}
