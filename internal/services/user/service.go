// Package user содержит логику бизнес-уровня для работы с учётными записями:
// регистрацию, авторизацию, выборку, частичное обновление и удаление.
package user

import (
	"context"
	"errors"

	"github.com/magabrotheeeer/user-accounts/internal/lib/jwt"
	"github.com/magabrotheeeer/user-accounts/internal/lib/password"
	"github.com/magabrotheeeer/user-accounts/internal/models"
	"github.com/magabrotheeeer/user-accounts/internal/schema"
)

// ErrInvalidCredentials возвращается при несовпадении пароля.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Repository описывает контракт для работы с пользователями в базе данных.
type Repository interface {
	// CreateUser сохраняет нового пользователя и возвращает созданную запись.
	CreateUser(ctx context.Context, user models.User) (*models.User, error)

	// GetUserByID возвращает пользователя по идентификатору.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)

	// GetUserByLogin возвращает пользователя по login или ошибку, если не найден.
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)

	// ListAllUsers возвращает всех пользователей в порядке создания.
	ListAllUsers(ctx context.Context) ([]*models.User, error)

	// ListUsers возвращает страницу пользователей в порядке создания.
	ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error)

	// UpdateUser перезаписывает изменяемые поля и возвращает обновлённую запись.
	UpdateUser(ctx context.Context, user models.User) (*models.User, error)

	// DeleteUser удаляет пользователя по идентификатору.
	DeleteUser(ctx context.Context, id int64) error

	// UserExists сообщает, занят ли login или email другой записью.
	UserExists(ctx context.Context, login, email string, excludeID int64) (bool, error)
}

// Service отвечает за операции над учётными записями и выдачу токенов.
type Service struct {
	repo     Repository
	jwtMaker jwt.Maker
}

// NewService создает новый экземпляр Service.
func NewService(repo Repository, jwtMaker jwt.Maker) *Service {
	return &Service{
		repo:     repo,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля.
func (s *Service) Register(ctx context.Context, login, rawPassword, name, email string,
	isActive, isAdmin bool) (*models.User, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return nil, err
	}
	u := models.User{
		Login:        login,
		PasswordHash: hashed,
		Name:         name,
		Email:        email,
		IsActive:     isActive,
		IsAdmin:      isAdmin,
	}
	return s.repo.CreateUser(ctx, u)
}

// Login проверяет пароль пользователя и выдаёт подписанный токен доступа.
func (s *Service) Login(ctx context.Context, login, rawPassword string) (string, error) {
	u, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil {
		return "", err
	}
	if err := password.CompareHash(u.PasswordHash, rawPassword); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.jwtMaker.GenerateToken(u.ID)
}

// GetByID возвращает пользователя по идентификатору.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

// ListAll возвращает полный список пользователей в порядке создания.
func (s *Service) ListAll(ctx context.Context) ([]*models.User, error) {
	return s.repo.ListAllUsers(ctx)
}

// List возвращает страницу пользователей в порядке создания.
func (s *Service) List(ctx context.Context, limit, offset int) ([]*models.User, error) {
	return s.repo.ListUsers(ctx, limit, offset)
}

// Update применяет к записи присутствующие в data поля. Пароль, если передан,
// хэшируется заново; updated_at обновляется хранилищем.
func (s *Service) Update(ctx context.Context, id int64, data map[string]any) (*models.User, error) {
	u, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v, ok := data["login"].(string); ok {
		u.Login = v
	}
	if v, ok := data["name"].(string); ok {
		u.Name = v
	}
	if v, ok := data["email"].(string); ok {
		u.Email = v
	}
	if v, ok := data["is_active"].(bool); ok {
		u.IsActive = v
	}
	if v, ok := data["is_admin"].(bool); ok {
		u.IsAdmin = v
	}
	if v, ok := data["password"].(string); ok {
		hashed, err := password.GetHash(v)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hashed
	}
	return s.repo.UpdateUser(ctx, *u)
}

// Delete удаляет пользователя по идентификатору.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteUser(ctx, id)
}

// UpdateSchema возвращает схему частичного обновления, исключающую
// обновляемую запись из проверки занятости login и email.
func (s *Service) UpdateSchema(excludeID int64) *schema.Schema {
	return UpdateSchema(s.repo, excludeID)
}
