package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/magabrotheeeer/user-accounts/internal/models"
)

const uniqueViolationCode = "23505"

func wrapStorageErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return fmt.Errorf("%s: %w", op, ErrAlreadyExists)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// CreateUser сохраняет нового пользователя в базу данных и возвращает запись
// с присвоенным идентификатором и метками времени.
func (s *Storage) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (login, password_hash, name, email, is_active, is_admin)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at;`
	u := user
	if err := s.DB.QueryRowContext(ctx, query,
		user.Login, user.PasswordHash, user.Name, user.Email,
		user.IsActive, user.IsAdmin).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, wrapStorageErr(op, err)
	}
	return &u, nil
}

// GetUserByID возвращает пользователя по его идентификатору.
func (s *Storage) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage.GetUserByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, login, password_hash, name, email, is_active, is_admin,
			      created_at, updated_at
			  FROM users
			  WHERE id = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, id)
	if err := row.Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Name, &u.Email,
		&u.IsActive, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, wrapStorageErr(op, err)
	}
	return u, nil
}

// GetUserByLogin возвращает пользователя по его login.
func (s *Storage) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	const op = "storage.GetUserByLogin"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, login, password_hash, name, email, is_active, is_admin,
			      created_at, updated_at
			  FROM users
			  WHERE login = $1`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query, login)
	if err := row.Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Name, &u.Email,
		&u.IsActive, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, wrapStorageErr(op, err)
	}
	return u, nil
}

// ListAllUsers возвращает всех пользователей в порядке создания.
func (s *Storage) ListAllUsers(ctx context.Context) ([]*models.User, error) {
	const op = "storage.ListAllUsers"
	query := `SELECT id, login, password_hash, name, email, is_active, is_admin,
			      created_at, updated_at
			  FROM users
			  ORDER BY id`
	return s.listUsers(ctx, op, query)
}

// ListUsers возвращает страницу пользователей в порядке создания.
func (s *Storage) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	const op = "storage.ListUsers"
	query := `SELECT id, login, password_hash, name, email, is_active, is_admin,
			      created_at, updated_at
			  FROM users
			  ORDER BY id
			  LIMIT $1 OFFSET $2`
	return s.listUsers(ctx, op, query, limit, offset)
}

func (s *Storage) listUsers(ctx context.Context, op, query string, args ...any) ([]*models.User, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.User
	for rows.Next() {
		u := &models.User{}
		if err = rows.Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Name, &u.Email,
			&u.IsActive, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateUser перезаписывает изменяемые поля пользователя и обновляет updated_at.
// Возвращает обновлённую запись.
func (s *Storage) UpdateUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.UpdateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `UPDATE users
			  SET login = $1, password_hash = $2, name = $3, email = $4,
			      is_active = $5, is_admin = $6, updated_at = now()
			  WHERE id = $7
			  RETURNING id, login, password_hash, name, email, is_active, is_admin,
			      created_at, updated_at;`
	u := &models.User{}
	row := s.DB.QueryRowContext(ctx, query,
		user.Login, user.PasswordHash, user.Name, user.Email,
		user.IsActive, user.IsAdmin, user.ID)
	if err := row.Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Name, &u.Email,
		&u.IsActive, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, wrapStorageErr(op, err)
	}
	return u, nil
}

// DeleteUser удаляет пользователя по идентификатору.
func (s *Storage) DeleteUser(ctx context.Context, id int64) error {
	const op = "storage.DeleteUser"
	select {
	case <-ctx.Done():
		return fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	res, err := s.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: %w", op, ErrUserNotFound)
	}
	return nil
}

// UserExists сообщает, занят ли login или email другой записью.
// excludeID исключает из проверки обновляемую запись; ноль ничего не исключает.
func (s *Storage) UserExists(ctx context.Context, login, email string, excludeID int64) (bool, error) {
	const op = "storage.UserExists"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT EXISTS (
			      SELECT 1 FROM users
			      WHERE (login = $1 OR email = $2) AND id <> $3
			  )`
	var exists bool
	if err := s.DB.QueryRowContext(ctx, query, login, email, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}
