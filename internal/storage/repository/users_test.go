package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/user-accounts/internal/models"
)

func setupTestStorage(t *testing.T) (*Storage, func()) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err, "failed to start container")

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(dsn)
	require.NoError(t, err, "failed to create storage")

	_, err = storage.DB.Exec(`
        CREATE TABLE users (
            id BIGSERIAL PRIMARY KEY,
            login VARCHAR(50) NOT NULL UNIQUE,
            password_hash VARCHAR(200),
            name VARCHAR(100),
            email VARCHAR(100) NOT NULL UNIQUE,
            is_active BOOLEAN DEFAULT FALSE,
            is_admin BOOLEAN DEFAULT FALSE,
            created_at TIMESTAMPTZ DEFAULT now(),
            updated_at TIMESTAMPTZ DEFAULT now()
        );
    `)
	require.NoError(t, err, "failed to create users table")

	cleanup := func() {
		_ = storage.DB.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return storage, cleanup
}

func testUser() models.User {
	suffix := uuid.New().String()[:8]
	return models.User{
		Login:        "user_" + suffix,
		PasswordHash: "hashedpassword",
		Name:         "Test User",
		Email:        fmt.Sprintf("user_%s@powercode.us", suffix),
		IsActive:     true,
	}
}

func TestStorage_CreateAndGetUser(t *testing.T) {
	storage, cleanup := setupTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	created, err := storage.CreateUser(ctx, testUser())
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())
	require.False(t, created.UpdatedAt.IsZero())

	got, err := storage.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Login, got.Login)
	assert.Equal(t, created.Email, got.Email)
	assert.True(t, got.IsActive)
	assert.False(t, got.IsAdmin)

	byLogin, err := storage.GetUserByLogin(ctx, created.Login)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byLogin.ID)
}

func TestStorage_GetUser_NotFound(t *testing.T) {
	storage, cleanup := setupTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	_, err := storage.GetUserByID(ctx, 424242)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = storage.GetUserByLogin(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestStorage_CreateUser_DuplicateLogin(t *testing.T) {
	storage, cleanup := setupTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	u := testUser()
	_, err := storage.CreateUser(ctx, u)
	require.NoError(t, err)

	dup := testUser()
	dup.Login = u.Login
	_, err = storage.CreateUser(ctx, dup)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	dup = testUser()
	dup.Email = u.Email
	_, err = storage.CreateUser(ctx, dup)
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestStorage_ListUsers(t *testing.T) {
	storage, cleanup := setupTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	var ids []int64
	for range 5 {
		created, err := storage.CreateUser(ctx, testUser())
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	all, err := storage.ListAllUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i, u := range all {
		assert.Equal(t, ids[i], u.ID, "users should come in creation order")
	}

	page, err := storage.ListUsers(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, ids[2], page[0].ID)
	assert.Equal(t, ids[3], page[1].ID)

	tail, err := storage.ListUsers(ctx, 10, 4)
	require.NoError(t, err)
	require.Len(t, tail, 1)
	assert.Equal(t, ids[4], tail[0].ID)
}

func TestStorage_UpdateUser(t *testing.T) {
	storage, cleanup := setupTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	created, err := storage.CreateUser(ctx, testUser())
	require.NoError(t, err)

	created.Name = "Updated Name"
	created.IsAdmin = true

	updated, err := storage.UpdateUser(ctx, *created)
	require.NoError(t, err)
	assert.Equal(t, "Updated Name", updated.Name)
	assert.True(t, updated.IsAdmin)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestStorage_UpdateUser_NotFound(t *testing.T) {
	storage, cleanup := setupTestStorage(t)
	defer cleanup()

	u := testUser()
	u.ID = 424242

	_, err := storage.UpdateUser(context.Background(), u)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestStorage_DeleteUser(t *testing.T) {
	storage, cleanup := setupTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	created, err := storage.CreateUser(ctx, testUser())
	require.NoError(t, err)

	require.NoError(t, storage.DeleteUser(ctx, created.ID))

	err = storage.DeleteUser(ctx, created.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = storage.GetUserByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestStorage_UserExists(t *testing.T) {
	storage, cleanup := setupTestStorage(t)
	defer cleanup()

	ctx := context.Background()

	created, err := storage.CreateUser(ctx, testUser())
	require.NoError(t, err)

	exists, err := storage.UserExists(ctx, created.Login, "", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = storage.UserExists(ctx, "", created.Email, 0)
	require.NoError(t, err)
	assert.True(t, exists)

	// Собственная запись исключается из проверки занятости.
	exists, err = storage.UserExists(ctx, created.Login, created.Email, created.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = storage.UserExists(ctx, "ghost", "ghost@powercode.us", 0)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStorage_ContextCancelled(t *testing.T) {
	storage, cleanup := setupTestStorage(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storage.GetUserByID(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
