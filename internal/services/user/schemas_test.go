package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/user-accounts/internal/lib/password"
	"github.com/magabrotheeeer/user-accounts/internal/models"
	"github.com/magabrotheeeer/user-accounts/internal/schema"
	"github.com/magabrotheeeer/user-accounts/internal/storage/repository"
)

func registrationPayload() map[string]any {
	return map[string]any{
		"login":     "user_1",
		"name":      "Test User",
		"email":     "user_1@powercode.us",
		"password":  "123",
		"is_active": true,
	}
}

func TestRegistrationSchema_OK(t *testing.T) {
	repo := new(RepoMock)
	repo.On("UserExists", mock.Anything, "user_1", "user_1@powercode.us", int64(0)).
		Return(false, nil)

	errs, err := RegistrationSchema(repo).Validate(context.Background(), registrationPayload())
	require.NoError(t, err)
	assert.Nil(t, errs)
}

func TestRegistrationSchema_UserAlreadyExist(t *testing.T) {
	repo := new(RepoMock)
	repo.On("UserExists", mock.Anything, "user_1", "user_1@powercode.us", int64(0)).
		Return(true, nil)

	errs, err := RegistrationSchema(repo).Validate(context.Background(), registrationPayload())
	require.NoError(t, err)
	assert.Equal(t, schema.Errors{
		schema.SchemaLevelKey: {"User already exist."},
	}, errs)
}

func TestRegistrationSchema_MissingLogin(t *testing.T) {
	repo := new(RepoMock)
	repo.On("UserExists", mock.Anything, "", "user_1@powercode.us", int64(0)).
		Return(false, nil)

	data := registrationPayload()
	delete(data, "login")

	errs, err := RegistrationSchema(repo).Validate(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, schema.Errors{
		"login": {"Missing data for required field."},
	}, errs)
}

func TestUpdateSchema_ExcludesOwnRecord(t *testing.T) {
	repo := new(RepoMock)
	repo.On("UserExists", mock.Anything, "user_1", "", int64(7)).
		Return(false, nil)

	errs, err := UpdateSchema(repo, 7).ValidatePartial(context.Background(),
		map[string]any{"login": "user_1"})
	require.NoError(t, err)
	assert.Nil(t, errs)
	repo.AssertExpectations(t)
}

func TestUpdateSchema_SkipsCheckWithoutLoginAndEmail(t *testing.T) {
	repo := new(RepoMock)

	errs, err := UpdateSchema(repo, 7).ValidatePartial(context.Background(),
		map[string]any{"name": "New Name"})
	require.NoError(t, err)
	assert.Nil(t, errs)
	repo.AssertNotCalled(t, "UserExists", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginSchema_OK(t *testing.T) {
	hash, err := password.GetHash("secret123")
	require.NoError(t, err)

	repo := new(RepoMock)
	repo.On("GetUserByLogin", mock.Anything, "user_1").
		Return(&models.User{ID: 1, Login: "user_1", PasswordHash: hash}, nil)

	errs, err := LoginSchema(repo).Validate(context.Background(),
		map[string]any{"login": "user_1", "password": "secret123"})
	require.NoError(t, err)
	assert.Nil(t, errs)
}

func TestLoginSchema_InvalidLogin(t *testing.T) {
	repo := new(RepoMock)
	repo.On("GetUserByLogin", mock.Anything, "ghost").
		Return(nil, repository.ErrUserNotFound)

	errs, err := LoginSchema(repo).Validate(context.Background(),
		map[string]any{"login": "ghost", "password": "secret123"})
	require.NoError(t, err)
	assert.Equal(t, schema.Errors{
		schema.SchemaLevelKey: {"Invalid login."},
	}, errs)
}

func TestLoginSchema_InvalidPassword(t *testing.T) {
	hash, err := password.GetHash("secret123")
	require.NoError(t, err)

	repo := new(RepoMock)
	repo.On("GetUserByLogin", mock.Anything, "user_1").
		Return(&models.User{ID: 1, Login: "user_1", PasswordHash: hash}, nil)

	errs, err := LoginSchema(repo).Validate(context.Background(),
		map[string]any{"login": "user_1", "password": "wrong"})
	require.NoError(t, err)
	assert.Equal(t, schema.Errors{
		schema.SchemaLevelKey: {"Invalid password."},
	}, errs)
}

func TestLoginSchema_MissingPasswordStillChecksLogin(t *testing.T) {
	repo := new(RepoMock)
	repo.On("GetUserByLogin", mock.Anything, "ghost").
		Return(nil, repository.ErrUserNotFound)

	errs, err := LoginSchema(repo).Validate(context.Background(),
		map[string]any{"login": "ghost"})
	require.NoError(t, err)
	assert.Equal(t, schema.Errors{
		"password":            {"Missing data for required field."},
		schema.SchemaLevelKey: {"Invalid login."},
	}, errs)
}
