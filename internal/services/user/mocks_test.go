package user

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/user-accounts/internal/models"
)

type RepoMock struct {
	mock.Mock
}

func (m *RepoMock) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *RepoMock) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *RepoMock) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	args := m.Called(ctx, login)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *RepoMock) ListAllUsers(ctx context.Context) ([]*models.User, error) {
	args := m.Called(ctx)
	us, _ := args.Get(0).([]*models.User)
	return us, args.Error(1)
}

func (m *RepoMock) ListUsers(ctx context.Context, limit, offset int) ([]*models.User, error) {
	args := m.Called(ctx, limit, offset)
	us, _ := args.Get(0).([]*models.User)
	return us, args.Error(1)
}

func (m *RepoMock) UpdateUser(ctx context.Context, user models.User) (*models.User, error) {
	args := m.Called(ctx, user)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *RepoMock) DeleteUser(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *RepoMock) UserExists(ctx context.Context, login, email string, excludeID int64) (bool, error) {
	args := m.Called(ctx, login, email, excludeID)
	return args.Bool(0), args.Error(1)
}
