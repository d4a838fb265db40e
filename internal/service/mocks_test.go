package service

import (
	"BrainDump/internal/model"
	"BrainDump/internal/repo"
	"context"

	"github.com/stretchr/testify/mock"
)

// моки репозиториев для тестов сервисов

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockContentRepo struct{ mock.Mock }

func (m *mockContentRepo) Create(ctx context.Context, c *model.Content) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockContentRepo) ListByOwner(ctx context.Context, userID int64) ([]model.Content, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Content); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockContentRepo) DeleteByIDAndOwner(ctx context.Context, userID int64, id string) (int64, error) {
	args := m.Called(ctx, userID, id)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.ContentRepository = (*mockContentRepo)(nil)

type mockLinkRepo struct{ mock.Mock }

func (m *mockLinkRepo) CreateIfAbsent(ctx context.Context, link *model.ShareLink) (bool, error) {
	args := m.Called(ctx, link)
	return args.Bool(0), args.Error(1)
}

func (m *mockLinkRepo) GetByUserID(ctx context.Context, userID int64) (*model.ShareLink, error) {
	args := m.Called(ctx, userID)
	if l, ok := args.Get(0).(*model.ShareLink); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLinkRepo) GetByHash(ctx context.Context, hash string) (*model.ShareLink, error) {
	args := m.Called(ctx, hash)
	if l, ok := args.Get(0).(*model.ShareLink); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLinkRepo) DeleteByUserID(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.LinkRepository = (*mockLinkRepo)(nil)
