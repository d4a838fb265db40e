package handlers_test

import (
	"BrainDump/internal/auth"
	"BrainDump/internal/config"
	"BrainDump/internal/handlers"
	"BrainDump/internal/model"
	"BrainDump/internal/repo"
	"BrainDump/internal/service"
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// Local light mocks
type hMockUserRepo struct{ mock.Mock }

func (m *hMockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockUserRepo) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockUserRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*hMockUserRepo)(nil)

type hMockContentRepo struct{ mock.Mock }

func (m *hMockContentRepo) Create(ctx context.Context, c *model.Content) error {
	return m.Called(ctx, c).Error(0)
}
func (m *hMockContentRepo) ListByOwner(ctx context.Context, userID int64) ([]model.Content, error) {
	args := m.Called(ctx, userID)
	if v, ok := args.Get(0).([]model.Content); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockContentRepo) DeleteByIDAndOwner(ctx context.Context, userID int64, id string) (int64, error) {
	args := m.Called(ctx, userID, id)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.ContentRepository = (*hMockContentRepo)(nil)

type hMockLinkRepo struct{ mock.Mock }

func (m *hMockLinkRepo) CreateIfAbsent(ctx context.Context, link *model.ShareLink) (bool, error) {
	args := m.Called(ctx, link)
	return args.Bool(0), args.Error(1)
}
func (m *hMockLinkRepo) GetByUserID(ctx context.Context, userID int64) (*model.ShareLink, error) {
	args := m.Called(ctx, userID)
	if l, ok := args.Get(0).(*model.ShareLink); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockLinkRepo) GetByHash(ctx context.Context, hash string) (*model.ShareLink, error) {
	args := m.Called(ctx, hash)
	if l, ok := args.Get(0).(*model.ShareLink); ok {
		return l, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *hMockLinkRepo) DeleteByUserID(ctx context.Context, userID int64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.LinkRepository = (*hMockLinkRepo)(nil)

// testEnv собирает роутер на моках репозиториев и реальном TokenService.
type testEnv struct {
	router  http.Handler
	tokens  *auth.TokenService
	users   *hMockUserRepo
	content *hMockContentRepo
	links   *hMockLinkRepo
}

const testSecret = "test-secret"

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := &config.Config{AuthSecret: testSecret, CORSOrigin: "http://localhost:5173"}
	logger := zap.NewNop().Sugar()

	ur := &hMockUserRepo{}
	cr := &hMockContentRepo{}
	lr := &hMockLinkRepo{}

	tokens := auth.NewTokenService(cfg.AuthSecret)
	userSvc := service.NewUserService(ur)
	contentSvc := service.NewContentService(cr, logger)
	shareSvc := service.NewShareService(lr, ur, cr, logger)

	h := handlers.NewHandler(userSvc, contentSvc, shareSvc, tokens, logger, cfg)
	return &testEnv{router: h.Router, tokens: tokens, users: ur, content: cr, links: lr}
}

// addAuth выпускает токен и ставит bearer-заголовок.
func addAuth(t *testing.T, req *http.Request, tokens *auth.TokenService, userID int64) {
	t.Helper()
	token, err := tokens.Issue(userID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
}
