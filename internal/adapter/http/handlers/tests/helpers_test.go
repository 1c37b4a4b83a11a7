package tests

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpadapter "todoapp/internal/adapter/http"
	"todoapp/internal/adapter/http/handlers"
	"todoapp/internal/auth"
	"todoapp/internal/core/domain"
	"todoapp/internal/core/ports"
)

const testSigningSecret = "handler-test-signing-secret"

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, input ports.RegisterInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) ChangePassword(ctx context.Context, userID uint64, username, currentPassword, newPassword string) error {
	args := m.Called(ctx, userID, username, currentPassword, newPassword)
	return args.Error(0)
}

func (m *authServiceMock) DeleteAccount(ctx context.Context, userID uint64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type todoServiceMock struct {
	mock.Mock
}

func (m *todoServiceMock) ListTodos(ctx context.Context, ownerID uint64) ([]domain.Todo, error) {
	args := m.Called(ctx, ownerID)

	var todos []domain.Todo
	if value := args.Get(0); value != nil {
		todos = value.([]domain.Todo)
	}
	return todos, args.Error(1)
}

func (m *todoServiceMock) GetTodo(ctx context.Context, id, ownerID uint64) (domain.Todo, error) {
	args := m.Called(ctx, id, ownerID)
	return args.Get(0).(domain.Todo), args.Error(1)
}

func (m *todoServiceMock) CreateTodo(ctx context.Context, ownerID uint64, input domain.CreateTodoInput) (domain.Todo, error) {
	args := m.Called(ctx, ownerID, input)
	return args.Get(0).(domain.Todo), args.Error(1)
}

func (m *todoServiceMock) UpdateTodo(ctx context.Context, id, ownerID uint64, input domain.UpdateTodoInput) error {
	args := m.Called(ctx, id, ownerID, input)
	return args.Error(0)
}

func (m *todoServiceMock) ToggleComplete(ctx context.Context, id, ownerID uint64) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

func (m *todoServiceMock) DeleteTodo(ctx context.Context, id, ownerID uint64) error {
	args := m.Called(ctx, id, ownerID)
	return args.Error(0)
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userServiceMock) GetUser(ctx context.Context, id uint64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

type testEnv struct {
	router       *gin.Engine
	tokenManager *auth.TokenManager
	authService  *authServiceMock
	todoService  *todoServiceMock
	userService  *userServiceMock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	tokenManager, err := auth.NewTokenManager(testSigningSecret, time.Hour)
	require.NoError(t, err)

	env := &testEnv{
		tokenManager: tokenManager,
		authService:  new(authServiceMock),
		todoService:  new(todoServiceMock),
		userService:  new(userServiceMock),
	}

	router := gin.New()
	router.LoadHTMLGlob(templateGlob)

	var nilDB *sqlx.DB
	healthHandler := handlers.NewHealthHandler(nilDB)
	authHandler := handlers.NewAuthHandler(env.authService, tokenManager)
	todoHandler := handlers.NewTodoHandler(env.todoService)
	userHandler := handlers.NewUserHandler(env.userService, env.authService)
	httpadapter.RegisterRoutes(router, tokenManager, healthHandler, authHandler, todoHandler, userHandler)

	env.router = router
	return env
}

func (e *testEnv) sessionCookie(t *testing.T, identity domain.Identity) *http.Cookie {
	t.Helper()

	token, err := e.tokenManager.Issue(identity)
	require.NoError(t, err)
	return &http.Cookie{Name: auth.CookieName, Value: token}
}
