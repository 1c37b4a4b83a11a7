package ports

import (
	"context"

	"todoapp/internal/core/domain"
)

type RegisterInput struct {
	Email     string
	Username  string
	FirstName string
	LastName  string
	Password  string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (domain.User, error)
	Authenticate(ctx context.Context, username, password string) (domain.User, error)
	ChangePassword(ctx context.Context, userID uint64, username, currentPassword, newPassword string) error
	DeleteAccount(ctx context.Context, userID uint64) error
}

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id uint64) (domain.User, error)
}

// SessionManager issues and validates the signed tokens carried in the
// access-token cookie.
type SessionManager interface {
	Issue(identity domain.Identity) (string, error)
	Validate(token string) (*domain.Identity, error)
}
