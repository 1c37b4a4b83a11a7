package ports

import (
	"context"

	"todoapp/internal/core/domain"
)

type UserRepository interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUserByID(ctx context.Context, id uint64) (domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error)
	UpdatePassword(ctx context.Context, id uint64, hashedPassword string) error
	DeleteUser(ctx context.Context, id uint64) error
}
