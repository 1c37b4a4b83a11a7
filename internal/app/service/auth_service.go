package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"todoapp/internal/core/domain"
	"todoapp/internal/core/ports"
)

type AuthService struct {
	userRepository ports.UserRepository
	bcryptCost     int
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(userRepository ports.UserRepository, bcryptCost int) *AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{userRepository: userRepository, bcryptCost: bcryptCost}
}

// Register creates a new active user. Every failure cause (taken username,
// taken email) collapses into ErrInvalidRegistration so the response does
// not reveal which check rejected the request.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.bcryptCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.userRepository.CreateUser(ctx, domain.CreateUserInput{
		Email:          input.Email,
		Username:       input.Username,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		HashedPassword: string(hash),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return domain.User{}, domain.ErrInvalidRegistration
		}
		return domain.User{}, err
	}

	return user, nil
}

func (s *AuthService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, domain.ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return domain.User{}, domain.ErrInvalidCredentials
	}

	return user, nil
}

// ChangePassword requires the caller to restate their own username and
// current password; any mismatch is ErrInvalidCredentials so the response
// does not reveal which part failed.
func (s *AuthService) ChangePassword(ctx context.Context, userID uint64, username, currentPassword, newPassword string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidCredentials
		}
		return err
	}

	if user.Username != username {
		return domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(currentPassword)) != nil {
		return domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.userRepository.UpdatePassword(ctx, userID, string(hash))
}

// DeleteAccount removes the user row; the schema cascades the delete to
// the user's todos.
func (s *AuthService) DeleteAccount(ctx context.Context, userID uint64) error {
	return s.userRepository.DeleteUser(ctx, userID)
}
