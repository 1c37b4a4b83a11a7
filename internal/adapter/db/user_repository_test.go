package db

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"todoapp/internal/core/domain"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDB.Close() })

	return sqlx.NewDb(mockDB, "mysql"), mock
}

func userColumns() []string {
	return []string{"id", "email", "username", "first_name", "last_name", "hashed_password", "is_active", "created_at", "updated_at"}
}

func TestUserRepository_GetUserByUsername(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE username = ?").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(1, "alice@example.com", "alice", "Alice", "Smith", "$2a$10$hash", true, now, now))

	user, err := repo.GetUserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, uint64(1), user.ID)
	require.Equal(t, "alice@example.com", user.Email)
	require.Equal(t, "alice", user.Username)
	require.True(t, user.IsActive)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_GetUserByUsername_NotFound(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE username = ?").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUserByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser_DuplicateEntry(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("alice@example.com", "alice", "Alice", "Smith", "$2a$10$hash").
		WillReturnError(&mysql.MySQLError{Number: mysqlDuplicateEntry, Message: "Duplicate entry 'alice' for key 'users.username'"})

	_, err := repo.CreateUser(context.Background(), domain.CreateUserInput{
		Email:          "alice@example.com",
		Username:       "alice",
		FirstName:      "Alice",
		LastName:       "Smith",
		HashedPassword: "$2a$10$hash",
	})
	require.ErrorIs(t, err, domain.ErrUserExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_CreateUser(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)
	now := time.Now()

	mock.ExpectExec("INSERT INTO users").
		WithArgs("alice@example.com", "alice", "Alice", "Smith", "$2a$10$hash").
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = ?").
		WithArgs(uint64(5)).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(5, "alice@example.com", "alice", "Alice", "Smith", "$2a$10$hash", true, now, now))

	user, err := repo.CreateUser(context.Background(), domain.CreateUserInput{
		Email:          "alice@example.com",
		Username:       "alice",
		FirstName:      "Alice",
		LastName:       "Smith",
		HashedPassword: "$2a$10$hash",
	})
	require.NoError(t, err)
	require.Equal(t, uint64(5), user.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdatePassword_NotFound(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	mock.ExpectExec("UPDATE users SET hashed_password").
		WithArgs("$2a$10$newhash", uint64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdatePassword(context.Background(), 42, "$2a$10$newhash")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_DeleteUser(t *testing.T) {
	sqlxDB, mock := newMockDB(t)
	repo := NewUserRepository(sqlxDB)

	mock.ExpectExec("DELETE FROM users WHERE id = ?").
		WithArgs(uint64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteUser(context.Background(), 5))
	require.NoError(t, mock.ExpectationsWereMet())
}
