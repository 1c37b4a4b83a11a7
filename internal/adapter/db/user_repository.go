package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"todoapp/internal/core/domain"
	"todoapp/internal/core/ports"
)

// MySQL error number for duplicate entry on a unique key.
const mysqlDuplicateEntry = 1062

const (
	listUsersQuery = `
SELECT id, email, username, first_name, last_name, hashed_password, is_active, created_at, updated_at
FROM users
ORDER BY id;
`

	getUserByIDQuery       = `SELECT id, email, username, first_name, last_name, hashed_password, is_active, created_at, updated_at FROM users WHERE id = ?;`
	getUserByUsernameQuery = `SELECT id, email, username, first_name, last_name, hashed_password, is_active, created_at, updated_at FROM users WHERE username = ?;`
	getUserByEmailQuery    = `SELECT id, email, username, first_name, last_name, hashed_password, is_active, created_at, updated_at FROM users WHERE email = ?;`

	insertUserQuery = `
INSERT INTO users (email, username, first_name, last_name, hashed_password, is_active)
VALUES (?, ?, ?, ?, ?, TRUE);
`

	updateUserPasswordQuery = `UPDATE users SET hashed_password = ? WHERE id = ?;`
	deleteUserQuery         = `DELETE FROM users WHERE id = ?;`
)

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID             uint64    `db:"id"`
	Email          string    `db:"email"`
	Username       string    `db:"username"`
	FirstName      string    `db:"first_name"`
	LastName       string    `db:"last_name"`
	HashedPassword string    `db:"hashed_password"`
	IsActive       bool      `db:"is_active"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, listUsersQuery); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRowToDomainUser(row))
	}

	return users, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uint64) (domain.User, error) {
	return r.getUser(ctx, getUserByIDQuery, id)
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.getUser(ctx, getUserByUsernameQuery, username)
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getUser(ctx, getUserByEmailQuery, email)
}

func (r *UserRepository) getUser(ctx context.Context, query string, arg interface{}) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return mapUserRowToDomainUser(row), nil
}

func (r *UserRepository) CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	result, err := r.db.ExecContext(ctx, insertUserQuery,
		input.Email,
		input.Username,
		input.FirstName,
		input.LastName,
		input.HashedPassword,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return domain.User{}, domain.ErrUserExists
		}
		return domain.User{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}

	return r.GetUserByID(ctx, uint64(id))
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uint64, hashedPassword string) error {
	result, err := r.db.ExecContext(ctx, updateUserPasswordQuery, hashedPassword, id)
	if err != nil {
		return err
	}
	return requireAffectedRow(result, domain.ErrUserNotFound)
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, deleteUserQuery, id)
	if err != nil {
		return err
	}
	return requireAffectedRow(result, domain.ErrUserNotFound)
}

func requireAffectedRow(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return notFound
	}
	return nil
}

func mapUserRowToDomainUser(row userRow) domain.User {
	return domain.User{
		ID:             row.ID,
		Email:          row.Email,
		Username:       row.Username,
		FirstName:      row.FirstName,
		LastName:       row.LastName,
		HashedPassword: row.HashedPassword,
		IsActive:       row.IsActive,
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}
