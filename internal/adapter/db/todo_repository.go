package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"todoapp/internal/core/domain"
	"todoapp/internal/core/ports"
)

const (
	listTodosByOwnerQuery = `
SELECT id, title, description, priority, complete, owner_id, created_at, updated_at
FROM todos
WHERE owner_id = ?
ORDER BY id;
`

	getTodoByIDAndOwnerQuery = `
SELECT id, title, description, priority, complete, owner_id, created_at, updated_at
FROM todos
WHERE id = ? AND owner_id = ?;
`

	insertTodoQuery = `
INSERT INTO todos (title, description, priority, complete, owner_id)
VALUES (?, ?, ?, FALSE, ?);
`

	// Mutations filter on owner_id so a foreign todo id affects zero rows.
	updateTodoQuery = `
UPDATE todos SET title = ?, description = ?, priority = ?
WHERE id = ? AND owner_id = ?;
`

	toggleTodoCompleteQuery = `UPDATE todos SET complete = NOT complete WHERE id = ? AND owner_id = ?;`
	deleteTodoQuery         = `DELETE FROM todos WHERE id = ? AND owner_id = ?;`
)

type TodoRepository struct {
	db *sqlx.DB
}

type todoRow struct {
	ID          uint64    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Priority    int       `db:"priority"`
	Complete    bool      `db:"complete"`
	OwnerID     uint64    `db:"owner_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

var _ ports.TodoRepository = (*TodoRepository)(nil)

func NewTodoRepository(db *sqlx.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) ListByOwner(ctx context.Context, ownerID uint64) ([]domain.Todo, error) {
	var rows []todoRow
	if err := r.db.SelectContext(ctx, &rows, listTodosByOwnerQuery, ownerID); err != nil {
		return nil, err
	}

	todos := make([]domain.Todo, 0, len(rows))
	for _, row := range rows {
		todos = append(todos, mapTodoRowToDomainTodo(row))
	}

	return todos, nil
}

func (r *TodoRepository) GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (domain.Todo, error) {
	var row todoRow
	if err := r.db.GetContext(ctx, &row, getTodoByIDAndOwnerQuery, id, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Todo{}, domain.ErrTodoNotFound
		}
		return domain.Todo{}, err
	}
	return mapTodoRowToDomainTodo(row), nil
}

func (r *TodoRepository) Create(ctx context.Context, ownerID uint64, input domain.CreateTodoInput) (domain.Todo, error) {
	result, err := r.db.ExecContext(ctx, insertTodoQuery,
		input.Title,
		input.Description,
		input.Priority,
		ownerID,
	)
	if err != nil {
		return domain.Todo{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.Todo{}, err
	}

	return r.GetByIDAndOwner(ctx, uint64(id), ownerID)
}

func (r *TodoRepository) Update(ctx context.Context, id, ownerID uint64, input domain.UpdateTodoInput) error {
	result, err := r.db.ExecContext(ctx, updateTodoQuery,
		input.Title,
		input.Description,
		input.Priority,
		id,
		ownerID,
	)
	if err != nil {
		return err
	}
	return requireMatchedTodo(ctx, r.db, result, id, ownerID)
}

func (r *TodoRepository) ToggleComplete(ctx context.Context, id, ownerID uint64) error {
	result, err := r.db.ExecContext(ctx, toggleTodoCompleteQuery, id, ownerID)
	if err != nil {
		return err
	}
	return requireAffectedRow(result, domain.ErrTodoNotFound)
}

func (r *TodoRepository) Delete(ctx context.Context, id, ownerID uint64) error {
	result, err := r.db.ExecContext(ctx, deleteTodoQuery, id, ownerID)
	if err != nil {
		return err
	}
	return requireAffectedRow(result, domain.ErrTodoNotFound)
}

// requireMatchedTodo distinguishes "no such row" from "update changed
// nothing": MySQL reports zero affected rows when the new values equal the
// old ones, which is not an error for an edit form resubmission.
func requireMatchedTodo(ctx context.Context, db *sqlx.DB, result sql.Result, id, ownerID uint64) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	var exists int
	if err := db.GetContext(ctx, &exists, "SELECT 1 FROM todos WHERE id = ? AND owner_id = ?", id, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrTodoNotFound
		}
		return err
	}
	return nil
}

func mapTodoRowToDomainTodo(row todoRow) domain.Todo {
	return domain.Todo{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Priority:    row.Priority,
		Complete:    row.Complete,
		OwnerID:     row.OwnerID,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}
