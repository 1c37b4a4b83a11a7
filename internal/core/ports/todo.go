package ports

import (
	"context"

	"todoapp/internal/core/domain"
)

type TodoRepository interface {
	ListByOwner(ctx context.Context, ownerID uint64) ([]domain.Todo, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID uint64) (domain.Todo, error)
	Create(ctx context.Context, ownerID uint64, input domain.CreateTodoInput) (domain.Todo, error)
	Update(ctx context.Context, id, ownerID uint64, input domain.UpdateTodoInput) error
	ToggleComplete(ctx context.Context, id, ownerID uint64) error
	Delete(ctx context.Context, id, ownerID uint64) error
}

type TodoService interface {
	ListTodos(ctx context.Context, ownerID uint64) ([]domain.Todo, error)
	GetTodo(ctx context.Context, id, ownerID uint64) (domain.Todo, error)
	CreateTodo(ctx context.Context, ownerID uint64, input domain.CreateTodoInput) (domain.Todo, error)
	UpdateTodo(ctx context.Context, id, ownerID uint64, input domain.UpdateTodoInput) error
	ToggleComplete(ctx context.Context, id, ownerID uint64) error
	DeleteTodo(ctx context.Context, id, ownerID uint64) error
}
