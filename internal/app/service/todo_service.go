package service

import (
	"context"

	"todoapp/internal/core/domain"
	"todoapp/internal/core/ports"
)

// TodoService scopes every operation to the acting identity's id. A todo
// owned by someone else is indistinguishable from a missing one.
type TodoService struct {
	todoRepository ports.TodoRepository
}

var _ ports.TodoService = (*TodoService)(nil)

func NewTodoService(todoRepository ports.TodoRepository) *TodoService {
	return &TodoService{todoRepository: todoRepository}
}

func (s *TodoService) ListTodos(ctx context.Context, ownerID uint64) ([]domain.Todo, error) {
	return s.todoRepository.ListByOwner(ctx, ownerID)
}

func (s *TodoService) GetTodo(ctx context.Context, id, ownerID uint64) (domain.Todo, error) {
	return s.todoRepository.GetByIDAndOwner(ctx, id, ownerID)
}

func (s *TodoService) CreateTodo(ctx context.Context, ownerID uint64, input domain.CreateTodoInput) (domain.Todo, error) {
	return s.todoRepository.Create(ctx, ownerID, input)
}

func (s *TodoService) UpdateTodo(ctx context.Context, id, ownerID uint64, input domain.UpdateTodoInput) error {
	return s.todoRepository.Update(ctx, id, ownerID, input)
}

func (s *TodoService) ToggleComplete(ctx context.Context, id, ownerID uint64) error {
	return s.todoRepository.ToggleComplete(ctx, id, ownerID)
}

func (s *TodoService) DeleteTodo(ctx context.Context, id, ownerID uint64) error {
	return s.todoRepository.Delete(ctx, id, ownerID)
}
