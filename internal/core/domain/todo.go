package domain

import "time"

const (
	TodoTitleMaxLen       = 100
	TodoDescriptionMaxLen = 200
	TodoPriorityMin       = 1
	TodoPriorityMax       = 5
)

type Todo struct {
	ID          uint64
	Title       string
	Description string
	Priority    int
	Complete    bool
	OwnerID     uint64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTodoInput struct {
	Title       string
	Description string
	Priority    int
}

type UpdateTodoInput struct {
	Title       string
	Description string
	Priority    int
}
