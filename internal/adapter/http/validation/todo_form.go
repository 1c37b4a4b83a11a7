package validation

import (
	"errors"
	"strings"

	"todoapp/internal/adapter/http/dto"
	"todoapp/internal/core/domain"
)

var ErrInvalidTodoForm = errors.New("invalid todo form")

// BuildCreateTodoInput normalizes a bound form into a domain input.
// Binding tags already enforce presence and ranges; trimming can still
// empty out a title or description made of whitespace.
func BuildCreateTodoInput(form dto.TodoForm) (domain.CreateTodoInput, error) {
	title, description, err := normalizeTodoFields(form)
	if err != nil {
		return domain.CreateTodoInput{}, err
	}

	return domain.CreateTodoInput{
		Title:       title,
		Description: description,
		Priority:    form.Priority,
	}, nil
}

func BuildUpdateTodoInput(form dto.TodoForm) (domain.UpdateTodoInput, error) {
	title, description, err := normalizeTodoFields(form)
	if err != nil {
		return domain.UpdateTodoInput{}, err
	}

	return domain.UpdateTodoInput{
		Title:       title,
		Description: description,
		Priority:    form.Priority,
	}, nil
}

func normalizeTodoFields(form dto.TodoForm) (string, string, error) {
	title := strings.TrimSpace(form.Title)
	description := strings.TrimSpace(form.Description)

	if title == "" || len(title) > domain.TodoTitleMaxLen {
		return "", "", ErrInvalidTodoForm
	}
	if description == "" || len(description) > domain.TodoDescriptionMaxLen {
		return "", "", ErrInvalidTodoForm
	}
	if form.Priority < domain.TodoPriorityMin || form.Priority > domain.TodoPriorityMax {
		return "", "", ErrInvalidTodoForm
	}

	return title, description, nil
}
