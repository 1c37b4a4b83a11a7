package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"todoapp/internal/adapter/http/dto"
	"todoapp/internal/adapter/http/middleware"
	"todoapp/internal/adapter/http/validation"
	"todoapp/internal/core/domain"
	"todoapp/internal/core/ports"
)

// TodoHandler serves the HTML todo surface. Anonymous requests are sent to
// the login page; every query and mutation is scoped to the session's
// identity, so a todo id owned by someone else behaves like a missing one.
type TodoHandler struct {
	todoService ports.TodoService
}

func NewTodoHandler(todoService ports.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

func (h *TodoHandler) List(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		c.Redirect(http.StatusFound, "/auth")
		return
	}

	todos, err := h.todoService.ListTodos(c.Request.Context(), identity.UserID)
	if err != nil {
		zap.L().Error("failed to list todos", zap.Uint64("owner_id", identity.UserID), zap.Error(err))
		c.HTML(http.StatusInternalServerError, "home.html", gin.H{"user": identity, "msg": "Could not load your todos"})
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{"todos": todos, "user": identity})
}

func (h *TodoHandler) AddPage(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		c.Redirect(http.StatusFound, "/auth")
		return
	}

	c.HTML(http.StatusOK, "add-todo.html", gin.H{"user": identity})
}

func (h *TodoHandler) Add(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		c.Redirect(http.StatusFound, "/auth")
		return
	}

	var form dto.TodoForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "add-todo.html", gin.H{"user": identity, "msg": "Invalid todo"})
		return
	}

	input, err := validation.BuildCreateTodoInput(form)
	if err != nil {
		c.HTML(http.StatusOK, "add-todo.html", gin.H{"user": identity, "msg": "Invalid todo"})
		return
	}

	if _, err := h.todoService.CreateTodo(c.Request.Context(), identity.UserID, input); err != nil {
		zap.L().Error("failed to create todo", zap.Uint64("owner_id", identity.UserID), zap.Error(err))
		c.HTML(http.StatusOK, "add-todo.html", gin.H{"user": identity, "msg": "Something went wrong"})
		return
	}

	c.Redirect(http.StatusFound, "/todos")
}

func (h *TodoHandler) EditPage(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		c.Redirect(http.StatusFound, "/auth")
		return
	}

	todoID, ok := parseTodoID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/todos")
		return
	}

	todo, err := h.todoService.GetTodo(c.Request.Context(), todoID, identity.UserID)
	if err != nil {
		if !errors.Is(err, domain.ErrTodoNotFound) {
			zap.L().Error("failed to load todo", zap.Uint64("todo_id", todoID), zap.Error(err))
		}
		c.Redirect(http.StatusFound, "/todos")
		return
	}

	c.HTML(http.StatusOK, "edit-todo.html", gin.H{"todo": todo, "user": identity, "priorities": todoPriorities()})
}

func (h *TodoHandler) Edit(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		c.Redirect(http.StatusFound, "/auth")
		return
	}

	todoID, ok := parseTodoID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/todos")
		return
	}

	var form dto.TodoForm
	if err := c.ShouldBind(&form); err != nil {
		c.Redirect(http.StatusFound, "/todos/edit-todo/"+strconv.FormatUint(todoID, 10))
		return
	}

	input, err := validation.BuildUpdateTodoInput(form)
	if err != nil {
		c.Redirect(http.StatusFound, "/todos/edit-todo/"+strconv.FormatUint(todoID, 10))
		return
	}

	if err := h.todoService.UpdateTodo(c.Request.Context(), todoID, identity.UserID, input); err != nil {
		if !errors.Is(err, domain.ErrTodoNotFound) {
			zap.L().Error("failed to update todo", zap.Uint64("todo_id", todoID), zap.Error(err))
		}
		c.Redirect(http.StatusFound, "/todos")
		return
	}

	c.Redirect(http.StatusFound, "/todos")
}

func (h *TodoHandler) Complete(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		c.Redirect(http.StatusFound, "/auth")
		return
	}

	todoID, ok := parseTodoID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/todos")
		return
	}

	if err := h.todoService.ToggleComplete(c.Request.Context(), todoID, identity.UserID); err != nil {
		if !errors.Is(err, domain.ErrTodoNotFound) {
			zap.L().Error("failed to toggle todo", zap.Uint64("todo_id", todoID), zap.Error(err))
		}
	}

	c.Redirect(http.StatusFound, "/todos")
}

func (h *TodoHandler) Delete(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		c.Redirect(http.StatusFound, "/auth")
		return
	}

	todoID, ok := parseTodoID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/todos")
		return
	}

	if err := h.todoService.DeleteTodo(c.Request.Context(), todoID, identity.UserID); err != nil {
		if !errors.Is(err, domain.ErrTodoNotFound) {
			zap.L().Error("failed to delete todo", zap.Uint64("todo_id", todoID), zap.Error(err))
		}
	}

	c.Redirect(http.StatusFound, "/todos")
}

func todoPriorities() []int {
	priorities := make([]int, 0, domain.TodoPriorityMax-domain.TodoPriorityMin+1)
	for p := domain.TodoPriorityMin; p <= domain.TodoPriorityMax; p++ {
		priorities = append(priorities, p)
	}
	return priorities
}

func parseTodoID(c *gin.Context) (uint64, bool) {
	todoID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || todoID == 0 {
		return 0, false
	}
	return todoID, true
}
