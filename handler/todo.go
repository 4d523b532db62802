package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ncobase/todosheet/data/sheets"
	"github.com/ncobase/todosheet/logger"
	"github.com/ncobase/todosheet/resp"
	"github.com/ncobase/todosheet/service"
	"github.com/ncobase/todosheet/structs"
)

// TodoHandler serves the todo CRUD endpoints.
type TodoHandler struct {
	svc    *service.TodoService
	logger *logger.Logger
}

// List returns todos, optionally filtered by ?status= and ordered by
// ?sort=. When the sheet cannot be read the endpoint degrades to an
// empty list with a warning instead of failing, so dashboards keep
// rendering.
func (h *TodoHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	todos, err := h.svc.List(ctx, c.Query("status"), c.Query("sort"))
	if err != nil {
		h.logger.Error(ctx, "todo list failed", "error", err)
		resp.Success(c.Writer, gin.H{
			"todos":   []*structs.Todo{},
			"count":   0,
			"warning": "store unavailable",
		})
		return
	}
	if todos == nil {
		todos = []*structs.Todo{}
	}
	resp.Success(c.Writer, gin.H{"todos": todos, "count": len(todos)})
}

// Create adds a new todo.
func (h *TodoHandler) Create(c *gin.Context) {
	var req structs.CreateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return
	}

	created, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.WithStatusCode(c.Writer, http.StatusCreated, created)
}

// Get returns one todo by id.
func (h *TodoHandler) Get(c *gin.Context) {
	todo, ok, err := h.svc.Get(c.Request.Context(), c.Param("todo_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if !ok {
		resp.Fail(c.Writer, resp.NotFound("todo not found"))
		return
	}
	resp.Success(c.Writer, todo)
}

// Update replaces the editable fields of a todo.
func (h *TodoHandler) Update(c *gin.Context) {
	var req structs.UpdateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		return
	}

	updated, ok, err := h.svc.Update(c.Request.Context(), c.Param("todo_id"), &req)
	if err != nil {
		h.fail(c, err)
		return
	}
	if !ok {
		resp.Fail(c.Writer, resp.NotFound("todo not found"))
		return
	}
	resp.Success(c.Writer, updated)
}

// Toggle flips a todo between open and done.
func (h *TodoHandler) Toggle(c *gin.Context) {
	todo, ok, err := h.svc.Toggle(c.Request.Context(), c.Param("todo_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if !ok {
		resp.Fail(c.Writer, resp.NotFound("todo not found"))
		return
	}
	resp.Success(c.Writer, gin.H{"id": todo.ID, "status": todo.Status})
}

// fail translates service errors into HTTP failures.
func (h *TodoHandler) fail(c *gin.Context, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		resp.Fail(c.Writer, resp.BadRequest("validation failed", ve.Fields))
	case errors.Is(err, service.ErrTitleRequired):
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
	case errors.Is(err, sheets.ErrUnavailable):
		resp.Fail(c.Writer, resp.Unavailable(sheets.ErrUnavailable.Error()))
	default:
		h.logger.Error(c.Request.Context(), "todo operation failed", "error", err)
		resp.Fail(c.Writer, resp.InternalServer(resp.Text(resp.ServerErr)))
	}
}
