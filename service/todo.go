package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ncobase/todosheet/config"
	"github.com/ncobase/todosheet/data"
	"github.com/ncobase/todosheet/data/repository"
	"github.com/ncobase/todosheet/logger"
	"github.com/ncobase/todosheet/structs"
)

// ErrTitleRequired is returned when a todo title is empty or blank.
var ErrTitleRequired = errors.New("title is required")

// ValidationError reports request fields that failed validation.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Fields)
}

// TodoService implements todo CRUD on top of the repository.
type TodoService struct {
	repo   repository.TodoRepository
	loc    *time.Location
	logger *logger.Logger
}

// NewTodoService creates the todo service.
func NewTodoService(d *data.Data, cfg *config.Config, log *logger.Logger) *TodoService {
	return &TodoService{
		repo:   d.Todo,
		loc:    cfg.Location(),
		logger: log,
	}
}

// Create validates the request and stores a new todo. Due dates are
// normalized before storage: a bare date becomes end of that day in
// the configured timezone, an unparseable value is dropped.
func (s *TodoService) Create(ctx context.Context, req *structs.CreateTodoRequest) (*structs.Todo, error) {
	if fields := structs.ValidateStruct(req); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	todo := &structs.Todo{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Priority:    structs.Priority(req.Priority),
		DueAt:       structs.NormalizeDueAt(req.DueAt, s.loc),
	}
	return s.repo.Create(ctx, todo)
}

// Update validates the request and replaces the editable fields of the
// todo. The bool result is false when the id does not exist.
func (s *TodoService) Update(ctx context.Context, id string, req *structs.UpdateTodoRequest) (*structs.Todo, bool, error) {
	if fields := structs.ValidateStruct(req); len(fields) > 0 {
		return nil, false, &ValidationError{Fields: fields}
	}
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, false, ErrTitleRequired
	}

	upd := &structs.Todo{
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Priority:    structs.Priority(req.Priority),
		DueAt:       structs.NormalizeDueAt(req.DueAt, s.loc),
	}
	return s.repo.Update(ctx, id, upd)
}

// Get returns one todo by id.
func (s *TodoService) Get(ctx context.Context, id string) (*structs.Todo, bool, error) {
	return s.repo.FindByID(ctx, id)
}

// Toggle flips a todo between open and done.
func (s *TodoService) Toggle(ctx context.Context, id string) (*structs.Todo, bool, error) {
	return s.repo.Toggle(ctx, id)
}

// List returns todos filtered by status and ordered by the requested
// sort mode. Unknown status values mean no filter; unknown sort modes
// fall back to most recently updated first.
func (s *TodoService) List(ctx context.Context, status, sortMode string) ([]*structs.Todo, error) {
	todos, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}
	todos = filterByStatus(todos, status)
	s.sortTodos(todos, sortMode)
	return todos, nil
}

func filterByStatus(todos []*structs.Todo, status string) []*structs.Todo {
	st := structs.Status(status)
	if !st.Valid() {
		return todos
	}
	filtered := make([]*structs.Todo, 0, len(todos))
	for _, t := range todos {
		if t.Status == st {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func (s *TodoService) sortTodos(todos []*structs.Todo, mode string) {
	switch mode {
	case "priority":
		sort.SliceStable(todos, func(i, j int) bool {
			ri, rj := todos[i].Priority.Rank(), todos[j].Priority.Rank()
			if ri != rj {
				return ri < rj
			}
			return s.dueKey(todos[i]).Before(s.dueKey(todos[j]))
		})
	case "due":
		sort.SliceStable(todos, func(i, j int) bool {
			return s.dueKey(todos[i]).Before(s.dueKey(todos[j]))
		})
	default:
		sort.SliceStable(todos, func(i, j int) bool {
			return todos[i].UpdatedAt > todos[j].UpdatedAt
		})
	}
}

// farFuture sorts todos without a usable due date after everything
// with one.
var farFuture = time.Date(9999, 12, 31, 23, 59, 59, 0, time.UTC)

func (s *TodoService) dueKey(t *structs.Todo) time.Time {
	due, ok := structs.ParseTime(t.DueAt, s.loc)
	if !ok {
		return farFuture
	}
	return due
}
