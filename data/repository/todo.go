package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ncobase/todosheet/data/sheets"
	"github.com/ncobase/todosheet/logger"
	"github.com/ncobase/todosheet/structs"
)

// TodoRepository persists todos in a worksheet.
type TodoRepository interface {
	EnsureSchema(ctx context.Context) error
	FetchAll(ctx context.Context) ([]*structs.Todo, error)
	FindByID(ctx context.Context, id string) (*structs.Todo, bool, error)
	Create(ctx context.Context, t *structs.Todo) (*structs.Todo, error)
	Update(ctx context.Context, id string, upd *structs.Todo) (*structs.Todo, bool, error)
	Toggle(ctx context.Context, id string) (*structs.Todo, bool, error)
	MarkReminded(ctx context.Context, ids []string, at time.Time) error
}

type todoRepository struct {
	grid   sheets.Grid
	loc    *time.Location
	logger *logger.Logger
}

// NewTodoRepository creates a repository over the given grid.
// Timestamps it writes are rendered in loc.
func NewTodoRepository(grid sheets.Grid, loc *time.Location, log *logger.Logger) TodoRepository {
	return &todoRepository{grid: grid, loc: loc, logger: log}
}

// FetchAll returns every todo on the sheet. Rows with a blank id cell
// are skipped; they are either padding or manual scribbles.
func (r *todoRepository) FetchAll(ctx context.Context) ([]*structs.Todo, error) {
	if err := r.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	index, err := r.headerMap(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := r.grid.Rows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	idCol := index["id"]
	todos := make([]*structs.Todo, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if strings.TrimSpace(cellAt(row, idCol)) == "" {
			continue
		}
		todos = append(todos, decodeRow(row, index))
	}
	return todos, nil
}

// FindByID returns the todo with the given id. The second result is
// false when no row matches.
func (r *todoRepository) FindByID(ctx context.Context, id string) (*structs.Todo, bool, error) {
	if err := r.EnsureSchema(ctx); err != nil {
		return nil, false, err
	}
	index, err := r.headerMap(ctx)
	if err != nil {
		return nil, false, err
	}
	rows, err := r.grid.Rows(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read rows: %w", err)
	}

	row, _ := findRow(rows, index, id)
	if row == nil {
		return nil, false, nil
	}
	return decodeRow(row, index), true, nil
}

// Create assigns system fields and appends the todo as a new row. The
// caller sets title, description, priority and due date; everything
// else is filled here.
func (r *todoRepository) Create(ctx context.Context, t *structs.Todo) (*structs.Todo, error) {
	if err := r.EnsureSchema(ctx); err != nil {
		return nil, err
	}

	now := structs.FormatTime(time.Now(), r.loc)
	t.ID = uuid.New().String()
	t.Priority = t.Priority.Normalize()
	t.Status = structs.StatusOpen
	t.CreatedAt = now
	t.UpdatedAt = now
	t.DoneAt = ""
	t.LastRemindedAt = ""

	if err := r.grid.Append(ctx, encodeRow(t)); err != nil {
		return nil, fmt.Errorf("failed to append todo: %w", err)
	}
	r.logger.Info(ctx, "todo created", "todo_id", t.ID)
	return t, nil
}

// Update replaces the caller-editable fields of the todo with the
// values in upd. Status and the server-managed timestamps carry over
// from the stored row; updated_at is refreshed.
func (r *todoRepository) Update(ctx context.Context, id string, upd *structs.Todo) (*structs.Todo, bool, error) {
	if err := r.EnsureSchema(ctx); err != nil {
		return nil, false, err
	}
	index, err := r.headerMap(ctx)
	if err != nil {
		return nil, false, err
	}
	rows, err := r.grid.Rows(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read rows: %w", err)
	}

	row, rowNum := findRow(rows, index, id)
	if row == nil {
		return nil, false, nil
	}

	current := decodeRow(row, index)
	current.Title = upd.Title
	current.Description = upd.Description
	current.Priority = upd.Priority.Normalize()
	current.DueAt = upd.DueAt
	current.UpdatedAt = structs.FormatTime(time.Now(), r.loc)

	if err := r.writeRow(ctx, rowNum, current); err != nil {
		return nil, false, err
	}
	r.logger.Info(ctx, "todo updated", "todo_id", id)
	return current, true, nil
}

// Toggle flips the todo between open and done. Completing a todo
// stamps done_at; reopening clears it.
func (r *todoRepository) Toggle(ctx context.Context, id string) (*structs.Todo, bool, error) {
	if err := r.EnsureSchema(ctx); err != nil {
		return nil, false, err
	}
	index, err := r.headerMap(ctx)
	if err != nil {
		return nil, false, err
	}
	rows, err := r.grid.Rows(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read rows: %w", err)
	}

	row, rowNum := findRow(rows, index, id)
	if row == nil {
		return nil, false, nil
	}

	now := structs.FormatTime(time.Now(), r.loc)
	current := decodeRow(row, index)
	current.Status = current.Status.Toggle()
	if current.Status == structs.StatusDone {
		current.DoneAt = now
	} else {
		current.DoneAt = ""
	}
	current.UpdatedAt = now

	if err := r.writeRow(ctx, rowNum, current); err != nil {
		return nil, false, err
	}
	r.logger.Info(ctx, "todo toggled", "todo_id", id, "status", current.Status)
	return current, true, nil
}

// MarkReminded stamps last_reminded_at on the given todos in a single
// batch write. Only that one column is touched, so a reminder sweep
// can never clobber concurrent edits to other fields.
func (r *todoRepository) MarkReminded(ctx context.Context, ids []string, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.EnsureSchema(ctx); err != nil {
		return err
	}
	index, err := r.headerMap(ctx)
	if err != nil {
		return err
	}
	col, ok := index["last_reminded_at"]
	if !ok {
		r.logger.Warn(ctx, "last_reminded_at column missing, skipping mark")
		return nil
	}
	idCol := index["id"]
	rows, err := r.grid.Rows(ctx)
	if err != nil {
		return fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}

	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	stamp := structs.FormatTime(at, r.loc)
	var cells []sheets.Cell
	for i, row := range rows[1:] {
		if wanted[cellAt(row, idCol)] {
			cells = append(cells, sheets.Cell{Row: i + 2, Col: col + 1, Value: stamp})
		}
	}
	if err := r.grid.UpdateCells(ctx, cells); err != nil {
		return fmt.Errorf("failed to mark reminded: %w", err)
	}
	r.logger.Info(ctx, "todos marked reminded", "count", len(cells))
	return nil
}

// writeRow overwrites one data row in place.
func (r *todoRepository) writeRow(ctx context.Context, rowNum int, t *structs.Todo) error {
	rng := fmt.Sprintf("A%d:%s%d", rowNum, sheets.ColumnLetter(len(Headers)), rowNum)
	if err := r.grid.UpdateRange(ctx, rng, [][]string{encodeRow(t)}); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNum, err)
	}
	return nil
}

// findRow scans for the data row whose id cell equals id and returns
// it with its 1-based sheet row number, or (nil, 0).
func findRow(rows [][]string, index map[string]int, id string) ([]string, int) {
	if len(rows) == 0 || id == "" {
		return nil, 0
	}
	idCol, ok := index["id"]
	if !ok {
		return nil, 0
	}
	for i, row := range rows[1:] {
		if cellAt(row, idCol) == id {
			return row, i + 2
		}
	}
	return nil, 0
}
