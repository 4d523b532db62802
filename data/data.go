// Package data wires the sheet grid and repositories into one data
// layer handed to services.
package data

import (
	"context"
	"fmt"
	"time"

	"github.com/ncobase/todosheet/config"
	"github.com/ncobase/todosheet/data/repository"
	"github.com/ncobase/todosheet/data/sheets"
	"github.com/ncobase/todosheet/logger"
)

// Data is the data layer: the grid connection plus the repositories
// built on it.
type Data struct {
	Grid sheets.Grid
	Todo repository.TodoRepository
}

// New connects to the configured Google spreadsheet and builds the
// data layer on it.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Data, error) {
	grid, err := sheets.NewGoogle(ctx, cfg.Sheets)
	if err != nil {
		return nil, fmt.Errorf("failed to open sheet store: %w", err)
	}
	return NewWithGrid(grid, cfg.Location(), log), nil
}

// NewWithGrid builds the data layer over an existing grid. Tests use
// this with an in-memory grid.
func NewWithGrid(grid sheets.Grid, loc *time.Location, log *logger.Logger) *Data {
	return &Data{
		Grid: grid,
		Todo: repository.NewTodoRepository(grid, loc, log),
	}
}

// Ping verifies the sheet is reachable by reading its header row.
func (d *Data) Ping(ctx context.Context) error {
	if _, err := d.Grid.HeaderRow(ctx); err != nil {
		return fmt.Errorf("sheet ping failed: %w", err)
	}
	return nil
}
