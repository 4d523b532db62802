// Package repository maps todo records onto worksheet rows. The first
// row is the header; each todo occupies one row below it. Columns are
// looked up by header name on every operation so manual edits to the
// sheet cannot silently corrupt writes.
package repository

import (
	"context"
	"fmt"

	"github.com/ncobase/todosheet/data/sheets"
)

// Headers is the canonical column layout, in order.
var Headers = []string{
	"id",
	"title",
	"description",
	"priority",
	"status",
	"due_at",
	"created_at",
	"updated_at",
	"done_at",
	"last_reminded_at",
}

// legacySources maps canonical column names to the historical names
// they replaced. Sheets created by earlier releases are migrated by
// EnsureSchema.
var legacySources = map[string]string{
	"description": "body",
	"due_at":      "due_date",
}

// EnsureSchema brings the sheet header to the canonical layout. An
// empty sheet gets the header written, a legacy layout is migrated in
// place with cell values preserved, and a sheet already in canonical
// form is left untouched.
func (r *todoRepository) EnsureSchema(ctx context.Context) error {
	header, err := r.grid.HeaderRow(ctx)
	if err != nil {
		return fmt.Errorf("failed to read header row: %w", err)
	}

	if equalHeader(header, Headers) {
		return nil
	}

	if isLegacyHeader(header) {
		r.logger.Info(ctx, "migrating legacy sheet layout", "columns", len(header))
		return r.migrateLegacy(ctx, header)
	}

	// Empty or unrecognized sheet: (re)write the canonical header.
	rng := fmt.Sprintf("A1:%s1", sheets.ColumnLetter(len(Headers)))
	if err := r.grid.UpdateRange(ctx, rng, [][]string{Headers}); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	return nil
}

// migrateLegacy rebuilds every row under the canonical layout. Values
// are carried over by column name, renamed columns are resolved
// through legacySources, and columns the old sheet lacked are filled
// with defaults.
func (r *todoRepository) migrateLegacy(ctx context.Context, oldHeader []string) error {
	rows, err := r.grid.Rows(ctx)
	if err != nil {
		return fmt.Errorf("failed to read rows for migration: %w", err)
	}

	oldIndex := indexByName(oldHeader)
	migrated := [][]string{Headers}
	for _, row := range dataRows(rows) {
		rebuilt := make([]string, len(Headers))
		for i, name := range Headers {
			if legacy, ok := legacySources[name]; ok {
				if col, ok := oldIndex[legacy]; ok {
					rebuilt[i] = cellAt(row, col)
					continue
				}
			}
			if col, ok := oldIndex[name]; ok {
				rebuilt[i] = cellAt(row, col)
				continue
			}
			switch name {
			case "priority":
				rebuilt[i] = "Medium"
			case "status":
				rebuilt[i] = "open"
			}
		}
		migrated = append(migrated, rebuilt)
	}

	if err := r.grid.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear sheet for migration: %w", err)
	}
	rng := fmt.Sprintf("A1:%s%d", sheets.ColumnLetter(len(Headers)), len(migrated))
	if err := r.grid.UpdateRange(ctx, rng, migrated); err != nil {
		return fmt.Errorf("failed to write migrated rows: %w", err)
	}
	r.logger.Info(ctx, "sheet migration complete", "rows", len(migrated)-1)
	return nil
}

// headerMap reads the current header row and returns column indexes by
// name. When a name occurs twice the rightmost column wins.
func (r *todoRepository) headerMap(ctx context.Context) (map[string]int, error) {
	header, err := r.grid.HeaderRow(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	return indexByName(header), nil
}

func indexByName(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	return index
}

// isLegacyHeader recognizes layouts written by earlier releases: id in
// the first column plus at least one since-renamed column.
func isLegacyHeader(header []string) bool {
	if len(header) == 0 || header[0] != "id" {
		return false
	}
	index := indexByName(header)
	for _, legacy := range legacySources {
		if _, ok := index[legacy]; ok {
			return true
		}
	}
	return false
}

func equalHeader(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// dataRows strips the header row.
func dataRows(rows [][]string) [][]string {
	if len(rows) == 0 {
		return nil
	}
	return rows[1:]
}

// cellAt returns row[col] or "" when the row is shorter than col.
func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
