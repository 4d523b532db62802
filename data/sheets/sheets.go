// Package sheets provides access to a spreadsheet worksheet as a plain
// grid of string cells. The Grid interface abstracts the Google Sheets
// API so the repository layer can run against an in-memory grid in
// tests.
package sheets

import (
	"context"
	"errors"
)

// Errors reported by grid implementations.
var (
	// ErrUnavailable indicates the backing sheet store could not be
	// reached or refused the operation.
	ErrUnavailable = errors.New("sheet store unavailable")
	// ErrAuth indicates credentials were missing or rejected.
	ErrAuth = errors.New("sheet store authentication failed")
)

// Cell addresses a single cell by 1-based row and column.
type Cell struct {
	Row   int
	Col   int
	Value string
}

// Grid is a worksheet viewed as rows of strings. Row and column
// numbering in A1 ranges is 1-based, matching the spreadsheet UI.
type Grid interface {
	// HeaderRow returns the first row of the sheet, or nil when the
	// sheet is empty.
	HeaderRow(ctx context.Context) ([]string, error)
	// Rows returns every row of the sheet including the header.
	Rows(ctx context.Context) ([][]string, error)
	// UpdateRange overwrites the cells covered by the A1 range with
	// values, growing the sheet as needed.
	UpdateRange(ctx context.Context, a1Range string, values [][]string) error
	// Append adds a row after the last non-empty row.
	Append(ctx context.Context, row []string) error
	// UpdateCells writes individual cells in one batch.
	UpdateCells(ctx context.Context, cells []Cell) error
	// Clear removes all values from the sheet.
	Clear(ctx context.Context) error
}

// ColumnLetter converts a 1-based column number to its A1 letter form,
// e.g. 1 -> "A", 27 -> "AA".
func ColumnLetter(n int) string {
	letters := ""
	for n > 0 {
		n--
		letters = string(rune('A'+n%26)) + letters
		n /= 26
	}
	return letters
}
