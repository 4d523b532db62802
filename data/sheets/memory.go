package sheets

import (
	"context"
	"sync"
)

// Memory is an in-process Grid used by tests and local development. It
// mirrors the growth semantics of a real worksheet: writes past the
// current bounds extend the grid.
type Memory struct {
	mu   sync.Mutex
	rows [][]string
	err  error
}

// NewMemory builds a grid pre-populated with the given rows.
func NewMemory(rows ...[]string) *Memory {
	m := &Memory{}
	for _, row := range rows {
		m.rows = append(m.rows, append([]string(nil), row...))
	}
	return m
}

// Fail makes every subsequent operation return err. Pass nil to clear.
func (m *Memory) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *Memory) HeaderRow(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if len(m.rows) == 0 {
		return nil, nil
	}
	return append([]string(nil), m.rows[0]...), nil
}

func (m *Memory) Rows(ctx context.Context) ([][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([][]string, len(m.rows))
	for i, row := range m.rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (m *Memory) UpdateRange(ctx context.Context, a1Range string, values [][]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	startRow, startCol := a1Start(a1Range)
	for r, row := range values {
		for c, val := range row {
			m.set(startRow+r, startCol+c, val)
		}
	}
	return nil
}

func (m *Memory) Append(ctx context.Context, row []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.rows = append(m.rows, append([]string(nil), row...))
	return nil
}

func (m *Memory) UpdateCells(ctx context.Context, cells []Cell) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for _, cell := range cells {
		m.set(cell.Row, cell.Col, cell.Value)
	}
	return nil
}

func (m *Memory) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.rows = nil
	return nil
}

// set writes a cell at the 1-based position, growing the grid.
func (m *Memory) set(row, col int, value string) {
	for len(m.rows) < row {
		m.rows = append(m.rows, nil)
	}
	r := m.rows[row-1]
	for len(r) < col {
		r = append(r, "")
	}
	r[col-1] = value
	m.rows[row-1] = r
}

// a1Start extracts the 1-based start row and column of an A1 range
// such as "A2:J5". A missing part defaults to 1.
func a1Start(a1 string) (row, col int) {
	i := 0
	for i < len(a1) && a1[i] >= 'A' && a1[i] <= 'Z' {
		col = col*26 + int(a1[i]-'A'+1)
		i++
	}
	for i < len(a1) && a1[i] >= '0' && a1[i] <= '9' {
		row = row*10 + int(a1[i]-'0')
		i++
	}
	if col == 0 {
		col = 1
	}
	if row == 0 {
		row = 1
	}
	return row, col
}
