package repository

import "github.com/ncobase/todosheet/structs"

// decodeRow builds a todo from a sheet row using the given column
// index. Cells past the end of the row decode as "".
func decodeRow(row []string, index map[string]int) *structs.Todo {
	get := func(name string) string {
		col, ok := index[name]
		if !ok {
			return ""
		}
		return cellAt(row, col)
	}
	return &structs.Todo{
		ID:             get("id"),
		Title:          get("title"),
		Description:    get("description"),
		Priority:       structs.Priority(get("priority")).Normalize(),
		Status:         structs.Status(get("status")),
		DueAt:          get("due_at"),
		CreatedAt:      get("created_at"),
		UpdatedAt:      get("updated_at"),
		DoneAt:         get("done_at"),
		LastRemindedAt: get("last_reminded_at"),
	}
}

// encodeRow lays a todo out in canonical column order.
func encodeRow(t *structs.Todo) []string {
	return []string{
		t.ID,
		t.Title,
		t.Description,
		string(t.Priority),
		string(t.Status),
		t.DueAt,
		t.CreatedAt,
		t.UpdatedAt,
		t.DoneAt,
		t.LastRemindedAt,
	}
}
