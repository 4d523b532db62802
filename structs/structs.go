// Package structs defines the todo domain model shared across layers.
package structs

// Priority classifies how urgent a todo is. Values are stored verbatim
// in the sheet.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Normalize returns p unchanged when valid and PriorityMedium otherwise.
func (p Priority) Normalize() Priority {
	if p.Valid() {
		return p
	}
	return PriorityMedium
}

// Rank orders priorities for display, High first. Unknown values rank
// with Medium.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityLow:
		return 2
	default:
		return 1
	}
}

// Status is the completion state of a todo.
type Status string

const (
	StatusOpen Status = "open"
	StatusDone Status = "done"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusOpen || s == StatusDone
}

// Toggle returns the opposite status.
func (s Status) Toggle() Status {
	if s == StatusDone {
		return StatusOpen
	}
	return StatusDone
}

// Todo is one row of the todo worksheet. Timestamp fields hold RFC 3339
// strings exactly as stored in the sheet; empty means unset.
type Todo struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Priority       Priority `json:"priority"`
	Status         Status   `json:"status"`
	DueAt          string   `json:"due_at,omitempty"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
	DoneAt         string   `json:"done_at,omitempty"`
	LastRemindedAt string   `json:"last_reminded_at,omitempty"`
}

// CreateTodoRequest carries the fields a caller may set when creating a
// todo. Priority is not constrained here; out-of-range values are
// coerced to Medium by the store.
type CreateTodoRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Priority    string `json:"priority" binding:"omitempty"`
	DueAt       string `json:"due_at" binding:"omitempty"`
}

// UpdateTodoRequest mirrors CreateTodoRequest; status and the
// server-managed timestamps cannot be changed through an update.
type UpdateTodoRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	Priority    string `json:"priority" binding:"omitempty"`
	DueAt       string `json:"due_at" binding:"omitempty"`
}
