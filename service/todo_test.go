package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ncobase/todosheet/data/sheets"
	"github.com/ncobase/todosheet/structs"
)

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	grid := sheets.NewMemory()
	svc := newTestService(grid, &fakePusher{})

	_, err := svc.Todo.Create(ctx, &structs.CreateTodoRequest{Title: ""})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("empty title: got %v, want ValidationError", err)
	}
	if _, ok := ve.Fields["title"]; !ok {
		t.Errorf("validation fields = %v, want title entry", ve.Fields)
	}

	_, err = svc.Todo.Create(ctx, &structs.CreateTodoRequest{Title: "   "})
	if !errors.Is(err, ErrTitleRequired) {
		t.Errorf("blank title: got %v, want ErrTitleRequired", err)
	}

	// Nothing may have been written, not even the header.
	rows, _ := grid.Rows(ctx)
	if len(rows) != 0 {
		t.Errorf("rejected create touched the sheet: %v", rows)
	}
}

func TestCreateNormalizesInput(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(sheets.NewMemory(), &fakePusher{})

	created, err := svc.Todo.Create(ctx, &structs.CreateTodoRequest{
		Title:       "  buy milk  ",
		Description: " 2 liters ",
		Priority:    "High",
		DueAt:       "2026-03-01",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Title != "buy milk" || created.Description != "2 liters" {
		t.Errorf("fields not trimmed: %+v", created)
	}
	if created.DueAt != "2026-03-01T23:59:00+09:00" {
		t.Errorf("due_at = %q, want end of day in configured zone", created.DueAt)
	}

	garbage, err := svc.Todo.Create(ctx, &structs.CreateTodoRequest{
		Title: "call bank",
		DueAt: "next tuesday",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if garbage.DueAt != "" {
		t.Errorf("unparseable due_at stored as %q, want dropped", garbage.DueAt)
	}
}

func TestUpdateValidation(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(sheets.NewMemory(), &fakePusher{})

	created, err := svc.Todo.Create(ctx, &structs.CreateTodoRequest{Title: "buy milk"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, _, err = svc.Todo.Update(ctx, created.ID, &structs.UpdateTodoRequest{Title: " "})
	if !errors.Is(err, ErrTitleRequired) {
		t.Errorf("blank title: got %v, want ErrTitleRequired", err)
	}

	updated, ok, err := svc.Todo.Update(ctx, created.ID, &structs.UpdateTodoRequest{
		Title: "buy oat milk",
		DueAt: "2026-04-02",
	})
	if err != nil || !ok {
		t.Fatalf("Update: ok %v, err %v", ok, err)
	}
	if updated.DueAt != "2026-04-02T23:59:00+09:00" {
		t.Errorf("due_at = %q", updated.DueAt)
	}

	_, ok, err = svc.Todo.Update(ctx, "nope", &structs.UpdateTodoRequest{Title: "x"})
	if err != nil {
		t.Fatalf("Update missing: %v", err)
	}
	if ok {
		t.Error("Update reported a hit for an unknown id")
	}
}

func TestListFiltersByStatus(t *testing.T) {
	ctx := context.Background()
	grid := seededGrid(
		sheetRow("t1", "open one", "Medium", "open", "", "2026-01-02T00:00:00+09:00", ""),
		sheetRow("t2", "done one", "Medium", "done", "", "2026-01-03T00:00:00+09:00", ""),
		sheetRow("t3", "open two", "Medium", "open", "", "2026-01-04T00:00:00+09:00", ""),
	)
	svc := newTestService(grid, &fakePusher{})

	open, err := svc.Todo.List(ctx, "open", "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(open) != 2 {
		t.Errorf("open filter: got %d, want 2", len(open))
	}

	done, _ := svc.Todo.List(ctx, "done", "")
	if len(done) != 1 || done[0].ID != "t2" {
		t.Errorf("done filter: %v", done)
	}

	// Unknown filter values mean no filter.
	all, _ := svc.Todo.List(ctx, "everything", "")
	if len(all) != 3 {
		t.Errorf("unknown filter: got %d, want 3", len(all))
	}
}

func TestListSortByUpdatedDefault(t *testing.T) {
	ctx := context.Background()
	grid := seededGrid(
		sheetRow("old", "old", "Medium", "open", "", "2026-01-01T00:00:00+09:00", ""),
		sheetRow("new", "new", "Medium", "open", "", "2026-01-05T00:00:00+09:00", ""),
		sheetRow("mid", "mid", "Medium", "open", "", "2026-01-03T00:00:00+09:00", ""),
	)
	svc := newTestService(grid, &fakePusher{})

	todos, err := svc.Todo.List(ctx, "", "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	got := []string{todos[0].ID, todos[1].ID, todos[2].ID}
	want := []string{"new", "mid", "old"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestListSortByPriority(t *testing.T) {
	ctx := context.Background()
	grid := seededGrid(
		sheetRow("low", "low", "Low", "open", "", "2026-01-01T00:00:00+09:00", ""),
		sheetRow("high2", "high later", "High", "open", "2026-06-01T23:59:00+09:00", "2026-01-01T00:00:00+09:00", ""),
		sheetRow("weird", "unknown priority", "???", "open", "", "2026-01-01T00:00:00+09:00", ""),
		sheetRow("high1", "high sooner", "High", "open", "2026-05-01T23:59:00+09:00", "2026-01-01T00:00:00+09:00", ""),
	)
	svc := newTestService(grid, &fakePusher{})

	todos, err := svc.Todo.List(ctx, "", "priority")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	got := make([]string, len(todos))
	for i, todo := range todos {
		got[i] = todo.ID
	}
	// High first with earlier due winning the tie, unknown priority
	// ranks with Medium, Low last.
	want := []string{"high1", "high2", "weird", "low"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestListSortByDue(t *testing.T) {
	ctx := context.Background()
	grid := seededGrid(
		sheetRow("none", "no due", "Medium", "open", "", "2026-01-01T00:00:00+09:00", ""),
		sheetRow("late", "late", "Medium", "open", "2026-06-01T23:59:00+09:00", "2026-01-01T00:00:00+09:00", ""),
		sheetRow("soon", "soon", "Medium", "open", "2026-02-01T23:59:00+09:00", "2026-01-01T00:00:00+09:00", ""),
	)
	svc := newTestService(grid, &fakePusher{})

	todos, err := svc.Todo.List(ctx, "", "due")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	got := []string{todos[0].ID, todos[1].ID, todos[2].ID}
	want := []string{"soon", "late", "none"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}
