package service

import (
	"context"
	"testing"
	"time"

	"github.com/todolist/todolist-go/internal/model"
	"github.com/todolist/todolist-go/internal/repository"
)

func newTestTodoService() *TodoService {
	return NewTodoService(repository.NewTodoRepository(nil))
}

func TestCreate_EmptyTitle(t *testing.T) {
	svc := newTestTodoService()

	_, err := svc.Create(context.Background(), "test@example.com", model.TodoRequest{
		Title: "",
		Date:  time.Now(),
	})

	if err != ErrTitleRequired {
		t.Errorf("expected ErrTitleRequired, got %v", err)
	}
}

func TestCreate_ZeroDate(t *testing.T) {
	svc := newTestTodoService()

	_, err := svc.Create(context.Background(), "test@example.com", model.TodoRequest{
		Title: "buy groceries",
	})

	if err != ErrDateRequired {
		t.Errorf("expected ErrDateRequired, got %v", err)
	}
}

func TestUpdate_EmptyTitle(t *testing.T) {
	svc := newTestTodoService()

	_, err := svc.Update(context.Background(), "test@example.com", "some-id", model.TodoRequest{
		Title: "",
		Date:  time.Now(),
	})

	if err != ErrTitleRequired {
		t.Errorf("expected ErrTitleRequired, got %v", err)
	}
}

func TestSortTodosByDate(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
	}

	todos := []model.Todo{
		{ID: "b", Date: day(2)},
		{ID: "a", Date: day(1)},
		{ID: "c", Date: day(3)},
	}

	sortTodosByDate(todos)

	want := []string{"a", "b", "c"}
	for i, id := range want {
		if todos[i].ID != id {
			t.Errorf("todos[%d].ID = %q, want %q", i, todos[i].ID, id)
		}
	}
}

func TestSortTodosByDateZeroDatesLast(t *testing.T) {
	todos := []model.Todo{
		{ID: "z1"},
		{ID: "a", Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "z2"},
	}

	sortTodosByDate(todos)

	if todos[0].ID != "a" {
		t.Errorf("todos[0].ID = %q, want %q", todos[0].ID, "a")
	}
	// Stable sort keeps the relative order of the undated items.
	if todos[1].ID != "z1" || todos[2].ID != "z2" {
		t.Errorf("undated items = [%q, %q], want [z1, z2]", todos[1].ID, todos[2].ID)
	}
}

func TestClampProgress(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-5, 0},
		{0, 0},
		{50, 50},
		{100, 100},
		{150, 100},
	}

	for _, tt := range tests {
		if got := clampProgress(tt.in); got != tt.want {
			t.Errorf("clampProgress(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
