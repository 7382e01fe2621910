package service

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/todolist/todolist-go/internal/model"
	"github.com/todolist/todolist-go/internal/repository"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrDateRequired  = errors.New("date is required")
	ErrTodoNotFound  = errors.New("todo not found")
)

// TodoService handles to-do item business logic. The owner of every
// operation is the authenticated identity; owner values supplied in request
// bodies are never consulted.
type TodoService struct {
	repo *repository.TodoRepository
}

// NewTodoService creates a new TodoService.
func NewTodoService(repo *repository.TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

// Create adds a new to-do item owned by owner.
func (s *TodoService) Create(ctx context.Context, owner string, req model.TodoRequest) (model.Todo, error) {
	if req.Title == "" {
		return model.Todo{}, ErrTitleRequired
	}
	if req.Date.IsZero() {
		return model.Todo{}, ErrDateRequired
	}

	todo := model.Todo{
		ID:        uuid.NewString(),
		UserEmail: owner,
		Title:     req.Title,
		Progress:  clampProgress(req.Progress),
		Date:      req.Date,
	}

	if err := s.repo.Create(ctx, &todo); err != nil {
		return model.Todo{}, err
	}

	return todo, nil
}

// List returns all of owner's to-do items sorted by ascending date.
func (s *TodoService) List(ctx context.Context, owner string) ([]model.Todo, error) {
	todos, err := s.repo.ListByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	sortTodosByDate(todos)
	return todos, nil
}

// Update mutates an existing to-do item owned by owner.
func (s *TodoService) Update(ctx context.Context, owner, id string, req model.TodoRequest) (model.Todo, error) {
	if req.Title == "" {
		return model.Todo{}, ErrTitleRequired
	}
	if req.Date.IsZero() {
		return model.Todo{}, ErrDateRequired
	}

	existing, err := s.repo.GetByID(ctx, owner, id)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return model.Todo{}, ErrTodoNotFound
		}
		return model.Todo{}, err
	}

	todo := model.Todo{
		ID:        existing.ID,
		UserEmail: owner,
		Title:     req.Title,
		Progress:  clampProgress(req.Progress),
		Date:      req.Date,
		CreatedAt: existing.CreatedAt,
	}

	if err := s.repo.Update(ctx, &todo); err != nil {
		return model.Todo{}, err
	}

	return todo, nil
}

// Delete removes a to-do item owned by owner.
func (s *TodoService) Delete(ctx context.Context, owner, id string) error {
	err := s.repo.Delete(ctx, owner, id)
	if errors.Is(err, repository.ErrTodoNotFound) {
		return ErrTodoNotFound
	}
	return err
}

// sortTodosByDate orders items by ascending date, stably, with zero dates
// last. The store already orders its result; this keeps the contract
// independent of the SQL.
func sortTodosByDate(todos []model.Todo) {
	sort.SliceStable(todos, func(i, j int) bool {
		a, b := todos[i].Date, todos[j].Date
		if a.IsZero() {
			return false
		}
		if b.IsZero() {
			return true
		}
		return a.Before(b)
	})
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
