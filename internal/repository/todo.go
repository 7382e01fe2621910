package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/todolist/todolist-go/internal/model"
)

var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository handles to-do item persistence. Every query is scoped by
// owner email, so a caller can never read or mutate another user's rows.
type TodoRepository struct {
	db *sql.DB
}

// NewTodoRepository creates a new TodoRepository.
func NewTodoRepository(db *sql.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

// Create inserts a new to-do item.
func (r *TodoRepository) Create(ctx context.Context, todo *model.Todo) error {
	query := `INSERT INTO todos (id, user_email, title, progress, date) VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		todo.ID, todo.UserEmail, todo.Title, todo.Progress, todo.Date,
	)
	return err
}

// GetByID retrieves a to-do item by id, scoped to its owner.
func (r *TodoRepository) GetByID(ctx context.Context, owner, id string) (*model.Todo, error) {
	query := `SELECT id, user_email, title, progress, date, created_at, updated_at
		FROM todos WHERE id = ? AND user_email = ?`

	todo := &model.Todo{}
	err := r.db.QueryRowContext(ctx, query, id, owner).Scan(
		&todo.ID, &todo.UserEmail, &todo.Title, &todo.Progress,
		&todo.Date, &todo.CreatedAt, &todo.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}

	return todo, nil
}

// ListByOwner retrieves all to-do items for a user, ordered by ascending date.
func (r *TodoRepository) ListByOwner(ctx context.Context, owner string) ([]model.Todo, error) {
	query := `SELECT id, user_email, title, progress, date, created_at, updated_at
		FROM todos WHERE user_email = ? ORDER BY date ASC`

	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []model.Todo
	for rows.Next() {
		var t model.Todo
		if err := rows.Scan(
			&t.ID, &t.UserEmail, &t.Title, &t.Progress,
			&t.Date, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}

	return todos, rows.Err()
}

// Update mutates a to-do item in place. A MySQL UPDATE that changes no
// column values reports zero affected rows, so existence is checked by the
// caller with GetByID rather than from the result here.
func (r *TodoRepository) Update(ctx context.Context, todo *model.Todo) error {
	query := `UPDATE todos SET title = ?, progress = ?, date = ?
		WHERE id = ? AND user_email = ?`

	_, err := r.db.ExecContext(ctx, query,
		todo.Title, todo.Progress, todo.Date, todo.ID, todo.UserEmail,
	)
	return err
}

// Delete removes a to-do item. Returns ErrTodoNotFound when no row with the
// given id belongs to the owner.
func (r *TodoRepository) Delete(ctx context.Context, owner, id string) error {
	query := `DELETE FROM todos WHERE id = ? AND user_email = ?`

	result, err := r.db.ExecContext(ctx, query, id, owner)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrTodoNotFound
	}

	return nil
}
