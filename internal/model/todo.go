package model

import "time"

// Todo represents a single to-do item owned by a user.
type Todo struct {
	ID        string    `json:"id"`
	UserEmail string    `json:"user_email"`
	Title     string    `json:"title"`
	Progress  int       `json:"progress"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TodoRequest represents the body of a create or update request.
// UserEmail is accepted for wire compatibility with older clients but is
// ignored; the owner is always the authenticated identity.
type TodoRequest struct {
	UserEmail string    `json:"user_email"`
	Title     string    `json:"title"`
	Progress  int       `json:"progress"`
	Date      time.Time `json:"date"`
}
