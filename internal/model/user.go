package model

import "time"

// User represents a registered account in the database.
type User struct {
	Email          string
	HashedPassword string
	CreatedAt      time.Time
}

// SignupRequest represents an account creation request.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned from signup and login with a signed bearer token.
type AuthResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}
