package domain

import "time"

// User represents a registered account. PasswordHash is the bcrypt hash of
// the password and never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// CredentialsRequest is the request body for registration and login.
type CredentialsRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned after a successful registration or login.
type AuthResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	UserID   string `json:"userId"`
	Username string `json:"username"`
}

// AuthStatusResponse reports whether the request carries a valid session.
type AuthStatusResponse struct {
	Authenticated bool   `json:"authenticated"`
	UserID        string `json:"userId,omitempty"`
	Username      string `json:"username,omitempty"`
}
