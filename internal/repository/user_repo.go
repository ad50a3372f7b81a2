package repository

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/campuscare/healthbot/internal/domain"
)

// UserRepository handles user persistence
type UserRepository struct {
	db *DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(user *domain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()

	_, err := r.db.Exec(`
		INSERT INTO users (id, username, password, created_at)
		VALUES (?, ?, ?, ?)
	`, user.ID, user.Username, user.PasswordHash, user.CreatedAt)

	return err
}

// GetByUsername retrieves a user by username, or nil if none exists
func (r *UserRepository) GetByUsername(username string) (*domain.User, error) {
	user := &domain.User{}

	err := r.db.QueryRow(`
		SELECT id, username, password, created_at
		FROM users WHERE username = ?
	`, username).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Get retrieves a user by ID, or nil if none exists
func (r *UserRepository) Get(id string) (*domain.User, error) {
	user := &domain.User{}

	err := r.db.QueryRow(`
		SELECT id, username, password, created_at
		FROM users WHERE id = ?
	`, id).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}
