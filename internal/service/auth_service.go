package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/campuscare/healthbot/internal/config"
	"github.com/campuscare/healthbot/internal/domain"
	"github.com/campuscare/healthbot/internal/repository"
)

const bcryptCost = 10

// Session identifies an authenticated user for the lifetime of a token.
type Session struct {
	UserID   string
	Username string
}

// AuthService handles registration, login and session token verification.
type AuthService struct {
	users    *repository.UserRepository
	secret   []byte
	tokenTTL time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(users *repository.UserRepository, cfg config.AuthConfig) *AuthService {
	ttl := cfg.TokenTTLHours
	if ttl <= 0 {
		ttl = 24
	}
	return &AuthService{
		users:    users,
		secret:   []byte(cfg.Secret),
		tokenTTL: time.Duration(ttl) * time.Hour,
	}
}

// Register creates a new account and returns a session token for it.
func (s *AuthService) Register(username, password string) (*domain.User, string, error) {
	if username == "" || password == "" {
		return nil, "", domain.ErrInvalidRequest
	}

	existing, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", domain.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{Username: username, PasswordHash: string(hash)}
	if err := s.users.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login verifies credentials and returns a session token. Unknown usernames
// and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(username, password string) (*domain.User, string, error) {
	if username == "" || password == "" {
		return nil, "", domain.ErrInvalidRequest
	}

	user, err := s.users.GetByUsername(username)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// TokenTTL returns the configured session lifetime
func (s *AuthService) TokenTTL() time.Duration {
	return s.tokenTTL
}

// VerifyToken parses a session token and returns the session it carries.
func (s *AuthService) VerifyToken(tokenString string) (*Session, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	userID, _ := claims["sub"].(string)
	username, _ := claims["username"].(string)
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	return &Session{UserID: userID, Username: username}, nil
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(s.tokenTTL).Unix(),
	})
	return token.SignedString(s.secret)
}
