package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuscare/healthbot/internal/api/middleware"
	"github.com/campuscare/healthbot/internal/domain"
	"github.com/campuscare/healthbot/internal/service"
)

// Handler handles account and session requests
type Handler struct {
	authService *service.AuthService
}

// NewHandler creates a new auth handler
func NewHandler(authService *service.AuthService) *Handler {
	return &Handler{authService: authService}
}

// RegisterRoutes registers auth routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)
	r.GET("/auth-status", h.AuthStatus)
}

// Register creates a new account and opens a session
func (h *Handler) Register(c *gin.Context) {
	var req domain.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	user, token, err := h.authService.Register(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUsernameTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		}
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, domain.AuthResponse{
		Success:  true,
		Message:  "User registered successfully",
		UserID:   user.ID,
		Username: user.Username,
	})
}

// Login verifies credentials and opens a session
func (h *Handler) Login(c *gin.Context) {
	var req domain.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	user, token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username or password"})
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		}
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, domain.AuthResponse{
		Success:  true,
		Message:  "Login successful",
		UserID:   user.ID,
		Username: user.Username,
	})
}

// Logout clears the session cookie
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out successfully"})
}

// AuthStatus reports whether the request carries a valid session. It never
// returns an error status; an anonymous visitor is a normal answer.
func (h *Handler) AuthStatus(c *gin.Context) {
	token, err := c.Cookie(middleware.SessionCookie)
	if err != nil || token == "" {
		c.JSON(http.StatusOK, domain.AuthStatusResponse{Authenticated: false})
		return
	}

	session, err := h.authService.VerifyToken(token)
	if err != nil {
		c.JSON(http.StatusOK, domain.AuthStatusResponse{Authenticated: false})
		return
	}

	c.JSON(http.StatusOK, domain.AuthStatusResponse{
		Authenticated: true,
		UserID:        session.UserID,
		Username:      session.Username,
	})
}

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	maxAge := int(h.authService.TokenTTL().Seconds())
	c.SetCookie(middleware.SessionCookie, token, maxAge, "/", "", false, true)
}
