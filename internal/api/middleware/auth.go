package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campuscare/healthbot/internal/service"
)

// Context keys set by Session for downstream handlers.
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "session"

// Session returns a middleware that requires a valid session token, taken
// from the session cookie or a Bearer Authorization header.
func Session(auth *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in to access this feature"})
			c.Abort()
			return
		}

		session, err := auth.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please log in to access this feature"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, session.UserID)
		c.Set(ContextUsername, session.Username)
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}
