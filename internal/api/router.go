package api

import (
	"github.com/gin-gonic/gin"

	"github.com/campuscare/healthbot/internal/api/auth"
	"github.com/campuscare/healthbot/internal/api/chat"
	"github.com/campuscare/healthbot/internal/api/middleware"
	"github.com/campuscare/healthbot/internal/service"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	AllowOrigins []string
}

// SetupRouter sets up the Gin router
func SetupRouter(
	authService *service.AuthService,
	chatService *service.ChatService,
	cfg RouterConfig,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS middleware
	r.Use(middleware.CORS(cfg.AllowOrigins))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Static files (chat UI)
	SetupStaticRoutes(r)

	api := r.Group("/api")

	// Account and session endpoints (public)
	authHandler := auth.NewHandler(authService)
	authHandler.RegisterRoutes(api)

	// Chat endpoints (require a session)
	chatHandler := chat.NewHandler(chatService)
	chatGroup := api.Group("")
	chatGroup.Use(middleware.Session(authService))
	chatHandler.RegisterRoutes(chatGroup)

	return r
}
