package chat

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuscare/healthbot/internal/api/middleware"
	"github.com/campuscare/healthbot/internal/domain"
	"github.com/campuscare/healthbot/internal/service"
)

// Handler handles chat API requests
type Handler struct {
	chatService *service.ChatService
}

// NewHandler creates a new chat handler
func NewHandler(chatService *service.ChatService) *Handler {
	return &Handler{chatService: chatService}
}

// RegisterRoutes registers chat routes. The group is expected to carry the
// session middleware.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/chat", h.Chat)
	r.GET("/chat-history", h.History)
	r.GET("/health-suggestions", h.Suggestions)
}

// Chat handles one user message. Rejected and failed generations still
// answer 200 with user-facing text; the transport only fails on bad input
// or storage trouble.
func (h *Handler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	resp, err := h.chatService.HandleMessage(c.Request.Context(), c.GetString(middleware.ContextUserID), req.Message)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "I'm having trouble processing your request. Please try again."})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// History returns the user's recent chat turns
func (h *Handler) History(c *gin.Context) {
	resp, err := h.chatService.History(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chat history"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Suggestions returns personalized tips derived from recurring concerns
func (h *Handler) Suggestions(c *gin.Context) {
	resp, err := h.chatService.Suggestions(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate personalized suggestions"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
