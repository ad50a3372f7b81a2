package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/campuscare/healthbot/internal/domain"
	"github.com/campuscare/healthbot/internal/insight"
	"github.com/campuscare/healthbot/internal/repository"
)

const (
	historyWindow     = 10
	historyPageSize   = 50
	suggestionsWindow = 20
)

// ChatService sequences history fetch, generation and turn logging for one
// inbound message.
type ChatService struct {
	chats     *repository.ChatRepository
	generator *Generator
	logger    *zap.Logger
}

// NewChatService creates a new chat service
func NewChatService(chats *repository.ChatRepository, generator *Generator, logger *zap.Logger) *ChatService {
	return &ChatService{chats: chats, generator: generator, logger: logger}
}

// HandleMessage runs the generation pipeline for one user message and
// persists the exchange. Rejected and failed exchanges are logged too, so
// they remain part of the user's history for future context.
func (s *ChatService) HandleMessage(ctx context.Context, userID, message string) (*domain.ChatResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, domain.ErrInvalidRequest
	}

	history, err := s.chats.RecentTurns(userID, historyWindow)
	if err != nil {
		s.logger.Error("failed to fetch chat history", zap.String("user_id", userID), zap.Error(err))
		history = nil
	}

	result := s.generator.Generate(ctx, message, history)
	if !result.OK() {
		s.logger.Info("generation did not succeed",
			zap.String("user_id", userID),
			zap.String("outcome", string(result.Kind)),
		)
	}

	turn := &domain.ChatTurn{
		UserID:      userID,
		UserMessage: message,
		BotResponse: result.Response,
	}
	if err := s.chats.Append(turn); err != nil {
		s.logger.Error("failed to save chat turn", zap.String("user_id", userID), zap.Error(err))
	}

	return &domain.ChatResponse{Success: true, Response: result.Response}, nil
}

// History returns the user's recent turns, most recent first.
func (s *ChatService) History(ctx context.Context, userID string) (*domain.HistoryResponse, error) {
	turns, err := s.chats.RecentTurns(userID, historyPageSize)
	if err != nil {
		return nil, err
	}

	// Oldest-first from the repository; the client shows newest at the top.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}

	return &domain.HistoryResponse{Success: true, Chats: turns}, nil
}

// Suggestions derives personalized tips from the user's recurring concerns.
func (s *ChatService) Suggestions(ctx context.Context, userID string) (*domain.SuggestionsResponse, error) {
	turns, err := s.chats.RecentTurns(userID, suggestionsWindow)
	if err != nil {
		return nil, err
	}

	patterns := insight.AnalyzePatterns(turns)
	return &domain.SuggestionsResponse{
		Success:     true,
		Suggestions: insight.DeriveSuggestions(patterns),
		Patterns:    patterns,
	}, nil
}
