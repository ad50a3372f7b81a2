package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/campuscare/healthbot/internal/domain"
)

// ChatRepository handles chat turn persistence
type ChatRepository struct {
	db *DB
}

// NewChatRepository creates a new chat repository
func NewChatRepository(db *DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// Append stores one completed exchange. Every generation attempt is logged,
// rejected and failed ones included, so future personalization sees them.
func (r *ChatRepository) Append(turn *domain.ChatTurn) error {
	if turn.ID == "" {
		turn.ID = uuid.New().String()
	}
	turn.CreatedAt = time.Now()

	_, err := r.db.Exec(`
		INSERT INTO chats (id, user_id, user_message, bot_response, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, turn.ID, turn.UserID, turn.UserMessage, turn.BotResponse, turn.CreatedAt)

	return err
}

// RecentTurns returns up to limit of the user's most recent turns,
// oldest-first. The query selects the newest rows and the result is reversed
// so every consumer sees one consistent ordering.
func (r *ChatRepository) RecentTurns(userID string, limit int) ([]domain.ChatTurn, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, user_message, bot_response, created_at
		FROM chats WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC LIMIT ?
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var turns []domain.ChatTurn
	for rows.Next() {
		var turn domain.ChatTurn
		if err := rows.Scan(&turn.ID, &turn.UserID, &turn.UserMessage,
			&turn.BotResponse, &turn.CreatedAt); err != nil {
			return nil, err
		}
		turns = append(turns, turn)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Newest-first from the query; flip to oldest-first.
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}

	return turns, nil
}

// CountForUser returns the total number of stored turns for a user
func (r *ChatRepository) CountForUser(userID string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM chats WHERE user_id = ?`, userID).Scan(&count)
	return count, err
}
