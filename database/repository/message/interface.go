package messageRepo

import (
	"context"

	"lawyerup/models"
)

// MessageRepository defines persistence operations for chat messages.
type MessageRepository interface {
	Insert(ctx context.Context, m *models.Message) error
	// Conversation returns the full exchange between two users, oldest first.
	Conversation(ctx context.Context, userID, otherUserID string) ([]models.Message, error)
	// RecentMessages returns the latest message per counterpart, newest first.
	RecentMessages(ctx context.Context, userID string, limit int64) ([]models.Message, error)
}
