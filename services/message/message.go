package message

import (
	"context"
	"time"

	messageRepo "lawyerup/database/repository/message"
	userRepo "lawyerup/database/repository/user"
	"lawyerup/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

const recentConversationLimit = 20

// MessageService is the chat stub: send, history, recent conversations.
// Real-time transport is out of scope; this is store-and-poll.
type MessageService interface {
	Send(ctx context.Context, actor *models.User, in models.MessageCreate) (*models.Message, error)
	Conversation(ctx context.Context, actor *models.User, otherUserID string) ([]models.Message, error)
	Recents(ctx context.Context, actor *models.User) ([]models.Conversation, error)
}

// DefaultMessageService is the production implementation.
type DefaultMessageService struct {
	Repo  messageRepo.MessageRepository
	Users userRepo.UserRepository
}

// Send stores a message from the actor to the receiver.
func (s *DefaultMessageService) Send(ctx context.Context, actor *models.User, in models.MessageCreate) (*models.Message, error) {
	m := &models.Message{
		ID:         uuid.New().String(),
		SenderID:   actor.ID,
		ReceiverID: in.ReceiverID,
		Content:    in.Content,
		Timestamp:  time.Now().UTC(),
		Read:       false,
	}
	if err := s.Repo.Insert(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Conversation returns the actor's exchange with another user, oldest first.
func (s *DefaultMessageService) Conversation(ctx context.Context, actor *models.User, otherUserID string) ([]models.Message, error) {
	return s.Repo.Conversation(ctx, actor.ID, otherUserID)
}

// Recents summarizes the actor's latest exchange per counterpart.
func (s *DefaultMessageService) Recents(ctx context.Context, actor *models.User) ([]models.Conversation, error) {
	recent, err := s.Repo.RecentMessages(ctx, actor.ID, recentConversationLimit)
	if err != nil {
		return nil, err
	}

	conversations := make([]models.Conversation, 0, len(recent))
	for _, m := range recent {
		otherID := m.SenderID
		if m.SenderID == actor.ID {
			otherID = m.ReceiverID
		}

		name := "Unknown User"
		other, err := s.Users.GetByIDWithProjection(ctx, otherID, bson.M{"id": 1, "full_name": 1})
		if err == nil && other != nil && other.FullName != "" {
			name = other.FullName
		}

		avatar := "?"
		if name != "" {
			avatar = string([]rune(name)[0])
		}

		conversations = append(conversations, models.Conversation{
			UserID:    otherID,
			Name:      name,
			Message:   m.Content,
			Timestamp: m.Timestamp,
			Avatar:    avatar,
		})
	}
	return conversations, nil
}
