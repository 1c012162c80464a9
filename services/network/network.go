package network

import (
	"context"
	"errors"
	"time"

	networkRepo "lawyerup/database/repository/network"
	"lawyerup/models"

	"github.com/google/uuid"
)

const feedLimit = 50

// ErrNoState signals the actor's profile carries no state, so there is no
// feed to post into.
var ErrNoState = errors.New("user state not defined")

const defaultSenderType = models.RoleLawyer

// NetworkService is the state-scoped community board: every user in the
// same state shares one feed.
type NetworkService interface {
	Feed(ctx context.Context, actor *models.User) ([]models.NetworkMessage, error)
	Post(ctx context.Context, actor *models.User, in models.NetworkMessageCreate) (*models.NetworkMessage, error)
}

// DefaultNetworkService is the production implementation.
type DefaultNetworkService struct {
	Repo networkRepo.NetworkRepository
}

// Feed returns the actor's state feed, newest first. A profile without a
// state reads an empty feed rather than an error.
func (s *DefaultNetworkService) Feed(ctx context.Context, actor *models.User) ([]models.NetworkMessage, error) {
	if actor.State == "" {
		return []models.NetworkMessage{}, nil
	}
	return s.Repo.ListByState(ctx, actor.State, feedLimit)
}

// Post publishes a message to the actor's state feed.
func (s *DefaultNetworkService) Post(ctx context.Context, actor *models.User, in models.NetworkMessageCreate) (*models.NetworkMessage, error) {
	if actor.State == "" {
		return nil, ErrNoState
	}

	senderName := actor.FullName
	if senderName == "" {
		senderName = "Unknown Lawyer"
	}
	senderType := actor.UserType
	if senderType == "" {
		senderType = defaultSenderType
	}

	m := &models.NetworkMessage{
		ID:         uuid.New().String(),
		SenderID:   actor.ID,
		SenderName: senderName,
		SenderType: senderType,
		State:      actor.State,
		Content:    in.Content,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.Repo.Insert(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
