package event

import (
	"context"
	"errors"
	"time"

	eventRepo "lawyerup/database/repository/event"
	"lawyerup/models"

	"github.com/google/uuid"
)

// ErrPermission signals the caller may not manage a calendar.
var ErrPermission = errors.New("only lawyers can manage calendar events")

// ErrNotFound signals the event does not exist under the caller's scope.
var ErrNotFound = errors.New("event not found")

// ErrInvalidInterval signals a block whose end does not follow its start.
var ErrInvalidInterval = errors.New("event end_time must be after start_time")

// EventService manages a lawyer's calendar blocks.
type EventService interface {
	Create(ctx context.Context, actor *models.User, in models.EventCreate) (*models.Event, error)
	ListFor(ctx context.Context, actor *models.User) ([]models.Event, error)
	Delete(ctx context.Context, actor *models.User, eventID string) error
}

// DefaultEventService is the production implementation.
type DefaultEventService struct {
	Repo eventRepo.EventRepository
}

// Create registers a calendar block for the acting lawyer.
func (s *DefaultEventService) Create(ctx context.Context, actor *models.User, in models.EventCreate) (*models.Event, error) {
	if actor == nil || !actor.IsLawyer() {
		return nil, ErrPermission
	}
	if !in.EndTime.After(in.StartTime) {
		return nil, ErrInvalidInterval
	}

	e := &models.Event{
		ID:          uuid.New().String(),
		LawyerID:    actor.ID,
		Title:       in.Title,
		Type:        in.Type,
		StartTime:   in.StartTime,
		EndTime:     in.EndTime,
		Description: in.Description,
		CaseID:      in.CaseID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// ListFor returns the actor's own calendar blocks.
func (s *DefaultEventService) ListFor(ctx context.Context, actor *models.User) ([]models.Event, error) {
	return s.Repo.ListByLawyer(ctx, actor.ID)
}

// Delete removes a block owned by the actor.
func (s *DefaultEventService) Delete(ctx context.Context, actor *models.User, eventID string) error {
	deleted, err := s.Repo.Delete(ctx, eventID, actor.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
