package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	notificationRepo "lawyerup/database/repository/notification"
	"lawyerup/models"

	"github.com/google/uuid"
)

// ErrNotFound signals the notification does not exist under the caller's scope.
var ErrNotFound = errors.New("notification not found")

// DefaultNotificationService is the production implementation backed by the
// notification store.
type DefaultNotificationService struct {
	Repo notificationRepo.NotificationRepository
}

// Notify persists a notification addressed to userID.
func (s *DefaultNotificationService) Notify(ctx context.Context, userID, title, message, notificationType, relatedID string) error {
	n := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      notificationType,
		RelatedID: relatedID,
		IsRead:    false,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, n); err != nil {
		return fmt.Errorf("notify %s: %w", userID, err)
	}
	return nil
}

// ListForUser returns the user's notifications, newest first.
func (s *DefaultNotificationService) ListForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// MarkRead flips the read flag on the user's own notification.
func (s *DefaultNotificationService) MarkRead(ctx context.Context, notificationID, userID string) error {
	updated, err := s.Repo.MarkRead(ctx, notificationID, userID)
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}
