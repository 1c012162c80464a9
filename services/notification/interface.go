package notification

import (
	"context"

	"lawyerup/models"
)

// NotificationService creates and reads counterpart-facing notifications.
// Notify is synchronous: it either persists the record or returns the store
// error. Whether a failure rolls back the triggering operation is the
// caller's decision.
type NotificationService interface {
	Notify(ctx context.Context, userID, title, message, notificationType, relatedID string) error
	ListForUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, notificationID, userID string) error
}
