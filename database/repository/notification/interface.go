package notificationRepo

import (
	"context"

	"lawyerup/models"
)

// NotificationRepository defines persistence operations for notifications.
// Records are append-only; only the read flag is ever updated.
type NotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByUser(ctx context.Context, userID string) ([]models.Notification, error)
	// MarkRead flips the read flag if the notification belongs to the user.
	// It reports whether a document was actually updated.
	MarkRead(ctx context.Context, notificationID, userID string) (bool, error)
}
