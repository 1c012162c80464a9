package eventRepo

import (
	"context"
	"time"

	"lawyerup/models"
)

// EventRepository defines persistence operations for calendar blocks.
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	ListByLawyer(ctx context.Context, lawyerID string) ([]models.Event, error)
	// FindConflicting returns a calendar block of the lawyer overlapping
	// the half-open interval [start, end), or nil when none exists.
	FindConflicting(ctx context.Context, lawyerID string, start, end time.Time) (*models.Event, error)
	// Delete removes the block if it belongs to the lawyer. It reports
	// whether a document was actually deleted.
	Delete(ctx context.Context, eventID, lawyerID string) (bool, error)
}
