package documentRepo

import (
	"context"

	"lawyerup/models"
)

// DocumentRepository defines persistence operations for document metadata.
type DocumentRepository interface {
	Create(ctx context.Context, d *models.Document) error
	// ListByUser returns the user's documents, optionally scoped to a case.
	ListByUser(ctx context.Context, userID, caseID string) ([]models.Document, error)
	GetByID(ctx context.Context, documentID, userID string) (*models.Document, error)
	// Share grants the target user read access. It reports whether the
	// document existed under the owner's scope.
	Share(ctx context.Context, documentID, ownerID, targetUserID string) (bool, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}
