package document

import (
	"context"
	"errors"
	"fmt"
	"time"

	documentRepo "lawyerup/database/repository/document"
	"lawyerup/models"
	"lawyerup/services/notification"
	"lawyerup/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound signals the document does not exist under the caller's scope.
var ErrNotFound = errors.New("document not found")

// DocumentService manages document metadata and sharing. File bytes live in
// an external store; only references move through here.
type DocumentService interface {
	Create(ctx context.Context, actor *models.User, in models.DocumentCreate) (*models.Document, error)
	ListFor(ctx context.Context, actor *models.User, caseID string) ([]models.Document, error)
	Share(ctx context.Context, actor *models.User, documentID, targetUserID string) error
}

// DefaultDocumentService is the production implementation.
type DefaultDocumentService struct {
	Repo     documentRepo.DocumentRepository
	Notifier notification.NotificationService
}

// Create registers a document record owned by the actor.
func (s *DefaultDocumentService) Create(ctx context.Context, actor *models.User, in models.DocumentCreate) (*models.Document, error) {
	d := &models.Document{
		ID:         uuid.New().String(),
		CaseID:     in.CaseID,
		UserID:     actor.ID,
		Title:      in.Title,
		FileURL:    in.FileURL,
		FileType:   in.FileType,
		SharedWith: []string{},
		UploadedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// ListFor returns the actor's documents, optionally scoped to a case.
func (s *DefaultDocumentService) ListFor(ctx context.Context, actor *models.User, caseID string) ([]models.Document, error) {
	return s.Repo.ListByUser(ctx, actor.ID, caseID)
}

// Share grants the target user access to one of the actor's documents and
// notifies them. The share itself is the primary mutation; a failed
// notification is logged and swallowed.
func (s *DefaultDocumentService) Share(ctx context.Context, actor *models.User, documentID, targetUserID string) error {
	d, err := s.Repo.GetByID(ctx, documentID, actor.ID)
	if err != nil {
		return err
	}
	if d == nil {
		return ErrNotFound
	}

	shared, err := s.Repo.Share(ctx, documentID, actor.ID, targetUserID)
	if err != nil {
		return err
	}
	if !shared {
		return ErrNotFound
	}

	sharer := actor.FullName
	if sharer == "" {
		sharer = "Legal Partner"
	}
	if err := s.Notifier.Notify(ctx, targetUserID,
		"Document Shared",
		fmt.Sprintf("Lawyer %s shared a document: %s", sharer, d.Title),
		models.NotifyDocumentShared, documentID,
	); err != nil {
		utils.GetLogger().Warn("document share notification failed",
			zap.String("document_id", documentID), zap.Error(err))
	}
	return nil
}
