package document

import (
	"context"
	"errors"
	"testing"

	"lawyerup/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDocumentRepo struct {
	docs map[string]*models.Document
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: make(map[string]*models.Document)}
}

func (r *fakeDocumentRepo) Create(ctx context.Context, d *models.Document) error {
	cp := *d
	r.docs[d.ID] = &cp
	return nil
}

func (r *fakeDocumentRepo) ListByUser(ctx context.Context, userID, caseID string) ([]models.Document, error) {
	var out []models.Document
	for _, d := range r.docs {
		if d.UserID == userID && (caseID == "" || d.CaseID == caseID) {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) GetByID(ctx context.Context, documentID, userID string) (*models.Document, error) {
	d, ok := r.docs[documentID]
	if !ok || d.UserID != userID {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r *fakeDocumentRepo) Share(ctx context.Context, documentID, ownerID, targetUserID string) (bool, error) {
	d, ok := r.docs[documentID]
	if !ok || d.UserID != ownerID {
		return false, nil
	}
	d.SharedWith = append(d.SharedWith, targetUserID)
	return true, nil
}

func (r *fakeDocumentRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	n, _ := r.ListByUser(ctx, userID, "")
	return int64(len(n)), nil
}

type fakeNotifier struct {
	sent []string
	err  error
}

func (n *fakeNotifier) Notify(ctx context.Context, userID, title, message, notificationType, relatedID string) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, userID)
	return nil
}

func (n *fakeNotifier) ListForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return nil, nil
}

func (n *fakeNotifier) MarkRead(ctx context.Context, notificationID, userID string) error {
	return nil
}

var owner = &models.User{ID: "lawyer-1", FullName: "Adaeze Okafor", UserType: models.RoleLawyer}

func TestShareDocument(t *testing.T) {
	repo := newFakeDocumentRepo()
	notifier := &fakeNotifier{}
	svc := &DefaultDocumentService{Repo: repo, Notifier: notifier}
	ctx := context.Background()

	d, err := svc.Create(ctx, owner, models.DocumentCreate{
		CaseID: "case-1", Title: "Affidavit", FileURL: "https://files.example/affidavit.pdf",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Share(ctx, owner, d.ID, "client-1"))
	assert.Contains(t, repo.docs[d.ID].SharedWith, "client-1")
	assert.Equal(t, []string{"client-1"}, notifier.sent)
}

func TestShareDocumentScopedToOwner(t *testing.T) {
	repo := newFakeDocumentRepo()
	svc := &DefaultDocumentService{Repo: repo, Notifier: &fakeNotifier{}}
	ctx := context.Background()

	d, err := svc.Create(ctx, owner, models.DocumentCreate{
		CaseID: "case-1", Title: "Affidavit", FileURL: "https://files.example/affidavit.pdf",
	})
	require.NoError(t, err)

	stranger := &models.User{ID: "lawyer-2", UserType: models.RoleLawyer}
	assert.ErrorIs(t, svc.Share(ctx, stranger, d.ID, "client-1"), ErrNotFound)
	assert.ErrorIs(t, svc.Share(ctx, owner, "missing", "client-1"), ErrNotFound)
}

func TestShareDocumentNotificationFailureSwallowed(t *testing.T) {
	repo := newFakeDocumentRepo()
	svc := &DefaultDocumentService{Repo: repo, Notifier: &fakeNotifier{err: errors.New("store down")}}
	ctx := context.Background()

	d, err := svc.Create(ctx, owner, models.DocumentCreate{
		CaseID: "case-1", Title: "Affidavit", FileURL: "https://files.example/affidavit.pdf",
	})
	require.NoError(t, err)

	// The share commits even when the notification store is down.
	assert.NoError(t, svc.Share(ctx, owner, d.ID, "client-1"))
	assert.Contains(t, repo.docs[d.ID].SharedWith, "client-1")
}
