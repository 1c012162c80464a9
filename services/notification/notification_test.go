package notification

import (
	"context"
	"testing"

	"lawyerup/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotificationRepo struct {
	created []models.Notification
	read    map[string]bool
}

func (r *fakeNotificationRepo) Create(ctx context.Context, n *models.Notification) error {
	r.created = append(r.created, *n)
	return nil
}

func (r *fakeNotificationRepo) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range r.created {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeNotificationRepo) MarkRead(ctx context.Context, notificationID, userID string) (bool, error) {
	for _, n := range r.created {
		if n.ID == notificationID && n.UserID == userID {
			if r.read == nil {
				r.read = map[string]bool{}
			}
			r.read[notificationID] = true
			return true, nil
		}
	}
	return false, nil
}

func TestNotifyPersistsRecord(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := &DefaultNotificationService{Repo: repo}

	err := svc.Notify(context.Background(), "user-1", "New Consultation Request",
		"You have a new consultation request.", models.NotifyBookingRequest, "bk-1")
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.NotEmpty(t, n.ID)
	assert.Equal(t, "user-1", n.UserID)
	assert.Equal(t, models.NotifyBookingRequest, n.Type)
	assert.Equal(t, "bk-1", n.RelatedID)
	assert.False(t, n.IsRead)
}

func TestMarkReadScopedToOwner(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := &DefaultNotificationService{Repo: repo}
	ctx := context.Background()

	require.NoError(t, svc.Notify(ctx, "user-1", "t", "m", models.NotifyBookingConfirmed, "bk-1"))
	id := repo.created[0].ID

	assert.ErrorIs(t, svc.MarkRead(ctx, id, "someone-else"), ErrNotFound)
	assert.NoError(t, svc.MarkRead(ctx, id, "user-1"))
	assert.True(t, repo.read[id])
}
