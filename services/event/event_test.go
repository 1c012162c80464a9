package event

import (
	"context"
	"testing"
	"time"

	"lawyerup/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventRepo struct {
	events []models.Event
}

func (r *fakeEventRepo) Create(ctx context.Context, e *models.Event) error {
	r.events = append(r.events, *e)
	return nil
}

func (r *fakeEventRepo) ListByLawyer(ctx context.Context, lawyerID string) ([]models.Event, error) {
	var out []models.Event
	for _, e := range r.events {
		if e.LawyerID == lawyerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) FindConflicting(ctx context.Context, lawyerID string, start, end time.Time) (*models.Event, error) {
	return nil, nil
}

func (r *fakeEventRepo) Delete(ctx context.Context, eventID, lawyerID string) (bool, error) {
	for i, e := range r.events {
		if e.ID == eventID && e.LawyerID == lawyerID {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

var lawyer = &models.User{ID: "lawyer-1", UserType: models.RoleLawyer}

func TestCreateEvent(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := &DefaultEventService{Repo: repo}
	start := time.Now().Add(24 * time.Hour)

	got, err := svc.Create(context.Background(), lawyer, models.EventCreate{
		Title:     "High Court hearing",
		Type:      models.EventHearing,
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, got.ID)
	assert.Equal(t, lawyer.ID, got.LawyerID)
	assert.Len(t, repo.events, 1)
}

func TestCreateEventRejectsClients(t *testing.T) {
	svc := &DefaultEventService{Repo: &fakeEventRepo{}}
	client := &models.User{ID: "client-1", UserType: models.RoleClient}
	start := time.Now()

	_, err := svc.Create(context.Background(), client, models.EventCreate{
		Title: "Block", Type: models.EventPersonal,
		StartTime: start, EndTime: start.Add(time.Hour),
	})
	assert.ErrorIs(t, err, ErrPermission)
}

func TestCreateEventRejectsInvertedInterval(t *testing.T) {
	svc := &DefaultEventService{Repo: &fakeEventRepo{}}
	start := time.Now()

	for _, end := range []time.Time{start, start.Add(-time.Hour)} {
		_, err := svc.Create(context.Background(), lawyer, models.EventCreate{
			Title: "Block", Type: models.EventPersonal,
			StartTime: start, EndTime: end,
		})
		assert.ErrorIs(t, err, ErrInvalidInterval)
	}
}

func TestDeleteEventScopedToOwner(t *testing.T) {
	repo := &fakeEventRepo{events: []models.Event{{ID: "ev-1", LawyerID: lawyer.ID}}}
	svc := &DefaultEventService{Repo: repo}
	ctx := context.Background()

	other := &models.User{ID: "lawyer-2", UserType: models.RoleLawyer}
	assert.ErrorIs(t, svc.Delete(ctx, other, "ev-1"), ErrNotFound)
	assert.Len(t, repo.events, 1)

	require.NoError(t, svc.Delete(ctx, lawyer, "ev-1"))
	assert.Empty(t, repo.events)
}
