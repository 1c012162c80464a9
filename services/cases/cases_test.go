package cases

import (
	"context"
	"testing"

	"lawyerup/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCaseRepo struct {
	cases map[string]*models.Case
}

func newFakeCaseRepo() *fakeCaseRepo {
	return &fakeCaseRepo{cases: make(map[string]*models.Case)}
}

func (r *fakeCaseRepo) Create(ctx context.Context, c *models.Case) error {
	cp := *c
	r.cases[c.ID] = &cp
	return nil
}

func (r *fakeCaseRepo) ListByUser(ctx context.Context, userID string) ([]models.Case, error) {
	var out []models.Case
	for _, c := range r.cases {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCaseRepo) GetByID(ctx context.Context, caseID, userID string) (*models.Case, error) {
	c, ok := r.cases[caseID]
	if !ok || c.UserID != userID {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCaseRepo) Update(ctx context.Context, c *models.Case) (bool, error) {
	existing, ok := r.cases[c.ID]
	if !ok || existing.UserID != c.UserID {
		return false, nil
	}
	cp := *c
	r.cases[c.ID] = &cp
	return true, nil
}

func (r *fakeCaseRepo) CountByStatus(ctx context.Context, userID, status string) (int64, error) {
	return 0, nil
}

func (r *fakeCaseRepo) CountDistinctClients(ctx context.Context, userID string) (int64, error) {
	return 0, nil
}

func (r *fakeCaseRepo) UpcomingHearings(ctx context.Context, userID string, limit int64) ([]models.Case, error) {
	return nil, nil
}

func (r *fakeCaseRepo) RecentCases(ctx context.Context, userID string, limit int64) ([]models.Case, error) {
	return nil, nil
}

var lawyer = &models.User{ID: "lawyer-1", UserType: models.RoleLawyer}

func TestCreateCaseDefaults(t *testing.T) {
	svc := &DefaultCaseService{Repo: newFakeCaseRepo()}

	got, err := svc.Create(context.Background(), lawyer, models.CaseCreate{Title: "Land dispute"})
	require.NoError(t, err)
	assert.Equal(t, "active", got.Status)
	assert.Equal(t, "Unknown Client", got.ClientName)
	assert.Equal(t, "General", got.CaseType)
	assert.Equal(t, lawyer.ID, got.UserID)
}

func TestGetCaseScopedToOwner(t *testing.T) {
	repo := newFakeCaseRepo()
	svc := &DefaultCaseService{Repo: repo}
	ctx := context.Background()

	created, err := svc.Create(ctx, lawyer, models.CaseCreate{Title: "Land dispute"})
	require.NoError(t, err)

	other := &models.User{ID: "lawyer-2", UserType: models.RoleLawyer}
	_, err = svc.Get(ctx, other, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := svc.Get(ctx, lawyer, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestUpdateCasePreservesUnsetEnums(t *testing.T) {
	repo := newFakeCaseRepo()
	svc := &DefaultCaseService{Repo: repo}
	ctx := context.Background()

	created, err := svc.Create(ctx, lawyer, models.CaseCreate{
		Title: "Land dispute", Status: "active", ClientName: "Chidi Eze", CaseType: "Property",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, lawyer, created.ID, models.CaseCreate{
		Title: "Land dispute (amended)", Court: "Lagos High Court",
	})
	require.NoError(t, err)
	assert.Equal(t, "Land dispute (amended)", updated.Title)
	assert.Equal(t, "Lagos High Court", updated.Court)
	// Empty status, client and type keep their previous values.
	assert.Equal(t, "active", updated.Status)
	assert.Equal(t, "Chidi Eze", updated.ClientName)
	assert.Equal(t, "Property", updated.CaseType)
}
