package cases

import (
	"context"
	"errors"
	"time"

	caseRepo "lawyerup/database/repository/cases"
	"lawyerup/models"

	"github.com/google/uuid"
)

// ErrNotFound signals the case does not exist under the caller's scope.
var ErrNotFound = errors.New("case not found")

// CaseService manages legal cases owned by a user.
type CaseService interface {
	Create(ctx context.Context, actor *models.User, in models.CaseCreate) (*models.Case, error)
	ListFor(ctx context.Context, actor *models.User) ([]models.Case, error)
	Get(ctx context.Context, actor *models.User, caseID string) (*models.Case, error)
	Update(ctx context.Context, actor *models.User, caseID string, in models.CaseCreate) (*models.Case, error)
}

// DefaultCaseService is the production implementation.
type DefaultCaseService struct {
	Repo caseRepo.CaseRepository
}

// Create opens a new case owned by the actor.
func (s *DefaultCaseService) Create(ctx context.Context, actor *models.User, in models.CaseCreate) (*models.Case, error) {
	now := time.Now().UTC()
	c := &models.Case{
		ID:          uuid.New().String(),
		UserID:      actor.ID,
		Title:       in.Title,
		CaseNumber:  in.CaseNumber,
		Description: in.Description,
		Status:      in.Status,
		ClientName:  in.ClientName,
		CaseType:    in.CaseType,
		NextHearing: in.NextHearing,
		Court:       in.Court,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if c.Status == "" {
		c.Status = "active"
	}
	if c.ClientName == "" {
		c.ClientName = "Unknown Client"
	}
	if c.CaseType == "" {
		c.CaseType = "General"
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListFor returns the actor's cases.
func (s *DefaultCaseService) ListFor(ctx context.Context, actor *models.User) ([]models.Case, error) {
	return s.Repo.ListByUser(ctx, actor.ID)
}

// Get returns one of the actor's cases by id.
func (s *DefaultCaseService) Get(ctx context.Context, actor *models.User, caseID string) (*models.Case, error) {
	c, err := s.Repo.GetByID(ctx, caseID, actor.ID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

// Update overwrites the mutable fields of one of the actor's cases.
func (s *DefaultCaseService) Update(ctx context.Context, actor *models.User, caseID string, in models.CaseCreate) (*models.Case, error) {
	c, err := s.Get(ctx, actor, caseID)
	if err != nil {
		return nil, err
	}

	c.Title = in.Title
	c.CaseNumber = in.CaseNumber
	c.Description = in.Description
	if in.Status != "" {
		c.Status = in.Status
	}
	if in.ClientName != "" {
		c.ClientName = in.ClientName
	}
	if in.CaseType != "" {
		c.CaseType = in.CaseType
	}
	c.NextHearing = in.NextHearing
	c.Court = in.Court
	c.UpdatedAt = time.Now().UTC()

	updated, err := s.Repo.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrNotFound
	}
	return c, nil
}
