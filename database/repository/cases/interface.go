package caseRepo

import (
	"context"

	"lawyerup/models"
)

// CaseRepository defines persistence operations for legal cases.
type CaseRepository interface {
	Create(ctx context.Context, c *models.Case) error
	ListByUser(ctx context.Context, userID string) ([]models.Case, error)
	GetByID(ctx context.Context, caseID, userID string) (*models.Case, error)
	Update(ctx context.Context, c *models.Case) (bool, error)

	// Dashboard aggregates.
	CountByStatus(ctx context.Context, userID, status string) (int64, error)
	CountDistinctClients(ctx context.Context, userID string) (int64, error)
	UpcomingHearings(ctx context.Context, userID string, limit int64) ([]models.Case, error)
	RecentCases(ctx context.Context, userID string, limit int64) ([]models.Case, error)
}
