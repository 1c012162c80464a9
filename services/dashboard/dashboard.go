package dashboard

import (
	"context"

	bookingRepo "lawyerup/database/repository/booking"
	caseRepo "lawyerup/database/repository/cases"
	documentRepo "lawyerup/database/repository/document"
	"lawyerup/models"
	"lawyerup/utils"

	"go.uber.org/zap"
)

const dashboardListLimit = 5

// DashboardService builds the read-only aggregates behind the lawyer and
// client dashboards. Individual aggregate failures degrade to zero values
// rather than failing the whole view.
type DashboardService interface {
	ForLawyer(ctx context.Context, actor *models.User) (*models.LawyerDashboard, error)
	ForClient(ctx context.Context, actor *models.User) (*models.ClientDashboard, error)
}

// DefaultDashboardService is the production implementation.
type DefaultDashboardService struct {
	Bookings  bookingRepo.BookingRepository
	Cases     caseRepo.CaseRepository
	Documents documentRepo.DocumentRepository
}

// ForLawyer assembles a lawyer's practice summary.
func (s *DefaultDashboardService) ForLawyer(ctx context.Context, actor *models.User) (*models.LawyerDashboard, error) {
	logger := utils.GetLogger()
	d := &models.LawyerDashboard{
		UpcomingHearings: []models.Hearing{},
		RecentClients:    []models.RecentClient{},
	}

	if n, err := s.Cases.CountByStatus(ctx, actor.ID, "active"); err == nil {
		d.Stats.ActiveCases = n
	} else {
		logger.Warn("active case count failed", zap.Error(err))
	}
	if n, err := s.Cases.CountDistinctClients(ctx, actor.ID); err == nil {
		d.Stats.TotalClients = n
	} else {
		logger.Warn("distinct client count failed", zap.Error(err))
	}
	if n, err := s.Bookings.CountByLawyer(ctx, actor.ID); err == nil {
		d.Stats.Consultations = n
	} else {
		logger.Warn("consultation count failed", zap.Error(err))
	}
	if total, err := s.Bookings.RevenueByLawyer(ctx, actor.ID); err == nil {
		d.Stats.Revenue = total
	} else {
		logger.Warn("revenue aggregate failed", zap.Error(err))
	}

	if hearings, err := s.Cases.UpcomingHearings(ctx, actor.ID, dashboardListLimit); err == nil {
		for _, c := range hearings {
			court := c.Court
			if court == "" {
				court = "N/A"
			}
			d.UpcomingHearings = append(d.UpcomingHearings, models.Hearing{
				Date:  c.NextHearing,
				Court: court,
				Case:  c.Title,
			})
		}
	} else {
		logger.Warn("upcoming hearings lookup failed", zap.Error(err))
	}

	if recent, err := s.Cases.RecentCases(ctx, actor.ID, dashboardListLimit); err == nil {
		for _, c := range recent {
			name := c.ClientName
			if name == "" {
				name = "Unknown"
			}
			d.RecentClients = append(d.RecentClients, models.RecentClient{
				Name:   name,
				Case:   c.Title,
				Status: c.Status,
			})
		}
	} else {
		logger.Warn("recent cases lookup failed", zap.Error(err))
	}

	return d, nil
}

// ForClient assembles a client's activity summary.
func (s *DefaultDashboardService) ForClient(ctx context.Context, actor *models.User) (*models.ClientDashboard, error) {
	logger := utils.GetLogger()
	d := &models.ClientDashboard{
		RecentCases:      []models.Case{},
		UpcomingHearings: []models.Hearing{},
	}

	if n, err := s.Cases.CountByStatus(ctx, actor.ID, "active"); err == nil {
		d.Stats.ActiveCases = n
	} else {
		logger.Warn("active case count failed", zap.Error(err))
	}
	if n, err := s.Documents.CountByUser(ctx, actor.ID); err == nil {
		d.Stats.PendingDocuments = n
	} else {
		logger.Warn("document count failed", zap.Error(err))
	}
	if total, err := s.Bookings.TotalSpentByClient(ctx, actor.ID); err == nil {
		d.Stats.TotalSpent = total
	} else {
		logger.Warn("spend aggregate failed", zap.Error(err))
	}

	if recent, err := s.Cases.RecentCases(ctx, actor.ID, dashboardListLimit); err == nil {
		d.RecentCases = recent
	} else {
		logger.Warn("recent cases lookup failed", zap.Error(err))
	}
	if hearings, err := s.Cases.UpcomingHearings(ctx, actor.ID, dashboardListLimit); err == nil {
		for _, c := range hearings {
			d.UpcomingHearings = append(d.UpcomingHearings, models.Hearing{
				Date:  c.NextHearing,
				Court: c.Court,
				Case:  c.Title,
			})
		}
	} else {
		logger.Warn("upcoming hearings lookup failed", zap.Error(err))
	}

	return d, nil
}
