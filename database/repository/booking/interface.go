package bookingRepo

import (
	"context"

	"lawyerup/models"
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	CreateGuest(ctx context.Context, booking *models.GuestBooking) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	ListByClient(ctx context.Context, clientID string) ([]models.Booking, error)
	ListByLawyer(ctx context.Context, lawyerID string) ([]models.Booking, error)
	ListActiveByLawyerAndDate(ctx context.Context, lawyerID, date string) ([]models.Booking, error)
	CountFreeTrials(ctx context.Context, clientID string) (int64, error)
	SetStatus(ctx context.Context, bookingID, status string) error
	SetSchedule(ctx context.Context, bookingID, date, timeOfDay, status string) error
	SetCancelled(ctx context.Context, bookingID, reason string) error

	// Dashboard aggregates.
	CountByLawyer(ctx context.Context, lawyerID string) (int64, error)
	RevenueByLawyer(ctx context.Context, lawyerID string) (float64, error)
	TotalSpentByClient(ctx context.Context, clientID string) (float64, error)
}
