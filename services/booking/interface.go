package booking

import (
	"context"
	"time"

	bookingRepo "lawyerup/database/repository/booking"
	eventRepo "lawyerup/database/repository/event"
	userRepo "lawyerup/database/repository/user"
	"lawyerup/models"
	"lawyerup/services/notification"
)

// BookingService owns the consultation booking lifecycle.
type BookingService interface {
	Create(ctx context.Context, actor *models.User, in models.BookingCreate) (*models.Booking, error)
	CreateGuest(ctx context.Context, in models.GuestBookingCreate) (string, error)
	ListFor(ctx context.Context, actor *models.User) ([]models.Booking, error)
	UpdateStatus(ctx context.Context, actor *models.User, bookingID, newStatus string) error
	Reschedule(ctx context.Context, actor *models.User, bookingID, newDate, newTime string) error
	Cancel(ctx context.Context, actor *models.User, bookingID, reason string) error
}

// ReminderScheduler schedules a consultation reminder to fire before the
// booking starts. Implementations must be safe for concurrent use.
type ReminderScheduler interface {
	ScheduleBookingReminder(booking *models.Booking, startAt time.Time) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Events    eventRepo.EventRepository
	Users     userRepo.UserRepository
	Notifier  notification.NotificationService
	Reserver  SlotReserver      // optional; nil disables slot reservation
	Reminders ReminderScheduler // optional; nil disables reminders
}
