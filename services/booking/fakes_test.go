package booking

import (
	"context"
	"errors"
	"time"

	"lawyerup/models"

	"go.mongodb.org/mongo-driver/bson"
)

// fakeBookingRepo is an in-memory BookingRepository.
type fakeBookingRepo struct {
	bookings   map[string]*models.Booking
	guests     map[string]*models.GuestBooking
	freeTrials int64
	createErr  error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{
		bookings: make(map[string]*models.Booking),
		guests:   make(map[string]*models.GuestBooking),
	}
}

func (r *fakeBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) CreateGuest(ctx context.Context, g *models.GuestBooking) error {
	cp := *g
	r.guests[g.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) ListByClient(ctx context.Context, clientID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ClientID == clientID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByLawyer(ctx context.Context, lawyerID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.LawyerID == lawyerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListActiveByLawyerAndDate(ctx context.Context, lawyerID, date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.LawyerID == lawyerID && b.Date == date && b.Status != models.BookingCancelled {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) CountFreeTrials(ctx context.Context, clientID string) (int64, error) {
	return r.freeTrials, nil
}

func (r *fakeBookingRepo) SetStatus(ctx context.Context, id, status string) error {
	b, ok := r.bookings[id]
	if !ok {
		return errors.New("booking not found")
	}
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) SetSchedule(ctx context.Context, id, date, timeOfDay, status string) error {
	b, ok := r.bookings[id]
	if !ok {
		return errors.New("booking not found")
	}
	b.Date = date
	b.Time = timeOfDay
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) SetCancelled(ctx context.Context, id, reason string) error {
	b, ok := r.bookings[id]
	if !ok {
		return errors.New("booking not found")
	}
	b.Status = models.BookingCancelled
	b.CancelReason = reason
	return nil
}

func (r *fakeBookingRepo) CountByLawyer(ctx context.Context, lawyerID string) (int64, error) {
	n, _ := r.ListByLawyer(ctx, lawyerID)
	return int64(len(n)), nil
}

func (r *fakeBookingRepo) RevenueByLawyer(ctx context.Context, lawyerID string) (float64, error) {
	return 0, nil
}

func (r *fakeBookingRepo) TotalSpentByClient(ctx context.Context, clientID string) (float64, error) {
	return 0, nil
}

// fakeEventRepo is an in-memory EventRepository.
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
	for _, e := range r.events {
		if e.LawyerID == lawyerID && e.StartTime.Before(end) && e.EndTime.After(start) {
			cp := e
			return &cp, nil
		}
	}
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

// fakeUserRepo resolves users from a fixed map.
type fakeUserRepo struct {
	users map[string]*models.User
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByIDWithProjection(ctx context.Context, id string, projection bson.M) (*models.User, error) {
	return r.GetByID(ctx, id)
}

// sentNotification captures one Notify call.
type sentNotification struct {
	UserID, Title, Message, Type, RelatedID string
}

// fakeNotifier records notifications and optionally fails.
type fakeNotifier struct {
	sent []sentNotification
	err  error
}

func (n *fakeNotifier) Notify(ctx context.Context, userID, title, message, notificationType, relatedID string) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, sentNotification{userID, title, message, notificationType, relatedID})
	return nil
}

func (n *fakeNotifier) ListForUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return nil, nil
}

func (n *fakeNotifier) MarkRead(ctx context.Context, notificationID, userID string) error {
	return nil
}

// fakeReserver scripts the slot reservation outcome.
type fakeReserver struct {
	acquired bool
	err      error
	released int
}

func (r *fakeReserver) Reserve(ctx context.Context, lawyerID, date, timeOfDay string) (bool, error) {
	return r.acquired, r.err
}

func (r *fakeReserver) Release(ctx context.Context, lawyerID, date, timeOfDay string) {
	r.released++
}

// fakeReminderScheduler records scheduled reminders.
type fakeReminderScheduler struct {
	scheduled []string
	fireAts   []time.Time
}

func (f *fakeReminderScheduler) ScheduleBookingReminder(b *models.Booking, fireAt time.Time) error {
	f.scheduled = append(f.scheduled, b.ID)
	f.fireAts = append(f.fireAts, fireAt)
	return nil
}

func newTestService(repo *fakeBookingRepo, events *fakeEventRepo, users *fakeUserRepo, notifier *fakeNotifier) *DefaultBookingService {
	if repo == nil {
		repo = newFakeBookingRepo()
	}
	if events == nil {
		events = &fakeEventRepo{}
	}
	if users == nil {
		users = &fakeUserRepo{users: map[string]*models.User{}}
	}
	if notifier == nil {
		notifier = &fakeNotifier{}
	}
	return &DefaultBookingService{
		Repo:     repo,
		Events:   events,
		Users:    users,
		Notifier: notifier,
	}
}
