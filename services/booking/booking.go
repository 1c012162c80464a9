package booking

import (
	"context"
	"fmt"
	"time"

	"lawyerup/models"
	"lawyerup/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultDurationMinutes = 30

// Create validates, prices and persists a consultation request from a
// client, then notifies the lawyer. A slot reservation is taken around the
// conflict check so two concurrent requests for the same slot cannot both
// pass it.
func (s *DefaultBookingService) Create(ctx context.Context, actor *models.User, in models.BookingCreate) (*models.Booking, error) {
	logger := utils.GetLogger()

	if actor == nil || actor.UserType != models.RoleClient {
		return nil, &PermissionError{Message: "only clients can book consultations"}
	}

	if in.DurationMinutes <= 0 {
		in.DurationMinutes = defaultDurationMinutes
	}
	if in.ConsultationType == "" {
		in.ConsultationType = models.ConsultationVideo
	}

	// Time parsing is a precondition: a malformed slot must not silently
	// disable conflict protection.
	slot, err := ParseSlot(in.Date, in.Time, in.DurationMinutes)
	if err != nil {
		return nil, err
	}

	if s.Reserver != nil {
		acquired, resErr := s.Reserver.Reserve(ctx, in.LawyerID, in.Date, in.Time)
		if resErr != nil {
			// Reservation is a hardening layer; if Redis is down we fall
			// back to the plain check rather than refusing bookings.
			logger.Warn("slot reservation unavailable, proceeding unreserved",
				zap.String("lawyer_id", in.LawyerID), zap.Error(resErr))
		} else if !acquired {
			return nil, &SchedulingConflictError{LawyerID: in.LawyerID, Date: in.Date, Time: in.Time}
		} else {
			defer s.Reserver.Release(ctx, in.LawyerID, in.Date, in.Time)
		}
	}

	if err := s.checkConflicts(ctx, in.LawyerID, in.Date, in.Time, slot); err != nil {
		return nil, err
	}

	priorTrials, err := s.Repo.CountFreeTrials(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("free trial lookup failed: %w", err)
	}
	price, isFreeTrial := priceFor(priorTrials, in.DurationMinutes, in.Price)

	location, meetLink := s.resolveChannel(ctx, in.ConsultationType, in.LawyerID)

	b := &models.Booking{
		ID:               uuid.New().String(),
		ClientID:         actor.ID,
		LawyerID:         in.LawyerID,
		Date:             in.Date,
		Time:             in.Time,
		DurationMinutes:  in.DurationMinutes,
		ConsultationType: in.ConsultationType,
		Description:      in.Description,
		Price:            price,
		IsFreeTrial:      isFreeTrial,
		MeetLink:         meetLink,
		Location:         location,
		Status:           models.BookingPending,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, err
	}

	// The creation path is the one call site where a notification failure
	// surfaces: the lawyer must learn about the request.
	if err := s.Notifier.Notify(ctx, in.LawyerID,
		"New Consultation Request",
		fmt.Sprintf("You have a new consultation request for %s at %s.", in.Date, in.Time),
		models.NotifyBookingRequest, b.ID,
	); err != nil {
		return nil, err
	}

	return b, nil
}

// checkConflicts rejects the slot when it overlaps one of the lawyer's
// calendar blocks or a live booking on the same date.
func (s *DefaultBookingService) checkConflicts(ctx context.Context, lawyerID, date, timeOfDay string, slot Interval) error {
	logger := utils.GetLogger()

	block, err := s.Events.FindConflicting(ctx, lawyerID, slot.Start, slot.End)
	if err != nil {
		return fmt.Errorf("calendar conflict check failed: %w", err)
	}
	if block != nil {
		return &SchedulingConflictError{LawyerID: lawyerID, Date: date, Time: timeOfDay}
	}

	existing, err := s.Repo.ListActiveByLawyerAndDate(ctx, lawyerID, date)
	if err != nil {
		return fmt.Errorf("booking conflict check failed: %w", err)
	}
	for _, other := range existing {
		otherSlot, err := ParseSlot(other.Date, other.Time, other.DurationMinutes)
		if err != nil {
			// A stored record with an unparseable slot cannot be compared;
			// skip it rather than block the request.
			logger.Debug("skipping booking with unparseable slot",
				zap.String("booking_id", other.ID), zap.Error(err))
			continue
		}
		if slot.Overlaps(otherSlot) {
			return &SchedulingConflictError{LawyerID: lawyerID, Date: date, Time: timeOfDay}
		}
	}
	return nil
}

// resolveChannel fetches the lawyer profile when the channel needs it and
// assigns the consultation channel. Profile lookup failures degrade to the
// pending-address placeholder instead of failing the booking.
func (s *DefaultBookingService) resolveChannel(ctx context.Context, consultationType, lawyerID string) (location, meetLink string) {
	var lawyer *models.User
	if consultationType == models.ConsultationInPerson {
		var err error
		lawyer, err = s.Users.GetByID(ctx, lawyerID)
		if err != nil {
			utils.GetLogger().Warn("lawyer profile lookup failed",
				zap.String("lawyer_id", lawyerID), zap.Error(err))
		}
	}
	return assignChannel(consultationType, lawyer)
}

// CreateGuest persists an unauthenticated intake booking. Declared status
// and payment fields are taken as-is; no pricing or conflict logic applies.
func (s *DefaultBookingService) CreateGuest(ctx context.Context, in models.GuestBookingCreate) (string, error) {
	if in.Status == "" {
		in.Status = models.BookingConfirmed
	}
	if in.PaymentStatus == "" {
		in.PaymentStatus = "paid"
	}
	if in.PaymentMethod == "" {
		in.PaymentMethod = "card"
	}

	g := &models.GuestBooking{
		ID:               uuid.New().String(),
		ClientID:         nil, // linked when the visitor signs up
		FullName:         in.FullName,
		Email:            in.Email,
		Phone:            in.Phone,
		ConsultationType: in.ConsultationType,
		Date:             in.Date,
		Time:             in.Time,
		Description:      in.Description,
		Amount:           in.Amount,
		Status:           in.Status,
		PaymentStatus:    in.PaymentStatus,
		PaymentMethod:    in.PaymentMethod,
		CardLastFour:     in.CardLastFour,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.Repo.CreateGuest(ctx, g); err != nil {
		return "", err
	}
	return g.ID, nil
}

// ListFor returns the actor's bookings: clients see what they requested,
// lawyers see what is assigned to them.
func (s *DefaultBookingService) ListFor(ctx context.Context, actor *models.User) ([]models.Booking, error) {
	if actor.UserType == models.RoleClient {
		return s.Repo.ListByClient(ctx, actor.ID)
	}
	return s.Repo.ListByLawyer(ctx, actor.ID)
}
