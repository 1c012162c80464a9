package booking

import (
	"context"
	"fmt"
	"time"

	"lawyerup/config"
	"lawyerup/models"
	"lawyerup/utils"

	"go.uber.org/zap"
)

// allowedTransitions is the booking state machine. cancelled is terminal.
var allowedTransitions = map[string][]string{
	models.BookingPending:     {models.BookingConfirmed, models.BookingRescheduled, models.BookingCancelled},
	models.BookingConfirmed:   {models.BookingRescheduled, models.BookingCancelled},
	models.BookingRescheduled: {models.BookingConfirmed, models.BookingCancelled},
	models.BookingCancelled:   {},
}

func transitionAllowed(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// UpdateStatus moves a booking through its lifecycle. Only the assigned
// lawyer may invoke it; the client learns about the decision through a
// notification.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, actor *models.User, bookingID, newStatus string) error {
	if actor == nil || !actor.IsLawyer() {
		return &PermissionError{Message: "only lawyers can update booking status"}
	}
	if _, known := allowedTransitions[newStatus]; !known {
		return &InvalidTransitionError{From: "", To: newStatus}
	}

	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if b == nil {
		return &NotFoundError{Resource: "booking", ID: bookingID}
	}
	if b.LawyerID != actor.ID {
		return &PermissionError{Message: "booking is assigned to another lawyer"}
	}
	if !transitionAllowed(b.Status, newStatus) {
		return &InvalidTransitionError{From: b.Status, To: newStatus}
	}

	if err := s.Repo.SetStatus(ctx, bookingID, newStatus); err != nil {
		return err
	}

	title := fmt.Sprintf("Consultation Status: %s", newStatus)
	if newStatus == models.BookingConfirmed {
		title = "Consultation Accepted"
	}
	s.notifyBestEffort(ctx, b.ClientID, title,
		fmt.Sprintf("Your consultation for %s has been %s.", b.Date, newStatus),
		"booking_"+newStatus, bookingID)

	if newStatus == models.BookingConfirmed {
		s.scheduleReminder(b)
	}
	return nil
}

// Reschedule overwrites the booking's slot and marks it rescheduled.
// The new slot is not re-validated against the lawyer's calendar.
func (s *DefaultBookingService) Reschedule(ctx context.Context, actor *models.User, bookingID, newDate, newTime string) error {
	if actor == nil || !actor.IsLawyer() {
		return &PermissionError{Message: "only lawyers can reschedule consultations"}
	}

	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if b == nil {
		return &NotFoundError{Resource: "booking", ID: bookingID}
	}
	if b.LawyerID != actor.ID {
		return &PermissionError{Message: "booking is assigned to another lawyer"}
	}
	if b.Status == models.BookingCancelled {
		return &InvalidTransitionError{From: b.Status, To: models.BookingRescheduled}
	}

	if err := s.Repo.SetSchedule(ctx, bookingID, newDate, newTime, models.BookingRescheduled); err != nil {
		return err
	}

	s.notifyBestEffort(ctx, b.ClientID, "Consultation Rescheduled",
		fmt.Sprintf("Your consultation has been rescheduled to %s at %s.", newDate, newTime),
		models.NotifyBookingRescheduled, bookingID)
	return nil
}

// Cancel terminates a booking. The assigned lawyer and the owning client
// may each cancel their own booking; anyone else is rejected.
func (s *DefaultBookingService) Cancel(ctx context.Context, actor *models.User, bookingID, reason string) error {
	if actor == nil {
		return &PermissionError{Message: "not authorized to cancel this booking"}
	}

	b, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if b == nil {
		return &NotFoundError{Resource: "booking", ID: bookingID}
	}

	var counterpart string
	switch {
	case actor.IsLawyer() && b.LawyerID == actor.ID:
		counterpart = b.ClientID
	case actor.UserType == models.RoleClient && b.ClientID == actor.ID:
		counterpart = b.LawyerID
	default:
		return &PermissionError{Message: "not authorized to cancel this booking"}
	}

	if b.Status == models.BookingCancelled {
		return &InvalidTransitionError{From: b.Status, To: models.BookingCancelled}
	}

	if err := s.Repo.SetCancelled(ctx, bookingID, reason); err != nil {
		return err
	}

	message := fmt.Sprintf("Consultation for %s has been cancelled.", b.Date)
	if reason != "" {
		message = fmt.Sprintf("%s Reason: %s", message, reason)
	}
	s.notifyBestEffort(ctx, counterpart, "Consultation Cancelled", message,
		models.NotifyBookingCancelled, bookingID)
	return nil
}

// notifyBestEffort records a lifecycle notification. Failures are logged
// and swallowed: the state change has already committed and is not rolled
// back for a missed notification.
func (s *DefaultBookingService) notifyBestEffort(ctx context.Context, userID, title, message, notificationType, relatedID string) {
	if err := s.Notifier.Notify(ctx, userID, title, message, notificationType, relatedID); err != nil {
		utils.GetLogger().Warn("lifecycle notification failed",
			zap.String("user_id", userID),
			zap.String("type", notificationType),
			zap.Error(err))
	}
}

// scheduleReminder queues a consultation reminder ahead of the slot start.
// Unparseable or already-past slots are skipped.
func (s *DefaultBookingService) scheduleReminder(b *models.Booking) {
	if s.Reminders == nil {
		return
	}
	slot, err := ParseSlot(b.Date, b.Time, b.DurationMinutes)
	if err != nil {
		return
	}
	lead := time.Duration(config.AppConfig.ReminderLeadMins) * time.Minute
	if lead <= 0 {
		lead = time.Hour
	}
	fireAt := slot.Start.Add(-lead)
	if fireAt.Before(time.Now()) {
		return
	}
	if err := s.Reminders.ScheduleBookingReminder(b, fireAt); err != nil {
		utils.GetLogger().Warn("failed to schedule consultation reminder",
			zap.String("booking_id", b.ID), zap.Error(err))
	}
}
