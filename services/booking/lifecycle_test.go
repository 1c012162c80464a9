package booking

import (
	"context"
	"testing"
	"time"

	"lawyerup/config"
	"lawyerup/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedBooking(repo *fakeBookingRepo, status string) *models.Booking {
	b := &models.Booking{
		ID:              "bk-1",
		ClientID:        testClient.ID,
		LawyerID:        testLawyer.ID,
		Date:            "2099-09-10",
		Time:            "10:00",
		DurationMinutes: 30,
		Status:          status,
	}
	repo.bookings[b.ID] = b
	return b
}

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to string
		allowed  bool
	}{
		{models.BookingPending, models.BookingConfirmed, true},
		{models.BookingPending, models.BookingRescheduled, true},
		{models.BookingPending, models.BookingCancelled, true},
		{models.BookingConfirmed, models.BookingRescheduled, true},
		{models.BookingConfirmed, models.BookingCancelled, true},
		{models.BookingConfirmed, models.BookingPending, false},
		{models.BookingRescheduled, models.BookingConfirmed, true},
		{models.BookingCancelled, models.BookingConfirmed, false},
		{models.BookingCancelled, models.BookingPending, false},
		{models.BookingCancelled, models.BookingRescheduled, false},
	}
	for _, tc := range tests {
		t.Run(tc.from+"_to_"+tc.to, func(t *testing.T) {
			repo := newFakeBookingRepo()
			seedBooking(repo, tc.from)
			svc := newTestService(repo, nil, nil, nil)

			err := svc.UpdateStatus(context.Background(), testLawyer, "bk-1", tc.to)
			if tc.allowed {
				require.NoError(t, err)
				assert.Equal(t, tc.to, repo.bookings["bk-1"].Status)
			} else {
				var invalid *InvalidTransitionError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, tc.from, repo.bookings["bk-1"].Status)
			}
		})
	}
}

func TestUpdateStatusGuards(t *testing.T) {
	repo := newFakeBookingRepo()
	seedBooking(repo, models.BookingPending)
	svc := newTestService(repo, nil, nil, nil)
	ctx := context.Background()

	var perm *PermissionError
	assert.ErrorAs(t, svc.UpdateStatus(ctx, testClient, "bk-1", models.BookingConfirmed), &perm)

	otherLawyer := &models.User{ID: "lawyer-2", UserType: models.RoleLawyer}
	assert.ErrorAs(t, svc.UpdateStatus(ctx, otherLawyer, "bk-1", models.BookingConfirmed), &perm)

	var notFound *NotFoundError
	assert.ErrorAs(t, svc.UpdateStatus(ctx, testLawyer, "missing", models.BookingConfirmed), &notFound)

	var invalid *InvalidTransitionError
	assert.ErrorAs(t, svc.UpdateStatus(ctx, testLawyer, "bk-1", "archived"), &invalid)
}

func TestUpdateStatusNotifiesClient(t *testing.T) {
	repo := newFakeBookingRepo()
	seedBooking(repo, models.BookingPending)
	notifier := &fakeNotifier{}
	svc := newTestService(repo, nil, nil, notifier)

	require.NoError(t, svc.UpdateStatus(context.Background(), testLawyer, "bk-1", models.BookingConfirmed))

	require.Len(t, notifier.sent, 1)
	n := notifier.sent[0]
	assert.Equal(t, testClient.ID, n.UserID)
	assert.Equal(t, "Consultation Accepted", n.Title)
	assert.Equal(t, "booking_confirmed", n.Type)
}

func TestUpdateStatusSchedulesReminderOnConfirm(t *testing.T) {
	config.AppConfig.ReminderLeadMins = 60
	repo := newFakeBookingRepo()
	seedBooking(repo, models.BookingPending)
	reminders := &fakeReminderScheduler{}
	svc := newTestService(repo, nil, nil, nil)
	svc.Reminders = reminders

	require.NoError(t, svc.UpdateStatus(context.Background(), testLawyer, "bk-1", models.BookingConfirmed))
	require.Len(t, reminders.scheduled, 1)
	assert.Equal(t, "bk-1", reminders.scheduled[0])

	slot := mustSlot(t, "2099-09-10", "10:00", 30)
	assert.True(t, reminders.fireAts[0].Equal(slot.Start.Add(-time.Hour)))
}

func TestRescheduleOverwritesSlot(t *testing.T) {
	repo := newFakeBookingRepo()
	seedBooking(repo, models.BookingConfirmed)
	notifier := &fakeNotifier{}
	svc := newTestService(repo, nil, nil, notifier)

	require.NoError(t, svc.Reschedule(context.Background(), testLawyer, "bk-1", "2099-09-12", "15:00"))

	b := repo.bookings["bk-1"]
	assert.Equal(t, "2099-09-12", b.Date)
	assert.Equal(t, "15:00", b.Time)
	assert.Equal(t, models.BookingRescheduled, b.Status)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, models.NotifyBookingRescheduled, notifier.sent[0].Type)
}

func TestRescheduleGuards(t *testing.T) {
	repo := newFakeBookingRepo()
	seedBooking(repo, models.BookingCancelled)
	svc := newTestService(repo, nil, nil, nil)
	ctx := context.Background()

	var perm *PermissionError
	assert.ErrorAs(t, svc.Reschedule(ctx, testClient, "bk-1", "2099-09-12", "15:00"), &perm)

	var invalid *InvalidTransitionError
	assert.ErrorAs(t, svc.Reschedule(ctx, testLawyer, "bk-1", "2099-09-12", "15:00"), &invalid)
}

func TestCancelByEachParty(t *testing.T) {
	t.Run("client cancels, lawyer notified", func(t *testing.T) {
		repo := newFakeBookingRepo()
		seedBooking(repo, models.BookingPending)
		notifier := &fakeNotifier{}
		svc := newTestService(repo, nil, nil, notifier)

		require.NoError(t, svc.Cancel(context.Background(), testClient, "bk-1", "schedule clash"))
		assert.Equal(t, models.BookingCancelled, repo.bookings["bk-1"].Status)
		assert.Equal(t, "schedule clash", repo.bookings["bk-1"].CancelReason)

		require.Len(t, notifier.sent, 1)
		assert.Equal(t, testLawyer.ID, notifier.sent[0].UserID)
		assert.Contains(t, notifier.sent[0].Message, "Reason: schedule clash")
	})

	t.Run("lawyer cancels, client notified", func(t *testing.T) {
		repo := newFakeBookingRepo()
		seedBooking(repo, models.BookingConfirmed)
		notifier := &fakeNotifier{}
		svc := newTestService(repo, nil, nil, notifier)

		require.NoError(t, svc.Cancel(context.Background(), testLawyer, "bk-1", ""))
		require.Len(t, notifier.sent, 1)
		assert.Equal(t, testClient.ID, notifier.sent[0].UserID)
		assert.NotContains(t, notifier.sent[0].Message, "Reason:")
	})
}

func TestCancelGuards(t *testing.T) {
	repo := newFakeBookingRepo()
	seedBooking(repo, models.BookingPending)
	svc := newTestService(repo, nil, nil, nil)
	ctx := context.Background()

	stranger := &models.User{ID: "client-9", UserType: models.RoleClient}
	var perm *PermissionError
	assert.ErrorAs(t, svc.Cancel(ctx, stranger, "bk-1", ""), &perm)
	assert.Equal(t, models.BookingPending, repo.bookings["bk-1"].Status)

	var notFound *NotFoundError
	assert.ErrorAs(t, svc.Cancel(ctx, testClient, "missing", ""), &notFound)

	require.NoError(t, svc.Cancel(ctx, testClient, "bk-1", ""))
	var invalid *InvalidTransitionError
	assert.ErrorAs(t, svc.Cancel(ctx, testClient, "bk-1", ""), &invalid)
}
