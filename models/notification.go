package models

import "time"

// Notification type tags.
const (
	NotifyBookingRequest     = "booking_request"
	NotifyBookingConfirmed   = "booking_confirmed"
	NotifyBookingRescheduled = "booking_rescheduled"
	NotifyBookingCancelled   = "booking_cancelled"
	NotifyBookingReminder    = "booking_reminder"
	NotifyDocumentShared     = "document_shared"
)

// Notification is an append-only record addressed to a single user.
// Only the IsRead flag ever changes after creation.
type Notification struct {
	ID        string    `bson:"id" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Title     string    `bson:"title" json:"title"`
	Message   string    `bson:"message" json:"message"`
	Type      string    `bson:"type" json:"type"`
	RelatedID string    `bson:"related_id,omitempty" json:"related_id,omitempty"` // e.g. booking id
	IsRead    bool      `bson:"is_read" json:"is_read"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
