package models

import "time"

// Event types.
const (
	EventHearing  = "hearing"
	EventPersonal = "personal"
	EventMeeting  = "meeting"
)

// Event is a calendar block owned by a lawyer. It marks time during which
// the lawyer is unavailable for new bookings.
type Event struct {
	ID          string    `bson:"id" json:"id"`
	LawyerID    string    `bson:"lawyer_id" json:"lawyer_id"`
	Title       string    `bson:"title" json:"title"`
	Type        string    `bson:"type" json:"type"` // hearing, personal, meeting
	StartTime   time.Time `bson:"start_time" json:"start_time"`
	EndTime     time.Time `bson:"end_time" json:"end_time"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CaseID      string    `bson:"case_id,omitempty" json:"case_id,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// EventCreate is the payload for creating a calendar block.
type EventCreate struct {
	Title       string    `json:"title" binding:"required"`
	Type        string    `json:"type" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	Description string    `json:"description"`
	CaseID      string    `json:"case_id"`
}
