package models

import "time"

// Booking statuses.
const (
	BookingPending     = "pending"
	BookingConfirmed   = "confirmed"
	BookingRescheduled = "rescheduled"
	BookingCancelled   = "cancelled"
)

// Consultation types.
const (
	ConsultationVideo    = "video"
	ConsultationAudio    = "audio"
	ConsultationInPerson = "in_person"
)

// Booking represents a scheduled consultation between a client and a lawyer.
type Booking struct {
	ID               string    `bson:"id" json:"id"`                               // Unique booking identifier (UUID)
	ClientID         string    `bson:"client_id" json:"client_id"`                 // Client who requested the consultation
	LawyerID         string    `bson:"lawyer_id" json:"lawyer_id"`                 // Lawyer assigned to the consultation
	Date             string    `bson:"date" json:"date"`                           // Consultation date in "YYYY-MM-DD" format
	Time             string    `bson:"time" json:"time"`                           // Start time, "HH:MM" or "HH:MM AM/PM"
	DurationMinutes  int       `bson:"duration_minutes" json:"duration_minutes"`   // Length of the consultation
	ConsultationType string    `bson:"consultation_type" json:"consultation_type"` // video, audio or in_person
	Description      string    `bson:"description" json:"description"`             // Client supplied context for the lawyer
	Price            float64   `bson:"price" json:"price"`                         // Computed price, 0 for free trials
	IsFreeTrial      bool      `bson:"is_free_trial" json:"is_free_trial"`         // True for the client's first three bookings
	MeetLink         string    `bson:"meet_link" json:"meet_link"`                 // Populated only for video consultations
	Location         string    `bson:"location" json:"location"`                   // Channel label, phone contact or office address
	Status           string    `bson:"status" json:"status"`                       // pending, confirmed, rescheduled, cancelled
	CancelReason     string    `bson:"cancel_reason,omitempty" json:"cancel_reason,omitempty"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}

// GuestBooking is the unauthenticated intake variant of a booking,
// captured before the visitor has an account. ClientID stays empty until
// the user signs up and the record is linked.
type GuestBooking struct {
	ID               string    `bson:"id" json:"id"`
	ClientID         *string   `bson:"client_id" json:"client_id"` // Always nil at creation time
	FullName         string    `bson:"full_name" json:"full_name"`
	Email            string    `bson:"email" json:"email"`
	Phone            string    `bson:"phone" json:"phone"`
	ConsultationType string    `bson:"consultation_type" json:"consultation_type"`
	Date             string    `bson:"date" json:"date"`
	Time             string    `bson:"time" json:"time"`
	Description      string    `bson:"description" json:"description"`
	Amount           float64   `bson:"amount" json:"amount"`
	Status           string    `bson:"status" json:"status"`
	PaymentStatus    string    `bson:"payment_status" json:"payment_status"`
	PaymentMethod    string    `bson:"payment_method" json:"payment_method"`
	CardLastFour     string    `bson:"card_last_four" json:"card_last_four"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`
}
