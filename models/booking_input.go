package models

// BookingCreate is the payload a client submits to request a consultation.
// Price is recomputed server side unless a nonzero value is declared.
type BookingCreate struct {
	LawyerID         string  `json:"lawyer_id" binding:"required"`
	Date             string  `json:"date" binding:"required"`
	Time             string  `json:"time" binding:"required"`
	Description      string  `json:"description"`
	Price            float64 `json:"price"`
	DurationMinutes  int     `json:"duration_minutes"`
	ConsultationType string  `json:"consultation_type"`
}

// GuestBookingCreate is the reduced, explicit field set accepted on the
// unauthenticated intake path. Declared status and payment fields are
// persisted as-is; no pricing or conflict logic applies.
type GuestBookingCreate struct {
	FullName         string  `json:"fullName" binding:"required"`
	Email            string  `json:"email" binding:"required"`
	Phone            string  `json:"phone"`
	ConsultationType string  `json:"consultationType"`
	Date             string  `json:"date" binding:"required"`
	Time             string  `json:"time" binding:"required"`
	Description      string  `json:"description"`
	Amount           float64 `json:"amount"`
	Status           string  `json:"status"`
	PaymentStatus    string  `json:"payment_status"`
	PaymentMethod    string  `json:"payment_method"`
	CardLastFour     string  `json:"card_last_four"`
}

// BookingStatusUpdate carries a lawyer's status decision for a booking.
type BookingStatusUpdate struct {
	Status string `json:"status" binding:"required"`
}

// BookingReschedule carries the new slot for a rescheduled booking.
type BookingReschedule struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// BookingCancel carries an optional cancellation reason.
type BookingCancel struct {
	Reason string `json:"reason"`
}
