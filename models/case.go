package models

import "time"

// Case is a legal matter tracked by a lawyer or client.
type Case struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"` // Owning user (lawyer for firm cases)
	Title       string    `bson:"title" json:"title"`
	CaseNumber  string    `bson:"case_number,omitempty" json:"case_number,omitempty"`
	Description string    `bson:"description" json:"description"`
	Status      string    `bson:"status" json:"status"` // e.g. active, closed
	ClientName  string    `bson:"client_name" json:"client_name"`
	CaseType    string    `bson:"case_type" json:"case_type"`
	NextHearing string    `bson:"next_hearing,omitempty" json:"next_hearing,omitempty"` // "YYYY-MM-DD"
	Court       string    `bson:"court,omitempty" json:"court,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// CaseCreate is the payload for opening a new case.
type CaseCreate struct {
	Title       string `json:"title" binding:"required"`
	CaseNumber  string `json:"case_number"`
	Description string `json:"description"`
	Status      string `json:"status"`
	ClientName  string `json:"client_name"`
	CaseType    string `json:"case_type"`
	NextHearing string `json:"next_hearing"`
	Court       string `json:"court"`
}
