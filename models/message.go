package models

import "time"

// Message is a single chat message between two users.
type Message struct {
	ID         string    `bson:"id" json:"id"`
	SenderID   string    `bson:"sender_id" json:"sender_id"`
	ReceiverID string    `bson:"receiver_id" json:"receiver_id"`
	Content    string    `bson:"content" json:"content"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
	Read       bool      `bson:"read" json:"read"`
}

// MessageCreate is the payload for sending a message.
type MessageCreate struct {
	ReceiverID string `json:"receiver_id" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

// Conversation summarizes the most recent exchange with another user.
type Conversation struct {
	UserID    string    `json:"id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Avatar    string    `json:"avatar"`
}
