package models

import "time"

// NetworkMessage is a post on a state-scoped community board. Every lawyer
// in the same state reads the same feed.
type NetworkMessage struct {
	ID         string    `bson:"id" json:"id"`
	SenderID   string    `bson:"sender_id" json:"sender_id"`
	SenderName string    `bson:"sender_name" json:"sender_name"`
	SenderType string    `bson:"sender_type" json:"sender_type"` // lawyer, admin
	State      string    `bson:"state" json:"state"`
	Content    string    `bson:"content" json:"content"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
}

// NetworkMessageCreate is the payload for posting to the state feed.
type NetworkMessageCreate struct {
	Content string `json:"content" binding:"required"`
}
