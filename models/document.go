package models

import "time"

// Document is the metadata record for a stored file. The file bytes live in
// an external store; only the reference and sharing state are tracked here.
type Document struct {
	ID         string    `bson:"id" json:"id"`
	CaseID     string    `bson:"case_id" json:"case_id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	Title      string    `bson:"title" json:"title"`
	FileURL    string    `bson:"file_url" json:"file_url"`
	FileType   string    `bson:"file_type" json:"file_type"`
	FileSize   int64     `bson:"file_size,omitempty" json:"file_size,omitempty"`
	SharedWith []string  `bson:"shared_with" json:"shared_with"` // User ids with read access
	UploadedAt time.Time `bson:"uploaded_at" json:"uploaded_at"`
}

// DocumentCreate is the payload for registering a document.
type DocumentCreate struct {
	CaseID   string `json:"case_id" binding:"required"`
	Title    string `json:"title" binding:"required"`
	FileURL  string `json:"file_url" binding:"required"`
	FileType string `json:"file_type"`
}

// DocumentShare names the user a document is shared with.
type DocumentShare struct {
	UserID string `json:"user_id" binding:"required"`
}
