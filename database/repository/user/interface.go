package userRepo

import (
	"context"

	"lawyerup/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository resolves identity records. Registration and credential
// management live outside this service; the booking engine only reads.
type UserRepository interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByIDWithProjection(ctx context.Context, userID string, projection bson.M) (*models.User, error)
}
