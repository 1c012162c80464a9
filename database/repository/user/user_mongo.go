package userRepo

import (
	"context"
	"fmt"
	"time"

	"lawyerup/database"
	"lawyerup/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo constructs a new instance of MongoUserRepo.
func NewMongoUserRepo() UserRepository {
	return &MongoUserRepo{
		coll: database.DB().Collection("users"),
	}
}

// GetByID retrieves a user document by ID.
func (repo *MongoUserRepo) GetByID(ctx context.Context, userID string) (*models.User, error) {
	return repo.GetByIDWithProjection(ctx, userID, nil)
}

// GetByIDWithProjection retrieves a user with only the projected fields.
func (repo *MongoUserRepo) GetByIDWithProjection(ctx context.Context, userID string, projection bson.M) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne()
	if projection != nil {
		opts.SetProjection(projection)
	}

	var user models.User
	if err := repo.coll.FindOne(ctx, bson.M{"id": userID}, opts).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching user %s: %w", userID, err)
	}
	return &user, nil
}
