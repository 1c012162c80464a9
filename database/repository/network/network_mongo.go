package networkRepo

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

// MongoNetworkRepo implements NetworkRepository using MongoDB.
type MongoNetworkRepo struct {
	coll *mongo.Collection
}

// NewMongoNetworkRepo constructs a new instance of MongoNetworkRepo.
func NewMongoNetworkRepo() NetworkRepository {
	return &MongoNetworkRepo{
		coll: database.DB().Collection("network_messages"),
	}
}

// Insert stores a new board post.
func (repo *MongoNetworkRepo) Insert(ctx context.Context, m *models.NetworkMessage) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll.InsertOne(ctx, m)
	if err != nil {
		return fmt.Errorf("error inserting network message: %w", err)
	}
	return nil
}

// ListByState returns the state's feed, newest first.
func (repo *MongoNetworkRepo) ListByState(ctx context.Context, state string, limit int64) ([]models.NetworkMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.M{"timestamp": -1}).SetLimit(limit)
	cursor, err := repo.coll.Find(ctx, bson.M{"state": state}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching network messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []models.NetworkMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("error decoding network messages: %w", err)
	}
	return messages, nil
}
