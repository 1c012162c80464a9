package messageRepo

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

// MongoMessageRepo implements MessageRepository using MongoDB.
type MongoMessageRepo struct {
	coll *mongo.Collection
}

// NewMongoMessageRepo constructs a new instance of MongoMessageRepo.
func NewMongoMessageRepo() MessageRepository {
	return &MongoMessageRepo{
		coll: database.DB().Collection("messages"),
	}
}

// Insert stores a new message.
func (repo *MongoMessageRepo) Insert(ctx context.Context, m *models.Message) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll.InsertOne(ctx, m)
	if err != nil {
		return fmt.Errorf("error inserting message: %w", err)
	}
	return nil
}

// Conversation returns all messages between two users, oldest first.
func (repo *MongoMessageRepo) Conversation(ctx context.Context, userID, otherUserID string) ([]models.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"$or": bson.A{
			bson.M{"sender_id": userID, "receiver_id": otherUserID},
			bson.M{"sender_id": otherUserID, "receiver_id": userID},
		},
	}
	opts := options.Find().SetSort(bson.M{"timestamp": 1}).SetLimit(100)
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching conversation: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("error decoding messages: %w", err)
	}
	return messages, nil
}

// RecentMessages groups the user's messages by counterpart and returns the
// most recent message of each exchange, newest first.
func (repo *MongoMessageRepo) RecentMessages(ctx context.Context, userID string, limit int64) ([]models.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"$or": bson.A{
				bson.M{"sender_id": userID},
				bson.M{"receiver_id": userID},
			},
		}}},
		{{Key: "$sort", Value: bson.M{"timestamp": -1}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"$cond": bson.A{
					bson.M{"$eq": bson.A{"$sender_id", userID}},
					"$receiver_id",
					"$sender_id",
				},
			},
			"last_message": bson.M{"$first": "$$ROOT"},
		}}},
		{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$last_message"}}},
		{{Key: "$sort", Value: bson.M{"timestamp": -1}}},
		{{Key: "$limit", Value: limit}},
	}

	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating recent messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("error decoding recent messages: %w", err)
	}
	return messages, nil
}
