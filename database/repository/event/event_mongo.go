package eventRepo

import (
	"context"
	"fmt"
	"time"

	"lawyerup/database"
	"lawyerup/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoEventRepo implements EventRepository using MongoDB.
type MongoEventRepo struct {
	coll *mongo.Collection
}

// NewMongoEventRepo constructs a new instance of MongoEventRepo.
func NewMongoEventRepo() EventRepository {
	return &MongoEventRepo{
		coll: database.DB().Collection("events"),
	}
}

// Create inserts a new calendar block.
func (repo *MongoEventRepo) Create(ctx context.Context, event *models.Event) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll.InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("error creating event: %w", err)
	}
	return nil
}

// ListByLawyer returns all calendar blocks owned by the lawyer.
func (repo *MongoEventRepo) ListByLawyer(ctx context.Context, lawyerID string) ([]models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"lawyer_id": lawyerID})
	if err != nil {
		return nil, fmt.Errorf("error fetching events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []models.Event
	for cursor.Next(ctx) {
		var e models.Event
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("error decoding event: %w", err)
		}
		events = append(events, e)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return events, nil
}

// FindConflicting returns the first block overlapping [start, end), if any.
// Intervals are half-open: block.start < end AND block.end > start.
func (repo *MongoEventRepo) FindConflicting(ctx context.Context, lawyerID string, start, end time.Time) (*models.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"lawyer_id":  lawyerID,
		"start_time": bson.M{"$lt": end},
		"end_time":   bson.M{"$gt": start},
	}
	var event models.Event
	if err := repo.coll.FindOne(ctx, filter).Decode(&event); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error checking calendar conflicts: %w", err)
	}
	return &event, nil
}

// Delete removes the block if the lawyer owns it.
func (repo *MongoEventRepo) Delete(ctx context.Context, eventID, lawyerID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": eventID, "lawyer_id": lawyerID})
	if err != nil {
		return false, fmt.Errorf("error deleting event %s: %w", eventID, err)
	}
	return res.DeletedCount > 0, nil
}
