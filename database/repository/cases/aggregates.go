package caseRepo

import (
	"context"
	"fmt"
	"time"

	"lawyerup/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CountByStatus counts the user's cases in the given status.
func (repo *MongoCaseRepo) CountByStatus(ctx context.Context, userID, status string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := repo.coll.CountDocuments(ctx, bson.M{"user_id": userID, "status": status})
	if err != nil {
		return 0, fmt.Errorf("error counting cases: %w", err)
	}
	return count, nil
}

// CountDistinctClients counts unique client names across the user's cases.
func (repo *MongoCaseRepo) CountDistinctClients(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"user_id": userID}}},
		{{Key: "$group", Value: bson.M{"_id": "$client_name"}}},
		{{Key: "$count", Value: "count"}},
	}
	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("error aggregating distinct clients: %w", err)
	}
	defer cursor.Close(ctx)

	var result []struct {
		Count int64 `bson:"count"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return 0, fmt.Errorf("error decoding client count: %w", err)
	}
	if len(result) == 0 {
		return 0, nil
	}
	return result[0].Count, nil
}

// UpcomingHearings returns the user's cases with a scheduled hearing,
// soonest first.
func (repo *MongoCaseRepo) UpcomingHearings(ctx context.Context, userID string, limit int64) ([]models.Case, error) {
	filter := bson.M{"user_id": userID, "next_hearing": bson.M{"$nin": bson.A{nil, ""}}}
	opts := options.Find().SetSort(bson.M{"next_hearing": 1}).SetLimit(limit)
	return repo.find(ctx, filter, opts)
}

// RecentCases returns the user's newest cases.
func (repo *MongoCaseRepo) RecentCases(ctx context.Context, userID string, limit int64) ([]models.Case, error) {
	filter := bson.M{"user_id": userID}
	opts := options.Find().SetSort(bson.M{"created_at": -1}).SetLimit(limit)
	return repo.find(ctx, filter, opts)
}

func (repo *MongoCaseRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Case, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching cases: %w", err)
	}
	defer cursor.Close(ctx)

	var cases []models.Case
	if err := cursor.All(ctx, &cases); err != nil {
		return nil, fmt.Errorf("error decoding cases: %w", err)
	}
	return cases, nil
}
