package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CountByLawyer counts all consultations assigned to a lawyer.
func (repo *MongoBookingRepo) CountByLawyer(ctx context.Context, lawyerID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := repo.coll.CountDocuments(ctx, bson.M{"lawyer_id": lawyerID})
	if err != nil {
		return 0, fmt.Errorf("error counting bookings for lawyer %s: %w", lawyerID, err)
	}
	return count, nil
}

// RevenueByLawyer sums booking prices across a lawyer's consultations.
func (repo *MongoBookingRepo) RevenueByLawyer(ctx context.Context, lawyerID string) (float64, error) {
	return repo.sumPrices(ctx, bson.M{"lawyer_id": lawyerID})
}

// TotalSpentByClient sums what a client has paid across all bookings.
func (repo *MongoBookingRepo) TotalSpentByClient(ctx context.Context, clientID string) (float64, error) {
	return repo.sumPrices(ctx, bson.M{"client_id": clientID})
}

func (repo *MongoBookingRepo) sumPrices(ctx context.Context, match bson.M) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$price"},
		}}},
	}
	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("error aggregating booking prices: %w", err)
	}
	defer cursor.Close(ctx)

	var result []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return 0, fmt.Errorf("error decoding price aggregate: %w", err)
	}
	if len(result) == 0 {
		return 0, nil
	}
	return result[0].Total, nil
}
