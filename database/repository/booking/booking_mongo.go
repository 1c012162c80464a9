package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"lawyerup/database"
	"lawyerup/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	return &MongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}

// Create inserts a new booking document.
func (repo *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

// CreateGuest inserts an unauthenticated intake booking.
func (repo *MongoBookingRepo) CreateGuest(ctx context.Context, booking *models.GuestBooking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("error creating guest booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its ID.
func (repo *MongoBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	if err := repo.coll.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching booking %s: %w", bookingID, err)
	}
	return &booking, nil
}

// ListByClient returns bookings the given client requested.
func (repo *MongoBookingRepo) ListByClient(ctx context.Context, clientID string) ([]models.Booking, error) {
	return repo.list(ctx, bson.M{"client_id": clientID})
}

// ListByLawyer returns bookings assigned to the given lawyer.
func (repo *MongoBookingRepo) ListByLawyer(ctx context.Context, lawyerID string) ([]models.Booking, error) {
	return repo.list(ctx, bson.M{"lawyer_id": lawyerID})
}

// ListActiveByLawyerAndDate returns the lawyer's non-cancelled bookings on a date.
func (repo *MongoBookingRepo) ListActiveByLawyerAndDate(ctx context.Context, lawyerID, date string) ([]models.Booking, error) {
	return repo.list(ctx, bson.M{
		"lawyer_id": lawyerID,
		"date":      date,
		"status":    bson.M{"$ne": models.BookingCancelled},
	})
}

func (repo *MongoBookingRepo) list(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}

// CountFreeTrials counts the client's bookings flagged as free trials,
// across all lawyers.
func (repo *MongoBookingRepo) CountFreeTrials(ctx context.Context, clientID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := repo.coll.CountDocuments(ctx, bson.M{
		"client_id":     clientID,
		"is_free_trial": true,
	})
	if err != nil {
		return 0, fmt.Errorf("error counting free trial bookings: %w", err)
	}
	return count, nil
}

// SetStatus updates the status of a booking.
func (repo *MongoBookingRepo) SetStatus(ctx context.Context, bookingID, status string) error {
	return repo.update(ctx, bookingID, bson.M{"status": status})
}

// SetSchedule overwrites the booking's slot and status.
func (repo *MongoBookingRepo) SetSchedule(ctx context.Context, bookingID, date, timeOfDay, status string) error {
	return repo.update(ctx, bookingID, bson.M{"date": date, "time": timeOfDay, "status": status})
}

// SetCancelled marks the booking cancelled and records the reason.
func (repo *MongoBookingRepo) SetCancelled(ctx context.Context, bookingID, reason string) error {
	return repo.update(ctx, bookingID, bson.M{
		"status":        models.BookingCancelled,
		"cancel_reason": reason,
	})
}

func (repo *MongoBookingRepo) update(ctx context.Context, bookingID string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": bookingID}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("error updating booking %s: %w", bookingID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("booking %s not found", bookingID)
	}
	return nil
}
