package caseRepo

import (
	"context"
	"fmt"
	"time"

	"lawyerup/database"
	"lawyerup/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCaseRepo implements CaseRepository using MongoDB.
type MongoCaseRepo struct {
	coll *mongo.Collection
}

// NewMongoCaseRepo constructs a new instance of MongoCaseRepo.
func NewMongoCaseRepo() CaseRepository {
	return &MongoCaseRepo{
		coll: database.DB().Collection("cases"),
	}
}

// Create inserts a new case document.
func (repo *MongoCaseRepo) Create(ctx context.Context, c *models.Case) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll.InsertOne(ctx, c)
	if err != nil {
		return fmt.Errorf("error creating case: %w", err)
	}
	return nil
}

// ListByUser returns all cases owned by the user.
func (repo *MongoCaseRepo) ListByUser(ctx context.Context, userID string) ([]models.Case, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"user_id": userID})
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

// GetByID retrieves a case scoped to its owner.
func (repo *MongoCaseRepo) GetByID(ctx context.Context, caseID, userID string) (*models.Case, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c models.Case
	if err := repo.coll.FindOne(ctx, bson.M{"id": caseID, "user_id": userID}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching case %s: %w", caseID, err)
	}
	return &c, nil
}

// Update overwrites a case's mutable fields, scoped to its owner.
func (repo *MongoCaseRepo) Update(ctx context.Context, c *models.Case) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": c.ID, "user_id": c.UserID},
		bson.M{"$set": bson.M{
			"title":        c.Title,
			"case_number":  c.CaseNumber,
			"description":  c.Description,
			"status":       c.Status,
			"client_name":  c.ClientName,
			"case_type":    c.CaseType,
			"next_hearing": c.NextHearing,
			"court":        c.Court,
			"updated_at":   c.UpdatedAt,
		}},
	)
	if err != nil {
		return false, fmt.Errorf("error updating case %s: %w", c.ID, err)
	}
	return res.MatchedCount > 0, nil
}
