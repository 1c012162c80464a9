package documentRepo

import (
	"context"
	"fmt"
	"time"

	"lawyerup/database"
	"lawyerup/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDocumentRepo implements DocumentRepository using MongoDB.
type MongoDocumentRepo struct {
	coll *mongo.Collection
}

// NewMongoDocumentRepo constructs a new instance of MongoDocumentRepo.
func NewMongoDocumentRepo() DocumentRepository {
	return &MongoDocumentRepo{
		coll: database.DB().Collection("documents"),
	}
}

// Create inserts a new document metadata record.
func (repo *MongoDocumentRepo) Create(ctx context.Context, d *models.Document) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll.InsertOne(ctx, d)
	if err != nil {
		return fmt.Errorf("error creating document: %w", err)
	}
	return nil
}

// ListByUser returns the user's documents, optionally filtered by case.
func (repo *MongoDocumentRepo) ListByUser(ctx context.Context, userID, caseID string) ([]models.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"user_id": userID}
	if caseID != "" {
		filter["case_id"] = caseID
	}

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching documents: %w", err)
	}
	defer cursor.Close(ctx)

	var documents []models.Document
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, fmt.Errorf("error decoding documents: %w", err)
	}
	return documents, nil
}

// GetByID retrieves a document scoped to its owner.
func (repo *MongoDocumentRepo) GetByID(ctx context.Context, documentID, userID string) (*models.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var d models.Document
	if err := repo.coll.FindOne(ctx, bson.M{"id": documentID, "user_id": userID}).Decode(&d); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching document %s: %w", documentID, err)
	}
	return &d, nil
}

// Share grants the target user access via $addToSet.
func (repo *MongoDocumentRepo) Share(ctx context.Context, documentID, ownerID, targetUserID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.UpdateOne(ctx,
		bson.M{"id": documentID, "user_id": ownerID},
		bson.M{"$addToSet": bson.M{"shared_with": targetUserID}},
	)
	if err != nil {
		return false, fmt.Errorf("error sharing document %s: %w", documentID, err)
	}
	return res.MatchedCount > 0, nil
}

// CountByUser counts the user's documents.
func (repo *MongoDocumentRepo) CountByUser(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := repo.coll.CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, fmt.Errorf("error counting documents: %w", err)
	}
	return count, nil
}
