// File: database/repository/symptom/checks.go
package symptomRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nurturebloom/models"
)

func (r *MongoSymptomRepo) CreateCheck(ctx context.Context, check *models.SymptomCheck) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.checks.InsertOne(ctx, check); err != nil {
		return fmt.Errorf("failed to save symptom check: %w", err)
	}
	return nil
}

func (r *MongoSymptomRepo) GetCheck(ctx context.Context, id string) (*models.SymptomCheck, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var check models.SymptomCheck
	err := r.checks.FindOne(ctx, bson.M{"id": id}).Decode(&check)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch symptom check %s: %w", id, err)
	}
	return &check, nil
}

func (r *MongoSymptomRepo) ListChecksByUser(ctx context.Context, userID string) ([]models.SymptomCheck, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.checks.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch symptom history for %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	out := []models.SymptomCheck{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode symptom history for %s: %w", userID, err)
	}
	return out, nil
}
