// File: database/repository/symptom/catalogue.go
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

// ErrDuplicateSymptom is returned by InsertMany when a symptom name already exists.
var ErrDuplicateSymptom = errors.New("symptom already exists")

func (r *MongoSymptomRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	n, err := r.symptoms.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count symptoms: %w", err)
	}
	return n, nil
}

func (r *MongoSymptomRepo) InsertMany(ctx context.Context, symptoms []models.Symptom) error {
	if len(symptoms) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(symptoms))
	for _, s := range symptoms {
		docs = append(docs, s)
	}
	_, err := r.symptoms.InsertMany(ctx, docs)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateSymptom
	}
	if err != nil {
		return fmt.Errorf("failed to insert symptoms: %w", err)
	}
	return nil
}

func (r *MongoSymptomRepo) findSymptoms(ctx context.Context, filter bson.M) ([]models.Symptom, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.symptoms.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []models.Symptom{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoSymptomRepo) ListAll(ctx context.Context) ([]models.Symptom, error) {
	out, err := r.findSymptoms(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch symptoms: %w", err)
	}
	return out, nil
}

func (r *MongoSymptomRepo) ListByCategory(ctx context.Context, category models.SymptomCategory) ([]models.Symptom, error) {
	out, err := r.findSymptoms(ctx, bson.M{"category": category})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s symptoms: %w", category, err)
	}
	return out, nil
}

func (r *MongoSymptomRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Symptom, error) {
	if len(ids) == 0 {
		return []models.Symptom{}, nil
	}
	out, err := r.findSymptoms(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve symptoms: %w", err)
	}
	return out, nil
}
