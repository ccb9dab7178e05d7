// File: database/repository/consultation/crud.go
package consultationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"nurturebloom/models"
)

func (r *MongoConsultationRepo) Create(ctx context.Context, c *models.Consultation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, c); err != nil {
		return fmt.Errorf("failed to create consultation: %w", err)
	}
	return nil
}

func (r *MongoConsultationRepo) GetByID(ctx context.Context, id string) (*models.Consultation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var c models.Consultation
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch consultation %s: %w", id, err)
	}
	return &c, nil
}

// Update replaces the mutable fields of the stored consultation.
func (r *MongoConsultationRepo) Update(ctx context.Context, c *models.Consultation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"startsAt":  c.Start,
		"duration":  c.DurationMinutes,
		"endsAt":    c.EndsAt,
		"topic":     c.Topic,
		"notes":     c.Notes,
		"concerns":  c.Concerns,
		"status":    c.Status,
		"updatedAt": c.UpdatedAt,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": c.ID}, update)
	if err != nil {
		return fmt.Errorf("failed to update consultation %s: %w", c.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrConsultationNotFound
	}
	return nil
}

func (r *MongoConsultationRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete consultation %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrConsultationNotFound
	}
	return nil
}
