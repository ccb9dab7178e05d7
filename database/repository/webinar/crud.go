// File: database/repository/webinar/crud.go
package webinarRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"nurturebloom/models"
)

func (r *MongoWebinarRepo) Create(ctx context.Context, w *models.Webinar) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if w.Registrations == nil {
		w.Registrations = []models.Registration{}
	}
	if w.Tags == nil {
		w.Tags = []string{}
	}
	if _, err := r.coll.InsertOne(ctx, w); err != nil {
		return fmt.Errorf("failed to create webinar: %w", err)
	}
	return nil
}

func (r *MongoWebinarRepo) GetByID(ctx context.Context, id string) (*models.Webinar, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var w models.Webinar
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&w)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch webinar %s: %w", id, err)
	}
	return &w, nil
}

func (r *MongoWebinarRepo) Update(ctx context.Context, w *models.Webinar) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tags := w.Tags
	if tags == nil {
		tags = []string{}
	}
	filter := bson.M{
		"id": w.ID,
		"$expr": bson.M{"$lte": bson.A{
			bson.M{"$size": "$registrations"},
			w.Capacity,
		}},
	}
	update := bson.M{"$set": bson.M{
		"title":        w.Title,
		"description":  w.Description,
		"startsAt":     w.Start,
		"duration":     w.DurationMinutes,
		"capacity":     w.Capacity,
		"tags":         tags,
		"recordingUrl": w.RecordingURL,
		"isRecorded":   w.IsRecorded,
		"updatedAt":    w.UpdatedAt,
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update webinar %s: %w", w.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrConditionFailed
	}
	return nil
}

func (r *MongoWebinarRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete webinar %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrWebinarNotFound
	}
	return nil
}
