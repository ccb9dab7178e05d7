// File: database/repository/consultation/queries.go
package consultationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nurturebloom/models"
)

func (r *MongoConsultationRepo) find(ctx context.Context, filter bson.M) ([]models.Consultation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startsAt", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []models.Consultation{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoConsultationRepo) ListScheduledOverlapping(
	ctx context.Context,
	professionalID string,
	window models.TimeWindow,
	excludeID string,
) ([]models.Consultation, error) {
	filter := bson.M{
		"professionalId": professionalID,
		"status":         models.StatusScheduled,
		"startsAt":       bson.M{"$lt": window.End()},
		"endsAt":         bson.M{"$gt": window.Start},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}

	out, err := r.find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scheduled consultations for %s: %w", professionalID, err)
	}
	return out, nil
}

func (r *MongoConsultationRepo) ListByRequester(ctx context.Context, requesterID string) ([]models.Consultation, error) {
	out, err := r.find(ctx, bson.M{"userId": requesterID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch consultations for user %s: %w", requesterID, err)
	}
	return out, nil
}

func (r *MongoConsultationRepo) ListByProfessional(ctx context.Context, professionalID string) ([]models.Consultation, error) {
	out, err := r.find(ctx, bson.M{"professionalId": professionalID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch consultations for professional %s: %w", professionalID, err)
	}
	return out, nil
}
