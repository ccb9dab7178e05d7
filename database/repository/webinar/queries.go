// File: database/repository/webinar/queries.go
package webinarRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nurturebloom/models"
)

const (
	ascending  = 1
	descending = -1
)

func (r *MongoWebinarRepo) find(ctx context.Context, filter bson.M, order int) ([]models.Webinar, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "startsAt", Value: order}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	out := []models.Webinar{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoWebinarRepo) ListUpcoming(ctx context.Context, now time.Time) ([]models.Webinar, error) {
	out, err := r.find(ctx, bson.M{"startsAt": bson.M{"$gte": now}}, ascending)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming webinars: %w", err)
	}
	return out, nil
}

func (r *MongoWebinarRepo) ListAll(ctx context.Context) ([]models.Webinar, error) {
	out, err := r.find(ctx, bson.M{}, descending)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch webinars: %w", err)
	}
	return out, nil
}

func (r *MongoWebinarRepo) ListRecorded(ctx context.Context) ([]models.Webinar, error) {
	filter := bson.M{
		"isRecorded":   true,
		"recordingUrl": bson.M{"$exists": true, "$ne": ""},
	}
	out, err := r.find(ctx, filter, descending)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recorded webinars: %w", err)
	}
	return out, nil
}

func (r *MongoWebinarRepo) ListByTag(ctx context.Context, tag string) ([]models.Webinar, error) {
	out, err := r.find(ctx, bson.M{"tags": tag}, descending)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch webinars tagged %s: %w", tag, err)
	}
	return out, nil
}

func (r *MongoWebinarRepo) ListByAttendee(ctx context.Context, attendeeID string) ([]models.Webinar, error) {
	out, err := r.find(ctx, bson.M{"registrations.userId": attendeeID}, ascending)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch webinars for attendee %s: %w", attendeeID, err)
	}
	return out, nil
}
