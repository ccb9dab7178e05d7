// File: database/repository/webinar/registrations.go
package webinarRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"nurturebloom/models"
)

func (r *MongoWebinarRepo) AddRegistration(ctx context.Context, webinarID string, reg models.Registration, now time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Every rule the service checked is re-asserted here so the push is
	// atomic with respect to concurrent registrations.
	filter := bson.M{
		"id":                   webinarID,
		"startsAt":             bson.M{"$gt": now},
		"registrations.userId": bson.M{"$ne": reg.AttendeeID},
		"$expr": bson.M{"$lt": bson.A{
			bson.M{"$size": "$registrations"},
			"$capacity",
		}},
	}
	update := bson.M{
		"$push": bson.M{"registrations": reg},
		"$set":  bson.M{"updatedAt": now},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to register %s for webinar %s: %w", reg.AttendeeID, webinarID, err)
	}
	if res.MatchedCount == 0 {
		return ErrConditionFailed
	}
	return nil
}

func (r *MongoWebinarRepo) RemoveRegistration(ctx context.Context, webinarID, attendeeID string, now time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":                   webinarID,
		"startsAt":             bson.M{"$gt": now},
		"registrations.userId": attendeeID,
	}
	update := bson.M{
		"$pull": bson.M{"registrations": bson.M{"userId": attendeeID}},
		"$set":  bson.M{"updatedAt": now},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to cancel registration of %s for webinar %s: %w", attendeeID, webinarID, err)
	}
	if res.MatchedCount == 0 {
		return ErrConditionFailed
	}
	return nil
}

func (r *MongoWebinarRepo) SetAttendance(ctx context.Context, webinarID, attendeeID string, attended bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":                   webinarID,
		"registrations.userId": attendeeID,
	}
	update := bson.M{"$set": bson.M{
		"registrations.$.attended": attended,
		"updatedAt":                time.Now(),
	}}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update attendance of %s for webinar %s: %w", attendeeID, webinarID, err)
	}
	if res.MatchedCount == 0 {
		return ErrConditionFailed
	}
	return nil
}
