// FILE: database/repository/consultation/indexes.go
package consultationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the consultations collection.
func (r *MongoConsultationRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Conflict detection: professional + status, then the time range.
		{
			Keys: bson.D{
				{Key: "professionalId", Value: 1},
				{Key: "status", Value: 1},
				{Key: "startsAt", Value: 1},
				{Key: "endsAt", Value: 1},
			},
			Options: options.Index().SetName("professional_status_range_idx"),
		},
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "startsAt", Value: 1}},
			Options: options.Index().SetName("user_start_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create consultation indexes: %w", err)
	}
	return nil
}
