// File: database/repository/symptom/interface.go
package symptomRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"nurturebloom/models"
)

// SymptomRepository covers the symptom catalogue and the append-only check log.
type SymptomRepository interface {
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, symptoms []models.Symptom) error
	ListAll(ctx context.Context) ([]models.Symptom, error)
	ListByCategory(ctx context.Context, category models.SymptomCategory) ([]models.Symptom, error)
	// GetByIDs returns the symptoms that exist among ids; unknown ids are skipped.
	GetByIDs(ctx context.Context, ids []string) ([]models.Symptom, error)

	CreateCheck(ctx context.Context, check *models.SymptomCheck) error
	GetCheck(ctx context.Context, id string) (*models.SymptomCheck, error)
	ListChecksByUser(ctx context.Context, userID string) ([]models.SymptomCheck, error)
}

type MongoSymptomRepo struct {
	symptoms *mongo.Collection
	checks   *mongo.Collection
}

// NewMongoSymptomRepo constructs a new MongoDB SymptomRepository.
func NewMongoSymptomRepo(db *mongo.Database) *MongoSymptomRepo {
	return &MongoSymptomRepo{
		symptoms: db.Collection("symptoms"),
		checks:   db.Collection("symptom_checks"),
	}
}
