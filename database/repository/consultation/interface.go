// File: database/repository/consultation/interface.go
package consultationRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"nurturebloom/models"
)

// ErrConsultationNotFound is returned by writes that match no consultation.
var ErrConsultationNotFound = errors.New("consultation not found")

type ConsultationRepository interface {
	Create(ctx context.Context, c *models.Consultation) error
	GetByID(ctx context.Context, id string) (*models.Consultation, error)
	// ListScheduledOverlapping returns the professional's scheduled consultations
	// whose stored range intersects window, skipping excludeID when set.
	ListScheduledOverlapping(ctx context.Context, professionalID string, window models.TimeWindow, excludeID string) ([]models.Consultation, error)
	ListByRequester(ctx context.Context, requesterID string) ([]models.Consultation, error)
	ListByProfessional(ctx context.Context, professionalID string) ([]models.Consultation, error)
	Update(ctx context.Context, c *models.Consultation) error
	Delete(ctx context.Context, id string) error
}

type MongoConsultationRepo struct {
	coll *mongo.Collection
}

// NewMongoConsultationRepo constructs a new MongoDB ConsultationRepository.
func NewMongoConsultationRepo(db *mongo.Database) *MongoConsultationRepo {
	return &MongoConsultationRepo{
		coll: db.Collection("consultations"),
	}
}
