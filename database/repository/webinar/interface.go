// File: database/repository/webinar/interface.go
package webinarRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"nurturebloom/models"
)

var (
	// ErrWebinarNotFound is returned by writes that match no webinar.
	ErrWebinarNotFound = errors.New("webinar not found")
	// ErrConditionFailed is returned when a guarded write matched no document
	// because one of its conditions no longer holds.
	ErrConditionFailed = errors.New("webinar changed concurrently")
)

type WebinarRepository interface {
	Create(ctx context.Context, w *models.Webinar) error
	GetByID(ctx context.Context, id string) (*models.Webinar, error)
	// Update writes the editable fields. The write only applies while the
	// stored registrations still fit the new capacity.
	Update(ctx context.Context, w *models.Webinar) error
	Delete(ctx context.Context, id string) error

	// AddRegistration appends reg only if the webinar has not started at now,
	// has a free seat and the attendee is not registered yet.
	AddRegistration(ctx context.Context, webinarID string, reg models.Registration, now time.Time) error
	// RemoveRegistration pulls the attendee's registration only if the webinar
	// has not started at now and the attendee is registered.
	RemoveRegistration(ctx context.Context, webinarID, attendeeID string, now time.Time) error
	SetAttendance(ctx context.Context, webinarID, attendeeID string, attended bool) error

	ListUpcoming(ctx context.Context, now time.Time) ([]models.Webinar, error)
	ListAll(ctx context.Context) ([]models.Webinar, error)
	ListRecorded(ctx context.Context) ([]models.Webinar, error)
	ListByTag(ctx context.Context, tag string) ([]models.Webinar, error)
	ListByAttendee(ctx context.Context, attendeeID string) ([]models.Webinar, error)
}

type MongoWebinarRepo struct {
	coll *mongo.Collection
}

// NewMongoWebinarRepo constructs a new MongoDB WebinarRepository.
func NewMongoWebinarRepo(db *mongo.Database) *MongoWebinarRepo {
	return &MongoWebinarRepo{
		coll: db.Collection("webinars"),
	}
}
