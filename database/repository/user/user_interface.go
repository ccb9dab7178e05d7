package userRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"nurturebloom/models"
)

// UserRepository defines methods for user data access.
// Lookups return (nil, nil) when nothing matches.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(ctx context.Context, id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetPublicProfiles resolves the names of the given users.
	GetPublicProfiles(ctx context.Context, ids []string) (map[string]models.PublicProfile, error)
	// ListByRole retrieves every user holding the role.
	ListByRole(ctx context.Context, role models.Role) ([]models.PublicProfile, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) error
	// SetRole changes the role of a user.
	SetRole(ctx context.Context, id string, role models.Role) error
}

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo(db *mongo.Database) *MongoUserRepo {
	return &MongoUserRepo{coll: db.Collection("users")}
}
