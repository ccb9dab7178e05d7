package user

import (
	"context"
	"time"

	userRepo "nurturebloom/database/repository/user"
	"nurturebloom/models"
	"nurturebloom/utils"
)

// UserService covers registration, sessions and role management.
type UserService interface {
	Register(ctx context.Context, input models.UserRegistration) (*AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*AuthResponse, error)
	// Authenticate resolves a bearer token to its actor, rejecting revoked tokens.
	Authenticate(ctx context.Context, token string) (models.Actor, error)
	Me(ctx context.Context, actor models.Actor) (*models.User, error)
	Logout(ctx context.Context, token string) error
	SetRole(ctx context.Context, actor models.Actor, userID string, role models.Role) (*models.User, error)
	ListProfessionals(ctx context.Context) ([]models.PublicProfile, error)
}

// RevocationStore remembers tokens that were logged out before expiring.
type RevocationStore interface {
	Revoke(ctx context.Context, tokenHash string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenHash string) (bool, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo        userRepo.UserRepository
	Tokens      *utils.TokenService
	Revocations RevocationStore

	now func() time.Time
}

func NewUserService(repo userRepo.UserRepository, tokens *utils.TokenService, revocations RevocationStore) *DefaultUserService {
	return &DefaultUserService{
		Repo:        repo,
		Tokens:      tokens,
		Revocations: revocations,
		now:         time.Now,
	}
}

// AuthResponse contains the issued token and the account it belongs to.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      *models.User `json:"user"`
}
