package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userRepo "nurturebloom/database/repository/user"
	"nurturebloom/models"
	"nurturebloom/utils"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a patient account and signs it in.
func (s *DefaultUserService) Register(ctx context.Context, input models.UserRegistration) (*AuthResponse, error) {
	email := normalizeEmail(input.Email)
	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ErrUserExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:             uuid.New().String(),
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		Email:          email,
		PasswordHash:   string(hashedPassword),
		Role:           models.RolePatient,
		ChildBirthDate: input.ChildBirthDate,
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		if errors.Is(err, userRepo.ErrDuplicateEmail) {
			return nil, utils.ErrUserExists
		}
		return nil, err
	}
	utils.GetLogger().Info("User registered", zap.String("userId", user.ID))

	return s.issue(user)
}

// Login verifies the credentials. Unknown email and wrong password fail the same way.
func (s *DefaultUserService) Login(ctx context.Context, req models.LoginRequest) (*AuthResponse, error) {
	user, err := s.Repo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, utils.ErrInvalidCredentials
	}
	return s.issue(user)
}

func (s *DefaultUserService) Authenticate(ctx context.Context, token string) (models.Actor, error) {
	claims, err := s.Tokens.ValidateToken(token)
	if err != nil {
		return models.Actor{}, err
	}
	if s.Revocations != nil {
		revoked, err := s.Revocations.IsRevoked(ctx, utils.HashToken(token))
		if err != nil {
			return models.Actor{}, err
		}
		if revoked {
			return models.Actor{}, utils.ErrInvalidToken
		}
	}

	// The role in the token is a snapshot; role changes apply immediately.
	u, err := s.Repo.GetByID(ctx, claims.Actor().ID)
	if err != nil {
		return models.Actor{}, err
	}
	if u == nil {
		return models.Actor{}, utils.ErrInvalidToken
	}
	return u.Actor(), nil
}

// Logout revokes the token until it would have expired anyway.
func (s *DefaultUserService) Logout(ctx context.Context, token string) error {
	claims, err := s.Tokens.ValidateToken(token)
	if err != nil {
		// An unusable token needs no revocation.
		return nil
	}
	return s.Revocations.Revoke(ctx, utils.HashToken(token), claims.ExpiresIn(s.now()))
}

func (s *DefaultUserService) issue(user *models.User) (*AuthResponse, error) {
	token, expiresAt, err := s.Tokens.GenerateToken(user.Actor())
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &AuthResponse{Token: token, ExpiresAt: expiresAt, User: user}, nil
}
