package user

import (
	"context"
	"errors"

	"go.uber.org/zap"

	userRepo "nurturebloom/database/repository/user"
	"nurturebloom/models"
	"nurturebloom/utils"
)

var errUserNotFound = utils.NewAppError(utils.KindNotFound, "User not found")

func (s *DefaultUserService) Me(ctx context.Context, actor models.Actor) (*models.User, error) {
	user, err := s.Repo.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errUserNotFound
	}
	return user, nil
}

// SetRole lets an admin promote or demote an account.
func (s *DefaultUserService) SetRole(ctx context.Context, actor models.Actor, userID string, role models.Role) (*models.User, error) {
	if !actor.IsAdmin() {
		return nil, utils.ErrNotAuthorized
	}
	if !role.Valid() {
		return nil, utils.NewAppError(utils.KindInvalidInput, "Invalid role")
	}
	if err := s.Repo.SetRole(ctx, userID, role); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, errUserNotFound
		}
		return nil, err
	}
	utils.GetLogger().Info("User role changed",
		zap.String("userId", userID),
		zap.String("role", string(role)),
		zap.String("by", actor.ID))

	return s.Me(ctx, models.Actor{ID: userID, Role: role})
}

func (s *DefaultUserService) ListProfessionals(ctx context.Context) ([]models.PublicProfile, error) {
	return s.Repo.ListByRole(ctx, models.RoleProfessional)
}
