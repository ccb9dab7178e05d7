package booking

import (
	"context"
	"errors"
	"fmt"

	"nurturebloom/models"
	"nurturebloom/utils"
)

// CheckConsultationConflict reports whether proposed overlaps any scheduled
// consultation among candidates, ignoring excludeID. The window is validated
// before any comparison.
func CheckConsultationConflict(candidates []models.Consultation, proposed models.TimeWindow, excludeID string) (bool, error) {
	if err := proposed.Validate(); err != nil {
		return false, utils.ErrInvalidWindow
	}
	for _, c := range candidates {
		if excludeID != "" && c.ID == excludeID {
			continue
		}
		if c.Status != models.StatusScheduled {
			continue
		}
		if c.TimeWindow.Overlaps(proposed) {
			return true, nil
		}
	}
	return false, nil
}

// hasConflict loads the professional's candidates for window and runs the check.
func (s *DefaultConsultationService) hasConflict(ctx context.Context, professionalID string, window models.TimeWindow, excludeID string) (bool, error) {
	if err := window.Validate(); err != nil {
		return false, utils.ErrInvalidWindow
	}
	candidates, err := s.Repo.ListScheduledOverlapping(ctx, professionalID, window, excludeID)
	if err != nil {
		return false, fmt.Errorf("failed to load consultations for %s: %w", professionalID, err)
	}
	return CheckConsultationConflict(candidates, window, excludeID)
}

// lockProfessional holds the professional's booking lock, so that two
// check-then-write sequences for the same calendar never interleave.
func (s *DefaultConsultationService) lockProfessional(ctx context.Context, professionalID string) (func(), error) {
	if s.Locker == nil {
		return func() {}, nil
	}
	release, err := s.Locker.Lock(ctx, professionalID)
	if err != nil {
		if errors.Is(err, utils.ErrLockHeld) {
			return nil, utils.NewAppError(utils.KindSlotUnavailable, "This professional's calendar is busy, please try again")
		}
		return nil, fmt.Errorf("failed to lock calendar of %s: %w", professionalID, err)
	}
	return release, nil
}
