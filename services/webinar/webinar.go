package webinar

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	webinarRepo "nurturebloom/database/repository/webinar"
	"nurturebloom/models"
	"nurturebloom/utils"
)

var errWebinarNotFound = utils.NewAppError(utils.KindNotFound, "Webinar not found")

func (s *DefaultWebinarService) Create(ctx context.Context, actor models.Actor, input models.CreateWebinarInput) (*models.WebinarView, error) {
	if !canPresent(actor) {
		return nil, utils.ErrNotAuthorized
	}
	window := models.TimeWindow{Start: input.Date, DurationMinutes: input.Duration}
	if err := window.Validate(); err != nil {
		return nil, utils.ErrInvalidWindow
	}
	if input.Capacity <= 0 {
		return nil, utils.ErrInvalidCapacity
	}

	now := s.now()
	w := &models.Webinar{
		TimeWindow:    window,
		ID:            uuid.New().String(),
		Title:         input.Title,
		Description:   input.Description,
		PresenterID:   actor.ID,
		Capacity:      input.Capacity,
		Registrations: []models.Registration{},
		Tags:          input.Tags,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if w.Tags == nil {
		w.Tags = []string{}
	}
	if err := s.Repo.Create(ctx, w); err != nil {
		return nil, err
	}
	utils.GetLogger().Info("Webinar created",
		zap.String("webinarId", w.ID),
		zap.String("presenterId", w.PresenterID),
		zap.Int("capacity", w.Capacity))
	return s.view(ctx, *w), nil
}

func (s *DefaultWebinarService) Update(ctx context.Context, id string, input models.UpdateWebinarInput, actor models.Actor) (*models.WebinarView, error) {
	w, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManage(*w, actor) {
		return nil, utils.ErrNotAuthorized
	}

	moved := false
	if input.Title != nil {
		w.Title = *input.Title
	}
	if input.Description != nil {
		w.Description = *input.Description
	}
	if input.Date != nil && !input.Date.Equal(w.Start) {
		w.Start = *input.Date
		moved = true
	}
	if input.Duration != nil {
		w.DurationMinutes = *input.Duration
	}
	if err := w.TimeWindow.Validate(); err != nil {
		return nil, utils.ErrInvalidWindow
	}
	if input.Capacity != nil {
		w.Capacity = *input.Capacity
	}
	if w.Capacity <= 0 || w.Capacity < len(w.Registrations) {
		return nil, utils.ErrInvalidCapacity
	}
	if input.Tags != nil {
		w.Tags = input.Tags
	}
	if input.RecordingURL != nil {
		w.RecordingURL = *input.RecordingURL
	}
	if input.IsRecorded != nil {
		w.IsRecorded = *input.IsRecorded
	}
	w.UpdatedAt = s.now()

	if err := s.Repo.Update(ctx, w); err != nil {
		if !errors.Is(err, webinarRepo.ErrConditionFailed) {
			return nil, err
		}
		// Either the webinar is gone or registrations arrived since the
		// read and no longer fit.
		if _, err := s.load(ctx, id); err != nil {
			return nil, err
		}
		return nil, utils.ErrInvalidCapacity
	}

	if moved {
		s.rescheduleReminders(ctx, *w)
	}
	return s.view(ctx, *w), nil
}

func (s *DefaultWebinarService) Delete(ctx context.Context, id string, actor models.Actor) error {
	w, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if !canManage(*w, actor) {
		return utils.ErrNotAuthorized
	}
	if w.HasStarted(s.now()) && len(w.Registrations) > 0 {
		return utils.ErrPastRecord
	}
	if err := s.Repo.Delete(ctx, w.ID); err != nil {
		if errors.Is(err, webinarRepo.ErrWebinarNotFound) {
			return errWebinarNotFound
		}
		return err
	}
	for _, r := range w.Registrations {
		s.cancelReminder(ctx, w.ID, r.AttendeeID)
	}
	return nil
}

func (s *DefaultWebinarService) Get(ctx context.Context, id string) (*models.WebinarView, error) {
	w, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.view(ctx, *w), nil
}

// Register takes a seat for the actor. The storage write re-checks every
// rule, so when it loses a race the fresh state decides the error.
func (s *DefaultWebinarService) Register(ctx context.Context, id string, actor models.Actor) (*models.WebinarView, error) {
	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		w, err := s.load(ctx, id)
		if err != nil {
			return nil, err
		}
		now := s.now()
		if err := registrationError(*w, actor.ID, now); err != nil {
			return nil, err
		}

		reg := models.Registration{AttendeeID: actor.ID, RegisteredAt: now}
		err = s.Repo.AddRegistration(ctx, w.ID, reg, now)
		if errors.Is(err, webinarRepo.ErrConditionFailed) {
			continue
		}
		if err != nil {
			return nil, err
		}

		w.Registrations = append(w.Registrations, reg)
		if err := s.Reminders.ScheduleWebinarReminder(ctx, *w, actor.ID); err != nil {
			utils.GetLogger().Warn("Failed to schedule webinar reminder",
				zap.String("webinarId", w.ID), zap.String("attendeeId", actor.ID), zap.Error(err))
		}
		return s.view(ctx, *w), nil
	}
	return nil, s.finalError(ctx, id, func(w models.Webinar) error {
		return registrationError(w, actor.ID, s.now())
	})
}

func (s *DefaultWebinarService) CancelRegistration(ctx context.Context, id string, actor models.Actor) (*models.WebinarView, error) {
	for attempt := 0; attempt < maxWriteAttempts; attempt++ {
		w, err := s.load(ctx, id)
		if err != nil {
			return nil, err
		}
		now := s.now()
		if err := cancellationError(*w, actor.ID, now); err != nil {
			return nil, err
		}

		err = s.Repo.RemoveRegistration(ctx, w.ID, actor.ID, now)
		if errors.Is(err, webinarRepo.ErrConditionFailed) {
			continue
		}
		if err != nil {
			return nil, err
		}

		kept := make([]models.Registration, 0, len(w.Registrations))
		for _, r := range w.Registrations {
			if r.AttendeeID != actor.ID {
				kept = append(kept, r)
			}
		}
		w.Registrations = kept
		s.cancelReminder(ctx, w.ID, actor.ID)
		return s.view(ctx, *w), nil
	}
	return nil, s.finalError(ctx, id, func(w models.Webinar) error {
		return cancellationError(w, actor.ID, s.now())
	})
}

// finalError classifies the webinar's latest state once the retries of a
// guarded write are used up.
func (s *DefaultWebinarService) finalError(ctx context.Context, id string, classify func(models.Webinar) error) error {
	w, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if err := classify(*w); err != nil {
		return err
	}
	return fmt.Errorf("webinar %s kept changing during the update", id)
}

func (s *DefaultWebinarService) MarkAttendance(ctx context.Context, id string, input models.AttendanceInput, actor models.Actor) (*models.WebinarView, error) {
	w, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canManage(*w, actor) {
		return nil, utils.ErrNotAuthorized
	}
	if _, ok := w.FindRegistration(input.UserID); !ok {
		return nil, utils.ErrNotRegistered
	}
	attended := input.Attended != nil && *input.Attended

	if err := s.Repo.SetAttendance(ctx, w.ID, input.UserID, attended); err != nil {
		if errors.Is(err, webinarRepo.ErrConditionFailed) {
			return nil, utils.ErrNotRegistered
		}
		return nil, err
	}
	for i := range w.Registrations {
		if w.Registrations[i].AttendeeID == input.UserID {
			w.Registrations[i].Attended = attended
		}
	}
	return s.view(ctx, *w), nil
}

func (s *DefaultWebinarService) load(ctx context.Context, id string) (*models.Webinar, error) {
	w, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, errWebinarNotFound
	}
	return w, nil
}

func (s *DefaultWebinarService) cancelReminder(ctx context.Context, webinarID, attendeeID string) {
	if err := s.Reminders.CancelWebinarReminder(ctx, webinarID, attendeeID); err != nil {
		utils.GetLogger().Warn("Failed to cancel webinar reminder",
			zap.String("webinarId", webinarID), zap.String("attendeeId", attendeeID), zap.Error(err))
	}
}

func (s *DefaultWebinarService) rescheduleReminders(ctx context.Context, w models.Webinar) {
	for _, r := range w.Registrations {
		s.cancelReminder(ctx, w.ID, r.AttendeeID)
		if err := s.Reminders.ScheduleWebinarReminder(ctx, w, r.AttendeeID); err != nil {
			utils.GetLogger().Warn("Failed to reschedule webinar reminder",
				zap.String("webinarId", w.ID), zap.String("attendeeId", r.AttendeeID), zap.Error(err))
		}
	}
}
