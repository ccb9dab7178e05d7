package webinar

import (
	"context"
	"time"

	userRepo "nurturebloom/database/repository/user"
	webinarRepo "nurturebloom/database/repository/webinar"
	"nurturebloom/models"
)

// WebinarService manages group sessions and their seat registrations.
type WebinarService interface {
	Create(ctx context.Context, actor models.Actor, input models.CreateWebinarInput) (*models.WebinarView, error)
	Update(ctx context.Context, id string, input models.UpdateWebinarInput, actor models.Actor) (*models.WebinarView, error)
	Delete(ctx context.Context, id string, actor models.Actor) error
	Get(ctx context.Context, id string) (*models.WebinarView, error)

	Register(ctx context.Context, id string, actor models.Actor) (*models.WebinarView, error)
	CancelRegistration(ctx context.Context, id string, actor models.Actor) (*models.WebinarView, error)
	MarkAttendance(ctx context.Context, id string, input models.AttendanceInput, actor models.Actor) (*models.WebinarView, error)

	ListUpcoming(ctx context.Context) ([]models.WebinarView, error)
	ListAll(ctx context.Context) ([]models.WebinarView, error)
	ListRecorded(ctx context.Context) ([]models.WebinarView, error)
	ListByTag(ctx context.Context, tag string) ([]models.WebinarView, error)
	ListRegistered(ctx context.Context, actor models.Actor) ([]models.WebinarView, error)
}

// ReminderScheduler queues and withdraws per-attendee webinar reminders.
type ReminderScheduler interface {
	ScheduleWebinarReminder(ctx context.Context, w models.Webinar, attendeeID string) error
	CancelWebinarReminder(ctx context.Context, webinarID, attendeeID string) error
}

// DefaultWebinarService implements WebinarService.
type DefaultWebinarService struct {
	Repo      webinarRepo.WebinarRepository
	Users     userRepo.UserRepository
	Reminders ReminderScheduler

	now func() time.Time
}

func NewWebinarService(repo webinarRepo.WebinarRepository, users userRepo.UserRepository, reminders ReminderScheduler) *DefaultWebinarService {
	return &DefaultWebinarService{
		Repo:      repo,
		Users:     users,
		Reminders: reminders,
		now:       time.Now,
	}
}
