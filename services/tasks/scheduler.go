package tasks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"nurturebloom/models"
	"nurturebloom/utils"
)

const reminderQueue = "default"

// AsynqReminderScheduler queues webinar reminders on the asynq Redis queue.
type AsynqReminderScheduler struct {
	Client    *asynq.Client
	Inspector *asynq.Inspector
	LeadTime  time.Duration

	now func() time.Time
}

func NewAsynqReminderScheduler(opt asynq.RedisClientOpt, leadTime time.Duration) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		Client:    asynq.NewClient(opt),
		Inspector: asynq.NewInspector(opt),
		LeadTime:  leadTime,
		now:       time.Now,
	}
}

// ScheduleWebinarReminder queues a reminder LeadTime before the webinar
// starts, or right away when that moment has already passed.
func (s *AsynqReminderScheduler) ScheduleWebinarReminder(ctx context.Context, w models.Webinar, attendeeID string) error {
	fireAt := w.Start.Add(-s.LeadTime)
	if now := s.now(); fireAt.Before(now) {
		fireAt = now
	}
	task, opts, err := NewWebinarReminderTask(models.WebinarReminderPayload{
		WebinarID:  w.ID,
		AttendeeID: attendeeID,
		Title:      w.Title,
		StartsAt:   w.Start,
	}, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}

	info, err := s.Client.EnqueueContext(ctx, task, opts...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder for webinar %s: %w", w.ID, err)
	}
	utils.GetLogger().Debug("Webinar reminder queued",
		zap.String("taskId", info.ID),
		zap.Time("processAt", info.NextProcessAt))
	return nil
}

func (s *AsynqReminderScheduler) CancelWebinarReminder(_ context.Context, webinarID, attendeeID string) error {
	err := s.Inspector.DeleteTask(reminderQueue, ReminderTaskID(webinarID, attendeeID))
	if err == nil || errors.Is(err, asynq.ErrTaskNotFound) || errors.Is(err, asynq.ErrQueueNotFound) {
		return nil
	}
	return fmt.Errorf("failed to delete reminder for webinar %s: %w", webinarID, err)
}

func (s *AsynqReminderScheduler) Close() error {
	if err := s.Inspector.Close(); err != nil {
		return err
	}
	return s.Client.Close()
}
