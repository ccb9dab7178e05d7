package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"nurturebloom/models"
)

const TypeWebinarReminder = "webinar:reminder"

// ReminderTaskID is stable per registration so the task can be found again on cancel.
func ReminderTaskID(webinarID, attendeeID string) string {
	return "webinar-reminder:" + webinarID + ":" + attendeeID
}

func NewWebinarReminderTask(payload models.WebinarReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeWebinarReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(fireAt),
		asynq.TaskID(ReminderTaskID(payload.WebinarID, payload.AttendeeID)),
		asynq.MaxRetry(3),
	}

	return task, opts, nil
}
