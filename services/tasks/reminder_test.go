package tasks

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nurturebloom/models"
)

func TestNewWebinarReminderTask(t *testing.T) {
	start := time.Date(2025, 5, 1, 17, 0, 0, 0, time.UTC)
	payload := models.WebinarReminderPayload{WebinarID: "w1", AttendeeID: "u1", Title: "Sleep basics", StartsAt: start}

	task, opts, err := NewWebinarReminderTask(payload, start.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, TypeWebinarReminder, task.Type())
	assert.Len(t, opts, 3)

	var decoded models.WebinarReminderPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, payload, decoded)
}

func TestReminderTaskIDIsPerRegistration(t *testing.T) {
	assert.Equal(t, ReminderTaskID("w1", "u1"), ReminderTaskID("w1", "u1"))
	assert.NotEqual(t, ReminderTaskID("w1", "u1"), ReminderTaskID("w1", "u2"))
	assert.NotEqual(t, ReminderTaskID("w1", "u1"), ReminderTaskID("w2", "u1"))
}
