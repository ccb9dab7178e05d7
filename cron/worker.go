package cron

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"nurturebloom/config"
	"nurturebloom/models"
	"nurturebloom/services/tasks"
	"nurturebloom/utils"
)

// RedisOpt is the asynq connection for the reminder queue.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitReminderWorker runs the async worker in background and returns the
// server so the caller can shut it down.
func InitReminderWorker() *asynq.Server {
	logger := utils.GetLogger()
	srv := asynq.NewServer(
		RedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
			Logger: logger.Sugar(),
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeWebinarReminder, HandleWebinarReminder)

	go func() {
		logger.Info("Starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("Reminder worker failed to start",
				zap.Int("attempt", attempts), zap.Int("maxAttempts", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Fatal("Reminder worker gave up after max retry attempts")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

// HandleWebinarReminder delivers one queued reminder. Delivery is a log line
// for the notification pipeline to pick up.
func HandleWebinarReminder(ctx context.Context, task *asynq.Task) error {
	var p models.WebinarReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		utils.GetLogger().Error("Invalid webinar reminder payload", zap.Error(err))
		return asynq.SkipRetry
	}

	utils.GetLogger().Info("Webinar reminder",
		zap.String("webinarId", p.WebinarID),
		zap.String("attendeeId", p.AttendeeID),
		zap.String("title", p.Title),
		zap.Time("startsAt", p.StartsAt))
	return nil
}
