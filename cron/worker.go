package cron

import (
	"context"
	"encoding/json"
	"time"

	"bookflow/config"
	"bookflow/models"
	"bookflow/services/notification"
	"bookflow/services/tasks"
	"bookflow/utils"

	"github.com/hibiken/asynq"
)

// InitNotificationWorker runs the async worker in background.
func InitNotificationWorker(mailer *notification.Mailer) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmation, handleEmailTask(mailer, "confirmation"))
	mux.HandleFunc(tasks.TypeBookingReminder, handleEmailTask(mailer, "reminder"))

	go func() {
		logger := utils.GetLogger().Sugar()
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Errorf("notification worker attempt %d/%d failed: %v", attempts, maxAttempts, err)
				if attempts == maxAttempts {
					logger.Fatal("notification worker: max retry attempts reached")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleEmailTask(mailer *notification.Mailer, kind string) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		logger := utils.GetLogger().Sugar()

		var p models.ConfirmationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Errorf("notification worker: invalid %s payload: %v", kind, err)
			return err
		}

		if p.ContactEmail == "" {
			// Nothing to deliver to; the booking itself is unaffected.
			logger.Infof("notification worker: session %s has no contact email, skipping %s", p.SessionID, kind)
			return nil
		}

		var err error
		if kind == "reminder" {
			err = mailer.SendReminderEmail(p)
		} else {
			err = mailer.SendConfirmationEmail(p)
		}
		if err != nil {
			logger.Errorf("notification worker: %s delivery for session %s failed: %v", kind, p.SessionID, err)
			return err
		}

		logger.Infof("notification worker: delivered %s for session %s", kind, p.SessionID)
		return nil
	}
}
