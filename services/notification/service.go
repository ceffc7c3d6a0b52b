package notification

import (
	"context"
	"fmt"
	"time"

	"bookflow/models"
	"bookflow/services/tasks"
	"bookflow/utils"

	"github.com/hibiken/asynq"
)

// reminderLead is how long before the appointment the reminder fires.
const reminderLead = 24 * time.Hour

// DefaultService enqueues notification tasks on the asynq queue; the
// worker in cron delivers them.
type DefaultService struct {
	Client *asynq.Client
}

func NewDefaultService(client *asynq.Client) (*DefaultService, error) {
	if client == nil {
		return nil, fmt.Errorf("notification service initialization error: asynq client is nil")
	}
	return &DefaultService{Client: client}, nil
}

// SendConfirmation enqueues the confirmation task and, when the start time
// is far enough out, a reminder scheduled ahead of the appointment.
func (s *DefaultService) SendConfirmation(ctx context.Context, payload models.ConfirmationPayload) error {
	task, err := tasks.NewConfirmationTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build confirmation task: %w", err)
	}
	if _, err := s.Client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("failed to enqueue confirmation: %w", err)
	}

	start, err := time.Parse("2006-01-02T15:04:05", payload.StartTime)
	if err != nil {
		// Start time format is owned upstream; skip the reminder rather
		// than fail the confirmation.
		utils.GetLogger().Sugar().Warnf("notification: unparseable start time %q, skipping reminder", payload.StartTime)
		return nil
	}

	fireAt := start.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		return nil
	}

	reminder, opts, err := tasks.NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.Client.EnqueueContext(ctx, reminder, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
