package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"eventra/config"
	"eventra/models"

	"github.com/hibiken/asynq"
)

const TypeBookingReminder = "reminder:booking"

// How far ahead of the event the reminder fires.
const reminderLead = 24 * time.Hour

// NewBookingReminderTask builds the delayed task for a confirmed booking.
func NewBookingReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqScheduler enqueues booking reminders on the reminder queue. It
// satisfies booking.ReminderScheduler.
type AsynqScheduler struct {
	client *asynq.Client
}

// NewAsynqScheduler connects a scheduler to the configured Redis queue.
func NewAsynqScheduler() *AsynqScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &AsynqScheduler{client: client}
}

// ScheduleBookingReminder enqueues a reminder 24 hours ahead of the event.
// Events closer than that get no reminder.
func (s *AsynqScheduler) ScheduleBookingReminder(payload models.ReminderPayload) error {
	fireAt := payload.EventDate.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		return nil
	}

	task, opts, err := NewBookingReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder task: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (s *AsynqScheduler) Close() error {
	return s.client.Close()
}
