package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"clinicsched/config"
	"clinicsched/models"

	"github.com/hibiken/asynq"
)

// TypeReminderAppointment is the asynq task type for appointment reminders.
const TypeReminderAppointment = "reminder:appointment"

// ReminderScheduler enqueues a reminder to fire ahead of an appointment.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, appt models.Appointment) error
}

// AsynqReminderScheduler enqueues reminder tasks on the Redis-backed queue
// consumed by the cron worker.
type AsynqReminderScheduler struct {
	Client *asynq.Client
	Lead   time.Duration
}

// NewReminderScheduler builds a scheduler over the configured Redis queue DB.
func NewReminderScheduler() *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	lead := time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute
	if lead <= 0 {
		lead = time.Hour
	}
	return &AsynqReminderScheduler{Client: client, Lead: lead}
}

// ScheduleReminder enqueues a reminder task processed Lead before the
// appointment start. Appointments starting too soon get no reminder.
func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, appt models.Appointment) error {
	day, err := time.ParseInLocation(models.DateLayout, appt.Date, time.Local)
	if err != nil {
		return fmt.Errorf("invalid appointment date %q: %w", appt.Date, err)
	}
	fireAt := day.Add(time.Duration(appt.Start)*time.Minute - s.Lead)
	if fireAt.Before(time.Now()) {
		return nil
	}

	payload, err := json.Marshal(models.ReminderPayload{
		AppointmentID: appt.ID,
		StaffID:       appt.StaffID,
		Date:          appt.Date,
		Start:         appt.Start,
		Label:         appt.Label,
		ClientName:    appt.ClientName,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	task := asynq.NewTask(TypeReminderAppointment, payload)
	if _, err := s.Client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
