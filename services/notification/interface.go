package notification

import (
	"context"

	"clinicsched/models"
)

// NotificationService delivers appointment reminders to staff. Push
// transport is an external collaborator; the default sink logs and
// optionally forwards to a configured webhook.
type NotificationService interface {
	SendAppointmentReminder(ctx context.Context, payload models.ReminderPayload) error
}
