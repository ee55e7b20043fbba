package appointmentRepo

import (
	"context"

	"clinicsched/models"
)

// AppointmentRepository abstracts appointment persistence.
type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// FetchRange returns non-cancelled appointments for one staff member with
	// dates in [from, to] inclusive, ordered by date then start minute.
	FetchRange(ctx context.Context, staffID, from, to string) ([]models.Appointment, error)
	Cancel(ctx context.Context, id string) error
}
