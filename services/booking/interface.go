package booking

import (
	"context"

	"clinicsched/models"
)

// CreateInput is a raw creation request as received from the client. Duration
// is kept untyped because the external API sends either integer minutes or an
// "HH:MM" string; normalization happens inside the service.
type CreateInput struct {
	StaffID    string
	Date       string // "YYYY-MM-DD"
	Start      int    // minutes from midnight
	Duration   interface{}
	Label      string
	ClientName string
	Notes      string
	Recurrence string
}

// CreateResult is a successful creation outcome.
type CreateResult struct {
	Appointment *models.Appointment
	// DurationDefaulted reports that the raw duration was malformed and the
	// safe default was applied; callers surface this as a data-quality warning.
	DurationDefaulted bool
}

// BookingService guards and performs appointment creation.
type BookingService interface {
	CreateAppointment(ctx context.Context, input CreateInput) (*CreateResult, error)
	CancelAppointment(ctx context.Context, id string) error
	ListAppointments(ctx context.Context, staffID, from, to string) ([]models.Appointment, error)
}
