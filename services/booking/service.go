package booking

import (
	"context"
	"fmt"
	"time"

	appointmentRepo "clinicsched/database/repository/appointment"
	staffRepo "clinicsched/database/repository/staff"
	"clinicsched/models"
	"clinicsched/services/schedule"
	"clinicsched/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo      appointmentRepo.AppointmentRepository
	StaffRepo staffRepo.StaffRepository
	Reminders ReminderScheduler // optional; nil disables reminders
	Cache     *redis.Client     // optional; nil disables week-view invalidation
	Logger    *zap.Logger
}

// CreateAppointment runs the full guarded creation flow: normalize the raw
// duration, fetch the staff member's appointments for the enclosing calendar
// month, reject on overlap, then persist. A failed availability fetch aborts
// creation; the check is never silently skipped.
func (svc *DefaultBookingService) CreateAppointment(ctx context.Context, input CreateInput) (*CreateResult, error) {
	if _, err := time.ParseInLocation(models.DateLayout, input.Date, time.Local); err != nil {
		return nil, fmt.Errorf("%w: bad date %q", ErrInvalidCandidate, input.Date)
	}
	if input.Start < 0 || input.Start >= 24*60 {
		return nil, fmt.Errorf("%w: start minute %d out of range", ErrInvalidCandidate, input.Start)
	}

	staff, err := svc.StaffRepo.GetByID(ctx, input.StaffID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up staff member: %w", err)
	}
	if staff == nil {
		return nil, fmt.Errorf("%w: %s", ErrStaffNotFound, input.StaffID)
	}

	minutes, defaulted := schedule.NormalizeDuration(input.Duration)
	if defaulted {
		svc.Logger.Warn("Malformed appointment duration, applying default",
			zap.Any("raw", input.Duration),
			zap.Int("default", schedule.DefaultDurationMinutes),
			zap.String("staffId", input.StaffID))
	}

	from, to := monthBounds(input.Date)
	existing, err := svc.Repo.FetchRange(ctx, input.StaffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAvailabilityCheck, err)
	}

	candidate := Candidate{
		StaffID:  input.StaffID,
		Date:     input.Date,
		Start:    input.Start,
		Duration: minutes,
	}
	if hit := FindConflict(candidate, existing); hit != nil {
		return nil, fmt.Errorf("%w: %s %s [%s, %s)", ErrScheduleConflict,
			hit.Label, hit.Date, clock(hit.Start), clock(hit.End()))
	}

	appt := &models.Appointment{
		ID:         uuid.New().String(),
		StaffID:    input.StaffID,
		Date:       input.Date,
		Start:      input.Start,
		Duration:   minutes,
		Label:      input.Label,
		ClientName: input.ClientName,
		Notes:      input.Notes,
		Status:     models.StatusConfirmed,
		Recurrence: input.Recurrence,
		CreatedAt:  time.Now(),
	}
	if err := svc.Repo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	// Reminder and cache maintenance are best-effort follow-ups; the booking
	// itself is already committed.
	if svc.Reminders != nil {
		if err := svc.Reminders.ScheduleReminder(ctx, *appt); err != nil {
			svc.Logger.Warn("Failed to schedule reminder", zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}
	svc.invalidateWeekViews(ctx)

	return &CreateResult{Appointment: appt, DurationDefaulted: defaulted}, nil
}

// CancelAppointment marks an appointment cancelled and invalidates cached views.
func (svc *DefaultBookingService) CancelAppointment(ctx context.Context, id string) error {
	if err := svc.Repo.Cancel(ctx, id); err != nil {
		return err
	}
	svc.invalidateWeekViews(ctx)
	return nil
}

// ListAppointments returns a staff member's appointments within [from, to].
func (svc *DefaultBookingService) ListAppointments(ctx context.Context, staffID, from, to string) ([]models.Appointment, error) {
	return svc.Repo.FetchRange(ctx, staffID, from, to)
}

// invalidateWeekViews bumps the cache version; cached week views keyed under
// the old version become unreachable and expire via TTL.
func (svc *DefaultBookingService) invalidateWeekViews(ctx context.Context) {
	if svc.Cache == nil {
		return
	}
	if err := svc.Cache.Incr(ctx, utils.WeekViewCachePrefix+"ver").Err(); err != nil {
		svc.Logger.Warn("Failed to invalidate week-view cache", zap.Error(err))
	}
}

// monthBounds returns the first and last date of the calendar month
// containing the given date. The input is validated by the caller.
func monthBounds(date string) (from, to string) {
	day, _ := time.ParseInLocation(models.DateLayout, date, time.Local)
	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	last := first.AddDate(0, 1, -1)
	return first.Format(models.DateLayout), last.Format(models.DateLayout)
}

func clock(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}
