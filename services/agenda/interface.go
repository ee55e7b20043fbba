package agenda

import (
	"context"
	"errors"
	"time"

	"clinicsched/models"
	"clinicsched/services/schedule"
)

// ErrStaleView is returned when a newer reload superseded this one while its
// fetches were in flight; the caller simply drops the result.
var ErrStaleView = errors.New("view superseded by a newer reload")

// AgendaService orchestrates the layout engine, the staff selection, the
// zoom state and the per-staff appointment fetches behind the calendar views.
type AgendaService interface {
	DayView(ctx context.Context, date string, staffIDs []string, width float64, now time.Time) (*models.DayView, error)
	WeekView(ctx context.Context, weekStart string, staffIDs []string, width float64, now time.Time) (*models.WeekView, error)
	// Pinch applies a completed pinch gesture's scale factor and returns the
	// clamped zoom state.
	Pinch(scale float64) schedule.ZoomState
	Zoom() schedule.ZoomState
	// Navigate steps a date by direction (-1 or +1) in the given unit
	// ("day", "week" or "month") and returns the new date.
	Navigate(unit, date string, direction int) (string, error)
}
