package schedule

import (
	"time"

	"clinicsched/models"
)

// DayRequest carries everything a day layout depends on. Layout is a pure
// function of the request: identical requests yield identical views.
type DayRequest struct {
	Date         string
	Staff        []models.Staff // ordered selection; duplicates are dropped
	Appointments []models.Appointment
	Zoom         ZoomState
	Width        float64   // available horizontal width in layout units
	Now          time.Time // injected clock for the current-time indicator
}

// WeekRequest carries everything a week layout depends on.
type WeekRequest struct {
	WeekStart    string // Monday of the displayed week, "YYYY-MM-DD"
	Staff        []models.Staff
	Appointments []models.Appointment // all staff, all seven days
	Zoom         ZoomState
	Width        float64
	Now          time.Time
}

// LayoutEngine maps appointments onto the zoomable time grid.
type LayoutEngine interface {
	LayoutDay(req DayRequest) models.DayView
	LayoutWeek(req WeekRequest) models.WeekView
	// NowOffset recomputes the current-time indicator for a single date,
	// used when a cached view needs a fresh indicator.
	NowOffset(date string, now time.Time, zoom ZoomState) *float64
}

// DefaultLayoutEngine is the production implementation.
type DefaultLayoutEngine struct {
	Window models.TimeWindow
}

// NewLayoutEngine builds an engine over the given window, substituting the
// default bounds if the window is invalid.
func NewLayoutEngine(window models.TimeWindow) *DefaultLayoutEngine {
	if !window.Valid() {
		window = DefaultWindow
	}
	return &DefaultLayoutEngine{Window: window}
}
