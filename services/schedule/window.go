package schedule

import (
	"fmt"

	"clinicsched/config"
	"clinicsched/models"
)

// DefaultWindow is the visible day range used when configuration is absent or invalid.
var DefaultWindow = models.TimeWindow{StartHour: 6, EndHour: 19}

// WindowFromConfig builds the grid window from app configuration, falling back
// to the default bounds when the configured pair is unusable.
func WindowFromConfig() models.TimeWindow {
	w := models.TimeWindow{
		StartHour: config.AppConfig.DayStartHour,
		EndHour:   config.AppConfig.DayEndHour,
	}
	if !w.Valid() {
		return DefaultWindow
	}
	return w
}

// ValidateWindow returns an error describing an invalid window.
func ValidateWindow(w models.TimeWindow) error {
	if !w.Valid() {
		return fmt.Errorf("invalid time window: start hour %d must be before end hour %d", w.StartHour, w.EndHour)
	}
	return nil
}
