package agenda

import (
	"fmt"
	"time"

	"clinicsched/models"
)

// Navigation units.
const (
	UnitDay   = "day"
	UnitWeek  = "week"
	UnitMonth = "month"
)

// Navigate steps the given date by direction in the given unit. A swipe maps
// to direction -1 (previous) or +1 (next); larger magnitudes step further.
func (svc *DefaultAgendaService) Navigate(unit, date string, direction int) (string, error) {
	day, err := time.ParseInLocation(models.DateLayout, date, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	switch unit {
	case UnitDay:
		return day.AddDate(0, 0, direction).Format(models.DateLayout), nil
	case UnitWeek:
		return day.AddDate(0, 0, 7*direction).Format(models.DateLayout), nil
	case UnitMonth:
		return day.AddDate(0, direction, 0).Format(models.DateLayout), nil
	default:
		return "", fmt.Errorf("unknown navigation unit %q", unit)
	}
}
