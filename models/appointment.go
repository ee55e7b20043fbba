package models

import "time"

// DateLayout is the wire format for calendar dates ("YYYY-MM-DD", naive local time).
const DateLayout = "2006-01-02"

// Appointment status values.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Appointment represents a scheduled clinic encounter.
type Appointment struct {
	ID         string    `bson:"id" json:"id"`                   // Unique appointment identifier (UUID)
	StaffID    string    `bson:"staff_id" json:"staffId"`        // Staff member the appointment is assigned to
	Date       string    `bson:"date" json:"date"`               // Appointment date in "YYYY-MM-DD" format
	Start      int       `bson:"start" json:"start"`             // Start time, minutes from midnight
	Duration   int       `bson:"duration" json:"duration"`       // Normalized duration in minutes, >= 0
	Label      string    `bson:"label" json:"label"`             // Procedure/visit label shown on the block
	ClientName string    `bson:"client_name" json:"clientName"`  // Display-only
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Status     string    `bson:"status" json:"status"`           // e.g. "confirmed", "cancelled"
	Recurrence string    `bson:"recurrence,omitempty" json:"recurrence,omitempty"` // Opaque; never expanded
	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
}

// End returns the exclusive end minute of the appointment's half-open interval.
func (a Appointment) End() int {
	return a.Start + a.Duration
}

// StartClock splits the start minute into (hour, minute) of day.
func (a Appointment) StartClock() (hour, minute int) {
	return a.Start / 60, a.Start % 60
}
