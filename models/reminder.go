package models

// ReminderPayload is the asynq task payload for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	StaffID       string `json:"staffId"`
	Date          string `json:"date"`
	Start         int    `json:"start"`
	Label         string `json:"label"`
	ClientName    string `json:"clientName"`
}
