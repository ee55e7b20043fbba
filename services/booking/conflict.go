package booking

import "clinicsched/models"

// Candidate is a proposed appointment checked against a staff member's
// existing schedule before creation.
type Candidate struct {
	StaffID  string
	Date     string // "YYYY-MM-DD"
	Start    int    // minutes from midnight
	Duration int    // normalized minutes
}

// End returns the exclusive end minute of the candidate's half-open interval.
func (c Candidate) End() int {
	return c.Start + c.Duration
}

// FindConflict returns the first existing appointment whose time interval
// overlaps the candidate's, or nil when the slot is free.
//
// Existing appointments are compared only when they fall on the candidate's
// full calendar date; cancelled appointments never block. Intervals are
// half-open, so back-to-back scheduling (candidate starting exactly when an
// existing appointment ends, or vice versa) is permitted.
func FindConflict(c Candidate, existing []models.Appointment) *models.Appointment {
	for i := range existing {
		e := &existing[i]
		if e.Date != c.Date {
			continue
		}
		if e.Status == models.StatusCancelled {
			continue
		}
		if c.Start < e.End() && c.End() > e.Start {
			return e
		}
	}
	return nil
}
