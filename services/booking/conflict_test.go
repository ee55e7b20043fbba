package booking

import (
	"testing"

	"clinicsched/models"
)

func existing(id, staffID, date string, start, duration int) models.Appointment {
	return models.Appointment{
		ID: id, StaffID: staffID, Date: date,
		Start: start, Duration: duration, Status: models.StatusConfirmed,
	}
}

func TestFindConflictIntervals(t *testing.T) {
	day := "2026-09-01"
	booked := []models.Appointment{existing("e1", "s1", day, 9*60, 60)} // [09:00, 10:00)

	cases := []struct {
		name     string
		start    int
		duration int
		conflict bool
	}{
		{"back-to-back after is allowed", 10 * 60, 30, false},
		{"back-to-back before is allowed", 8*60 + 30, 30, false},
		{"contained inside conflicts", 9*60 + 15, 30, true},
		{"partial overlap at the tail conflicts", 9*60 + 30, 60, true},
		{"partial overlap at the head conflicts", 8*60 + 30, 60, true},
		{"enclosing the existing conflicts", 8 * 60, 180, true},
		{"identical interval conflicts", 9 * 60, 60, true},
		{"disjoint earlier is free", 7 * 60, 30, false},
		{"disjoint later is free", 11 * 60, 30, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Candidate{StaffID: "s1", Date: day, Start: tc.start, Duration: tc.duration}
			hit := FindConflict(c, booked)
			if (hit != nil) != tc.conflict {
				t.Fatalf("candidate [%d, %d): conflict = %v, want %v", tc.start, tc.start+tc.duration, hit != nil, tc.conflict)
			}
		})
	}
}

func TestFindConflictFullDateFilter(t *testing.T) {
	// Same wall-clock slot on a different date in the same month must not block.
	booked := []models.Appointment{existing("e1", "s1", "2026-09-01", 9*60, 60)}
	c := Candidate{StaffID: "s1", Date: "2026-09-08", Start: 9 * 60, Duration: 60}
	if FindConflict(c, booked) != nil {
		t.Fatalf("appointment on a different date must not conflict")
	}
}

func TestFindConflictIgnoresCancelled(t *testing.T) {
	cancelled := existing("e1", "s1", "2026-09-01", 9*60, 60)
	cancelled.Status = models.StatusCancelled

	c := Candidate{StaffID: "s1", Date: "2026-09-01", Start: 9 * 60, Duration: 60}
	if FindConflict(c, []models.Appointment{cancelled}) != nil {
		t.Fatalf("cancelled appointments must not block the slot")
	}
}

func TestFindConflictReportsBlockingAppointment(t *testing.T) {
	day := "2026-09-01"
	booked := []models.Appointment{
		existing("e1", "s1", day, 8*60, 30),
		existing("e2", "s1", day, 9*60, 60),
	}
	c := Candidate{StaffID: "s1", Date: day, Start: 9*60 + 30, Duration: 30}
	hit := FindConflict(c, booked)
	if hit == nil || hit.ID != "e2" {
		t.Fatalf("expected conflict with e2, got %+v", hit)
	}
}
