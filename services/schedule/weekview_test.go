package schedule

import (
	"testing"
	"time"

	"clinicsched/models"
)

func TestWeekStartOf(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{"monday maps to itself", time.Date(2026, 8, 31, 10, 0, 0, 0, time.Local), "2026-08-31"},
		{"wednesday maps back", time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local), "2026-08-31"},
		{"sunday belongs to the preceding monday", time.Date(2026, 9, 6, 23, 59, 0, 0, time.Local), "2026-08-31"},
		{"next monday starts a new week", time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local), "2026-09-07"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WeekStartOf(tc.in); got != tc.want {
				t.Fatalf("WeekStartOf(%v) = %s, want %s", tc.in, got, tc.want)
			}
		})
	}
}

func TestLayoutWeekSubColumns(t *testing.T) {
	e := NewLayoutEngine(testWindow)
	staff := testStaff("s1", "s2")
	width := 56.0 + 7*100 // 100 units per day cell

	view := e.LayoutWeek(WeekRequest{
		WeekStart: "2026-08-31",
		Staff:     staff,
		Appointments: []models.Appointment{
			appt("a1", "s1", "2026-09-02", 9*60, 30),
			appt("a2", "s2", "2026-09-02", 9*60, 30),
		},
		Zoom:  DefaultZoom(),
		Width: width,
	})

	if len(view.Days) != DaysPerWeek {
		t.Fatalf("expected %d day cells, got %d", DaysPerWeek, len(view.Days))
	}

	wed := view.Days[2]
	if wed.Date != "2026-09-02" {
		t.Fatalf("day cell 2 is %s, want 2026-09-02", wed.Date)
	}
	if len(wed.Blocks) != 2 {
		t.Fatalf("expected 2 blocks in the wednesday cell, got %d", len(wed.Blocks))
	}

	first, second := wed.Blocks[0], wed.Blocks[1]
	if first.StaffID != "s1" || second.StaffID != "s2" {
		t.Fatalf("sub-columns must follow selection order, got %s then %s", first.StaffID, second.StaffID)
	}
	if first.ColumnWidth != 50 || second.ColumnWidth != 50 {
		t.Fatalf("sub-column width = %f / %f, want 50", first.ColumnWidth, second.ColumnWidth)
	}
	if second.ColumnLeft != first.ColumnLeft+first.ColumnWidth {
		t.Fatalf("concurrent blocks overlap horizontally: %f vs %f", first.ColumnLeft, second.ColumnLeft)
	}
	if first.ColumnLeft != wed.Left {
		t.Fatalf("first sub-column should start at the cell edge %f, got %f", wed.Left, first.ColumnLeft)
	}
}

func TestLayoutWeekFixedHourLabels(t *testing.T) {
	e := NewLayoutEngine(testWindow)
	view := e.LayoutWeek(WeekRequest{
		WeekStart: "2026-08-31",
		Staff:     testStaff("s1"),
		Zoom:      ZoomState{SlotHeight: MaxSlotHeight},
		Width:     756,
	})
	if view.LabelInterval != 60 {
		t.Fatalf("week view must keep hour labels at any zoom, got %d", view.LabelInterval)
	}
}

func TestLayoutWeekAllDayLane(t *testing.T) {
	e := NewLayoutEngine(testWindow)
	view := e.LayoutWeek(WeekRequest{
		WeekStart: "2026-08-31",
		Staff:     testStaff("s1"),
		Appointments: []models.Appointment{
			appt("ooo", "s1", "2026-09-04", 0, 9*60), // 9h out-of-office
		},
		Zoom:  DefaultZoom(),
		Width: 756,
	})

	fri := view.Days[4]
	if len(fri.Blocks) != 0 {
		t.Fatalf("full-day appointment must not render as a timed block")
	}
	if len(fri.AllDay) != 1 || fri.AllDay[0].AppointmentID != "ooo" {
		t.Fatalf("expected the full-day appointment in the all-day lane, got %+v", fri.AllDay)
	}
}

func TestLayoutWeekNowIndicatorOnlyOnToday(t *testing.T) {
	e := NewLayoutEngine(testWindow)
	now := time.Date(2026, 9, 2, 14, 0, 0, 0, time.Local)

	view := e.LayoutWeek(WeekRequest{
		WeekStart: "2026-08-31",
		Staff:     testStaff("s1"),
		Zoom:      DefaultZoom(),
		Width:     756,
		Now:       now,
	})

	for i, day := range view.Days {
		if day.Date == "2026-09-02" {
			if day.NowIndicator == nil {
				t.Fatalf("expected indicator on today's cell")
			}
			continue
		}
		if day.NowIndicator != nil {
			t.Fatalf("unexpected indicator on day %d (%s)", i, day.Date)
		}
	}
}
