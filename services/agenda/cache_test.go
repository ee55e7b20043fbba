package agenda

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"clinicsched/models"
	"clinicsched/services/schedule"
	"clinicsched/utils"
)

func TestComposeWeekKeyDeterministic(t *testing.T) {
	staff := []models.Staff{{ID: "s1"}, {ID: "s2"}}
	zoom := schedule.ZoomState{SlotHeight: 60}

	a := composeWeekKey(3, "2026-08-31", staff, zoom, 756)
	b := composeWeekKey(3, "2026-08-31", staff, zoom, 756)
	if a != b {
		t.Fatalf("identical inputs must yield identical keys: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, utils.WeekViewCachePrefix) {
		t.Fatalf("key %q must carry the cache prefix", a)
	}
}

func TestComposeWeekKeySensitivity(t *testing.T) {
	staff := []models.Staff{{ID: "s1"}, {ID: "s2"}}
	zoom := schedule.ZoomState{SlotHeight: 60}
	base := composeWeekKey(3, "2026-08-31", staff, zoom, 756)

	variants := map[string]string{
		"version bump":     composeWeekKey(4, "2026-08-31", staff, zoom, 756),
		"other week":       composeWeekKey(3, "2026-09-07", staff, zoom, 756),
		"other selection":  composeWeekKey(3, "2026-08-31", []models.Staff{{ID: "s1"}}, zoom, 756),
		"selection order":  composeWeekKey(3, "2026-08-31", []models.Staff{{ID: "s2"}, {ID: "s1"}}, zoom, 756),
		"other zoom":       composeWeekKey(3, "2026-08-31", staff, schedule.ZoomState{SlotHeight: 80}, 756),
		"other width":      composeWeekKey(3, "2026-08-31", staff, zoom, 400),
	}
	for name, key := range variants {
		if key == base {
			t.Fatalf("%s must change the cache key", name)
		}
	}
}

func TestDecodeCachedWeekViewRefreshesIndicator(t *testing.T) {
	svc := newTestAgenda(&fakeAppointmentRepo{}, twoStaff())
	zoom := schedule.ZoomState{SlotHeight: 60}

	// A cached layout whose indicators reflect the moment it was stored:
	// present on the wrong day, absent on what is now today.
	stale := 999.0
	cached := models.WeekView{
		WeekStart: "2026-08-31",
		Days: []models.WeekDayCell{
			{Date: "2026-08-31", NowIndicator: &stale},
			{Date: "2026-09-01"},
			{Date: "2026-09-02"},
		},
	}
	data, err := json.Marshal(cached)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	now := time.Date(2026, 9, 2, 10, 0, 0, 0, time.Local)
	view := svc.decodeCachedWeekView(data, now, zoom)
	if view == nil {
		t.Fatalf("expected a decoded view")
	}

	if view.Days[0].NowIndicator != nil || view.Days[1].NowIndicator != nil {
		t.Fatalf("stale indicators must be cleared on days that are not today")
	}
	if view.Days[2].NowIndicator == nil {
		t.Fatalf("today's indicator must be recomputed on a cache hit")
	}
	// 10:00 is 240 minutes past the 06:00 window start.
	if *view.Days[2].NowIndicator != 240 {
		t.Fatalf("indicator at %f, want 240", *view.Days[2].NowIndicator)
	}
}

func TestDecodeCachedWeekViewRejectsCorruptPayload(t *testing.T) {
	svc := newTestAgenda(&fakeAppointmentRepo{}, twoStaff())
	if view := svc.decodeCachedWeekView([]byte("{not json"), time.Time{}, schedule.DefaultZoom()); view != nil {
		t.Fatalf("corrupt cache payload must be treated as a miss, got %+v", view)
	}
}
