package agenda

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"clinicsched/models"
	"clinicsched/services/schedule"

	"go.uber.org/zap"
)

type fakeAppointmentRepo struct {
	appointments []models.Appointment
	failFor      map[string]bool
	// onFetch runs before every fetch; tests use it to interleave reloads.
	onFetch func(staffID string)
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *models.Appointment) error {
	f.appointments = append(f.appointments, *appt)
	return nil
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) FetchRange(_ context.Context, staffID, from, to string) ([]models.Appointment, error) {
	if f.onFetch != nil {
		f.onFetch(staffID)
	}
	if f.failFor[staffID] {
		return nil, errors.New("fetch failed")
	}
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.StaffID == staffID && a.Date >= from && a.Date <= to {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, id string) error { return nil }

type fakeStaffRepo struct {
	staff   []models.Staff
	listErr error
}

func (f *fakeStaffRepo) Create(_ context.Context, s *models.Staff) error { return nil }

func (f *fakeStaffRepo) GetByID(_ context.Context, id string) (*models.Staff, error) {
	for i := range f.staff {
		if f.staff[i].ID == id {
			return &f.staff[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStaffRepo) GetByEmail(_ context.Context, email string) (*models.Staff, error) {
	return nil, nil
}

func (f *fakeStaffRepo) List(_ context.Context) ([]models.Staff, error) {
	return f.staff, f.listErr
}

func (f *fakeStaffRepo) Delete(_ context.Context, id string) error { return nil }

func newTestAgenda(appts *fakeAppointmentRepo, staff *fakeStaffRepo) *DefaultAgendaService {
	engine := schedule.NewLayoutEngine(models.TimeWindow{StartHour: 6, EndHour: 19})
	return NewDefaultAgendaService(appts, staff, engine, nil, zap.NewNop())
}

func twoStaff() *fakeStaffRepo {
	return &fakeStaffRepo{staff: []models.Staff{
		{ID: "s1", DisplayName: "Dr. One"},
		{ID: "s2", DisplayName: "Dr. Two"},
	}}
}

func TestDayViewAggregatesAllStaff(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []models.Appointment{
		{ID: "a1", StaffID: "s1", Date: "2026-09-01", Start: 9 * 60, Duration: 30},
		{ID: "a2", StaffID: "s2", Date: "2026-09-01", Start: 10 * 60, Duration: 30},
	}}
	svc := newTestAgenda(repo, twoStaff())

	view, err := svc.DayView(context.Background(), "2026-09-01", nil, 400, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Columns) != 2 {
		t.Fatalf("empty selection must include all staff, got %d columns", len(view.Columns))
	}
	if len(view.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(view.Blocks))
	}
}

func TestDayViewToleratesSingleStaffFetchFailure(t *testing.T) {
	repo := &fakeAppointmentRepo{
		appointments: []models.Appointment{
			{ID: "a1", StaffID: "s1", Date: "2026-09-01", Start: 9 * 60, Duration: 30},
			{ID: "a2", StaffID: "s2", Date: "2026-09-01", Start: 10 * 60, Duration: 30},
		},
		failFor: map[string]bool{"s2": true},
	}
	svc := newTestAgenda(repo, twoStaff())

	view, err := svc.DayView(context.Background(), "2026-09-01", nil, 400, time.Time{})
	if err != nil {
		t.Fatalf("one failed staff fetch must not fail the view: %v", err)
	}
	if len(view.Blocks) != 1 || view.Blocks[0].StaffID != "s1" {
		t.Fatalf("expected only the healthy staff member's block, got %+v", view.Blocks)
	}
	if len(view.Columns) != 2 {
		t.Fatalf("the failed staff member keeps their column, got %d columns", len(view.Columns))
	}
}

func TestDayViewDiscardsStaleReload(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := newTestAgenda(repo, twoStaff())

	// Simulate a newer reload of the same view starting while this fetch is
	// in flight.
	var fired uint32
	repo.onFetch = func(string) {
		if atomic.CompareAndSwapUint32(&fired, 0, 1) {
			svc.nextGeneration(viewKey("day", "2026-09-01", []models.Staff{{ID: "s1"}}))
		}
	}

	_, err := svc.DayView(context.Background(), "2026-09-01", []string{"s1"}, 400, time.Time{})
	if !errors.Is(err, ErrStaleView) {
		t.Fatalf("expected ErrStaleView for a superseded reload, got %v", err)
	}
}

func TestConcurrentIndependentViewsBothSucceed(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	svc := newTestAgenda(repo, twoStaff())

	// Hold every fetch at a barrier until all three in-flight requests have
	// arrived, so the reloads genuinely overlap.
	barrier := make(chan struct{})
	var arrived int32
	repo.onFetch = func(string) {
		if atomic.AddInt32(&arrived, 1) == 3 {
			close(barrier)
		}
		<-barrier
	}

	var wg sync.WaitGroup
	errs := make([]error, 3)
	run := func(i int, fn func() error) {
		defer wg.Done()
		errs[i] = fn()
	}

	wg.Add(3)
	go run(0, func() error {
		_, err := svc.DayView(context.Background(), "2026-09-01", []string{"s1"}, 400, time.Time{})
		return err
	})
	go run(1, func() error {
		_, err := svc.DayView(context.Background(), "2026-09-02", []string{"s1"}, 400, time.Time{})
		return err
	})
	go run(2, func() error {
		_, err := svc.WeekView(context.Background(), "2026-09-01", []string{"s2"}, 756, time.Time{})
		return err
	})
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("concurrent request %d must not be discarded as stale: %v", i, err)
		}
	}
}

func TestDayViewGenerationsAreScopedPerView(t *testing.T) {
	svc := newTestAgenda(&fakeAppointmentRepo{}, twoStaff())
	staff := []models.Staff{{ID: "s1"}}

	gen := svc.nextGeneration(viewKey("day", "2026-09-01", staff))

	// Reloads of other dates, selections or views never supersede this one.
	svc.nextGeneration(viewKey("day", "2026-09-02", staff))
	svc.nextGeneration(viewKey("day", "2026-09-01", []models.Staff{{ID: "s2"}}))
	svc.nextGeneration(viewKey("week", "2026-09-01", staff))
	if svc.currentGeneration(viewKey("day", "2026-09-01", staff)) != gen {
		t.Fatalf("unrelated reloads must not bump this view's generation")
	}

	svc.nextGeneration(viewKey("day", "2026-09-01", staff))
	if svc.currentGeneration(viewKey("day", "2026-09-01", staff)) == gen {
		t.Fatalf("a reload of the same view must supersede the stamp")
	}
}

func TestDayViewSelectionOrderAndDedupe(t *testing.T) {
	svc := newTestAgenda(&fakeAppointmentRepo{}, twoStaff())

	view, err := svc.DayView(context.Background(), "2026-09-01", []string{"s2", "s1", "s2", "ghost"}, 400, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.Columns) != 2 {
		t.Fatalf("expected 2 columns after dedupe and unknown-ID drop, got %d", len(view.Columns))
	}
	if view.Columns[0].StaffID != "s2" || view.Columns[1].StaffID != "s1" {
		t.Fatalf("columns must follow the request order, got %s then %s",
			view.Columns[0].StaffID, view.Columns[1].StaffID)
	}
}

func TestDayViewRejectsBadDate(t *testing.T) {
	svc := newTestAgenda(&fakeAppointmentRepo{}, twoStaff())
	if _, err := svc.DayView(context.Background(), "tomorrow", nil, 400, time.Time{}); err == nil {
		t.Fatalf("expected error for an unparseable date")
	}
}

func TestWeekViewNormalizesToMonday(t *testing.T) {
	repo := &fakeAppointmentRepo{appointments: []models.Appointment{
		{ID: "a1", StaffID: "s1", Date: "2026-08-31", Start: 9 * 60, Duration: 30},
		{ID: "a2", StaffID: "s1", Date: "2026-09-06", Start: 9 * 60, Duration: 30},
	}}
	svc := newTestAgenda(repo, twoStaff())

	// Request mid-week; the view must cover Monday through Sunday.
	view, err := svc.WeekView(context.Background(), "2026-09-03", []string{"s1"}, 756, time.Time{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.WeekStart != "2026-08-31" {
		t.Fatalf("week start = %s, want the enclosing Monday 2026-08-31", view.WeekStart)
	}
	if len(view.Days[0].Blocks) != 1 || len(view.Days[6].Blocks) != 1 {
		t.Fatalf("appointments at both week edges must appear")
	}
}

func TestPinchClampsAndPersists(t *testing.T) {
	svc := newTestAgenda(&fakeAppointmentRepo{}, twoStaff())

	z := svc.Pinch(10)
	if z.SlotHeight != schedule.MaxSlotHeight {
		t.Fatalf("zoom-in must clamp at %f, got %f", schedule.MaxSlotHeight, z.SlotHeight)
	}
	z = svc.Pinch(0.01)
	if z.SlotHeight != schedule.MinSlotHeight {
		t.Fatalf("zoom-out must clamp at %f, got %f", schedule.MinSlotHeight, z.SlotHeight)
	}
	if got := svc.Zoom(); got.SlotHeight != schedule.MinSlotHeight {
		t.Fatalf("zoom state must persist across calls, got %f", got.SlotHeight)
	}
}

func TestNavigate(t *testing.T) {
	svc := newTestAgenda(&fakeAppointmentRepo{}, twoStaff())

	cases := []struct {
		unit      string
		date      string
		direction int
		want      string
	}{
		{UnitDay, "2026-09-01", 1, "2026-09-02"},
		{UnitDay, "2026-09-01", -1, "2026-08-31"},
		{UnitWeek, "2026-09-01", 1, "2026-09-08"},
		{UnitWeek, "2026-09-01", -1, "2026-08-25"},
		{UnitMonth, "2026-09-01", 1, "2026-10-01"},
		{UnitMonth, "2026-01-31", 1, "2026-03-03"}, // AddDate overflow, Go semantics
		{UnitMonth, "2026-09-01", -1, "2026-08-01"},
	}
	for _, tc := range cases {
		got, err := svc.Navigate(tc.unit, tc.date, tc.direction)
		if err != nil {
			t.Fatalf("Navigate(%s, %s, %d): %v", tc.unit, tc.date, tc.direction, err)
		}
		if got != tc.want {
			t.Fatalf("Navigate(%s, %s, %d) = %s, want %s", tc.unit, tc.date, tc.direction, got, tc.want)
		}
	}

	if _, err := svc.Navigate("fortnight", "2026-09-01", 1); err == nil {
		t.Fatalf("unknown unit must error")
	}
}
