package agenda

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"
	"sync"
	"time"

	appointmentRepo "clinicsched/database/repository/appointment"
	staffRepo "clinicsched/database/repository/staff"
	"clinicsched/models"
	"clinicsched/services/schedule"
	"clinicsched/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DefaultAgendaService is the production implementation. It is the single
// writer of the zoom state and the reload generation; the engines only read.
type DefaultAgendaService struct {
	Appointments appointmentRepo.AppointmentRepository
	Staff        staffRepo.StaffRepository
	Layout       schedule.LayoutEngine
	Cache        *redis.Client // optional; nil disables week-view caching
	Logger       *zap.Logger

	mu   sync.Mutex
	zoom schedule.ZoomState

	// generations stamps in-flight reloads per view key. Only a reload of the
	// same view parameters supersedes an earlier one; unrelated views and
	// other clients' requests never discard each other.
	genMu       sync.Mutex
	generations map[string]uint64
}

// NewDefaultAgendaService wires the controller with the default zoom level.
func NewDefaultAgendaService(
	appts appointmentRepo.AppointmentRepository,
	staff staffRepo.StaffRepository,
	layout schedule.LayoutEngine,
	cache *redis.Client,
	logger *zap.Logger,
) *DefaultAgendaService {
	return &DefaultAgendaService{
		Appointments: appts,
		Staff:        staff,
		Layout:       layout,
		Cache:        cache,
		Logger:       logger,
		zoom:         schedule.DefaultZoom(),
		generations:  make(map[string]uint64),
	}
}

// viewKey identifies one view's reload stream. Two requests contend only when
// they ask for the same view of the same date with the same staff selection.
func viewKey(kind, date string, staff []models.Staff) string {
	ids := make([]string, len(staff))
	for i, s := range staff {
		ids[i] = s.ID
	}
	return kind + ":" + date + ":" + strings.Join(ids, ",")
}

// nextGeneration starts a reload of the given view and returns its stamp,
// superseding any reload of the same view still in flight.
func (svc *DefaultAgendaService) nextGeneration(key string) uint64 {
	svc.genMu.Lock()
	defer svc.genMu.Unlock()
	if svc.generations == nil {
		svc.generations = make(map[string]uint64)
	}
	svc.generations[key]++
	return svc.generations[key]
}

func (svc *DefaultAgendaService) currentGeneration(key string) uint64 {
	svc.genMu.Lock()
	defer svc.genMu.Unlock()
	return svc.generations[key]
}

// Zoom returns the current zoom state.
func (svc *DefaultAgendaService) Zoom() schedule.ZoomState {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.zoom
}

// Pinch applies a completed pinch gesture and returns the clamped state.
func (svc *DefaultAgendaService) Pinch(scale float64) schedule.ZoomState {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.zoom = svc.zoom.ApplyPinch(scale)
	return svc.zoom
}

// DayView fetches one day of appointments for the selected staff and lays
// them out. Returns ErrStaleView when a newer reload started mid-fetch.
func (svc *DefaultAgendaService) DayView(ctx context.Context, date string, staffIDs []string, width float64, now time.Time) (*models.DayView, error) {
	if _, err := time.ParseInLocation(models.DateLayout, date, time.Local); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	staff, err := svc.resolveSelection(ctx, staffIDs)
	if err != nil {
		return nil, err
	}

	key := viewKey("day", date, staff)
	gen := svc.nextGeneration(key)
	appts := svc.fetchAll(ctx, staff, date, date)
	if svc.currentGeneration(key) != gen {
		return nil, ErrStaleView
	}

	view := svc.Layout.LayoutDay(schedule.DayRequest{
		Date:         date,
		Staff:        staff,
		Appointments: appts,
		Zoom:         svc.Zoom(),
		Width:        width,
		Now:          now,
	})
	return &view, nil
}

// WeekView fetches seven days of appointments for the selected staff and lays
// them out, serving from the Redis cache when a fresh copy exists.
func (svc *DefaultAgendaService) WeekView(ctx context.Context, weekStart string, staffIDs []string, width float64, now time.Time) (*models.WeekView, error) {
	start, err := time.ParseInLocation(models.DateLayout, weekStart, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid week start %q: %w", weekStart, err)
	}
	monday := schedule.WeekStartTime(start)
	weekStart = monday.Format(models.DateLayout)
	staff, err := svc.resolveSelection(ctx, staffIDs)
	if err != nil {
		return nil, err
	}

	zoom := svc.Zoom()
	cacheKey := svc.weekCacheKey(ctx, weekStart, staff, zoom, width)
	if view := svc.cachedWeekView(ctx, cacheKey, now, zoom); view != nil {
		return view, nil
	}

	from := weekStart
	to := monday.AddDate(0, 0, schedule.DaysPerWeek-1).Format(models.DateLayout)

	key := viewKey("week", weekStart, staff)
	gen := svc.nextGeneration(key)
	appts := svc.fetchAll(ctx, staff, from, to)
	if svc.currentGeneration(key) != gen {
		return nil, ErrStaleView
	}

	view := svc.Layout.LayoutWeek(schedule.WeekRequest{
		WeekStart:    weekStart,
		Staff:        staff,
		Appointments: appts,
		Zoom:         zoom,
		Width:        width,
		Now:          now,
	})
	svc.storeWeekView(ctx, cacheKey, view)
	return &view, nil
}

// resolveSelection maps requested staff IDs to staff records, preserving the
// request order and dropping duplicates and unknown IDs. An empty request
// selects all staff in their stable list order.
func (svc *DefaultAgendaService) resolveSelection(ctx context.Context, staffIDs []string) ([]models.Staff, error) {
	all, err := svc.Staff.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	if len(staffIDs) == 0 {
		return all, nil
	}

	byID := make(map[string]models.Staff, len(all))
	for _, s := range all {
		byID[s.ID] = s
	}

	seen := make(map[string]bool, len(staffIDs))
	var selected []models.Staff
	for _, id := range staffIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		if s, ok := byID[id]; ok {
			selected = append(selected, s)
		} else {
			svc.Logger.Warn("Unknown staff ID in selection, ignoring", zap.String("staffId", id))
		}
	}
	return selected, nil
}

// weekCacheKey builds a cache key covering every input the cached layout
// depends on, prefixed by the current invalidation version.
func (svc *DefaultAgendaService) weekCacheKey(ctx context.Context, weekStart string, staff []models.Staff, zoom schedule.ZoomState, width float64) string {
	if svc.Cache == nil {
		return ""
	}
	ver, err := svc.Cache.Get(ctx, utils.WeekViewCachePrefix+"ver").Int64()
	if err != nil && err != redis.Nil {
		return "" // cache unreachable; skip caching for this request
	}
	return composeWeekKey(ver, weekStart, staff, zoom, width)
}

// composeWeekKey is the pure key composition: any input the cached layout
// depends on changes the key.
func composeWeekKey(ver int64, weekStart string, staff []models.Staff, zoom schedule.ZoomState, width float64) string {
	h := fnv.New32a()
	ids := make([]string, len(staff))
	for i, s := range staff {
		ids[i] = s.ID
	}
	h.Write([]byte(strings.Join(ids, ",")))

	return fmt.Sprintf("%s%d:%s:%x:%d:%d",
		utils.WeekViewCachePrefix, ver, weekStart, h.Sum32(), int(zoom.SlotHeight), int(width))
}

// cachedWeekView returns a cached layout with a freshly computed current-time
// indicator, or nil on miss. The indicator is never served stale from cache.
func (svc *DefaultAgendaService) cachedWeekView(ctx context.Context, key string, now time.Time, zoom schedule.ZoomState) *models.WeekView {
	if svc.Cache == nil || key == "" {
		return nil
	}
	data, err := svc.Cache.Get(ctx, key).Result()
	if err != nil {
		return nil
	}
	return svc.decodeCachedWeekView([]byte(data), now, zoom)
}

// decodeCachedWeekView unmarshals a cached layout and recomputes each day's
// current-time indicator; the indicator is never served stale from cache.
func (svc *DefaultAgendaService) decodeCachedWeekView(data []byte, now time.Time, zoom schedule.ZoomState) *models.WeekView {
	var view models.WeekView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil
	}
	for i := range view.Days {
		view.Days[i].NowIndicator = svc.Layout.NowOffset(view.Days[i].Date, now, zoom)
	}
	return &view
}

func (svc *DefaultAgendaService) storeWeekView(ctx context.Context, key string, view models.WeekView) {
	if svc.Cache == nil || key == "" {
		return
	}
	data, err := json.Marshal(view)
	if err != nil {
		return
	}
	if err := svc.Cache.Set(ctx, key, data, utils.WeekViewCacheTTL).Err(); err != nil {
		svc.Logger.Debug("Failed to cache week view", zap.Error(err))
	}
}
