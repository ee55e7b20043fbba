package schedule

import (
	"sort"
	"time"

	"clinicsched/models"
)

const (
	// TimeAxisWidth is the fixed width of the hour-label column.
	TimeAxisWidth = 56.0
	// ColumnGutter separates adjacent staff columns.
	ColumnGutter = 2.0
	// AllDayLaneHeight is the fixed height of the lane above the grid.
	AllDayLaneHeight = 32.0
)

// blockTop converts a start minute-of-day into a vertical offset. Starts
// outside the window still compute a position (possibly negative or beyond
// the grid); the engine does not clip.
func (e *DefaultLayoutEngine) blockTop(startMinute int, zoom ZoomState) float64 {
	minutesFromWindowStart := startMinute - e.Window.StartHour*60
	return float64(minutesFromWindowStart) * zoom.SlotHeight / 60
}

// blockHeight converts a duration into a block height, floored so short
// appointments stay tappable.
func (e *DefaultLayoutEngine) blockHeight(durationMinutes int, zoom ZoomState) float64 {
	h := float64(durationMinutes) * zoom.SlotHeight / 60
	if h < MinBlockHeight {
		h = MinBlockHeight
	}
	return h
}

// NowOffset returns the current-time indicator offset when the displayed
// date is "today" and the current hour falls within the window, nil
// otherwise. It reuses the block position formula with zero duration.
func (e *DefaultLayoutEngine) NowOffset(date string, now time.Time, zoom ZoomState) *float64 {
	return e.nowIndicator(date, now, zoom)
}

// nowIndicator returns the indicator offset when the displayed date is
// "today" and the current hour falls within the window, nil otherwise.
func (e *DefaultLayoutEngine) nowIndicator(date string, now time.Time, zoom ZoomState) *float64 {
	if date != now.Format(models.DateLayout) {
		return nil
	}
	hour := now.Hour()
	if hour < e.Window.StartHour || hour > e.Window.EndHour {
		return nil
	}
	top := e.blockTop(hour*60+now.Minute(), zoom)
	return &top
}

// dedupeStaff drops repeated IDs while preserving the selection order.
func dedupeStaff(staff []models.Staff) []models.Staff {
	seen := make(map[string]bool, len(staff))
	out := staff[:0:0]
	for _, s := range staff {
		if seen[s.ID] {
			continue
		}
		seen[s.ID] = true
		out = append(out, s)
	}
	return out
}

// LayoutDay maps one day's appointments onto staff columns.
func (e *DefaultLayoutEngine) LayoutDay(req DayRequest) models.DayView {
	staff := dedupeStaff(req.Staff)
	n := len(staff)

	view := models.DayView{
		Date:       req.Date,
		Window:     e.Window,
		SlotHeight: req.Zoom.SlotHeight,
	}

	// The dynamic label interval applies only to the single-staff day view;
	// with multiple columns the labels stay at hour marks so narrow columns
	// remain legible.
	if n <= 1 {
		view.LabelInterval = req.Zoom.LabelInterval()
	} else {
		view.LabelInterval = 60
	}

	if n == 0 {
		return view
	}

	usable := req.Width - TimeAxisWidth - ColumnGutter*float64(n-1)
	colWidth := usable / float64(n)

	index := make(map[string]int, n)
	view.Columns = make([]models.StaffColumn, n)
	for i, s := range staff {
		index[s.ID] = i
		view.Columns[i] = models.StaffColumn{
			StaffID:     s.ID,
			DisplayName: s.DisplayName,
			Color:       ColorFor(s.ID),
			Left:        TimeAxisWidth + float64(i)*(colWidth+ColumnGutter),
			Width:       colWidth,
		}
	}

	for _, a := range req.Appointments {
		i, ok := index[a.StaffID]
		if !ok {
			continue // not in the current selection
		}
		if a.Duration > FullDayThresholdMinutes {
			view.AllDay = append(view.AllDay, models.AllDayEntry{
				AppointmentID: a.ID,
				StaffID:       a.StaffID,
				Color:         ColorFor(a.StaffID),
				Label:         a.Label,
			})
			continue
		}
		view.Blocks = append(view.Blocks, models.LayoutBlock{
			AppointmentID: a.ID,
			StaffID:       a.StaffID,
			Top:           e.blockTop(a.Start, req.Zoom),
			Height:        e.blockHeight(a.Duration, req.Zoom),
			ColumnLeft:    view.Columns[i].Left,
			ColumnWidth:   view.Columns[i].Width,
			Color:         view.Columns[i].Color,
			Label:         a.Label,
			ClientName:    a.ClientName,
		})
	}

	sortBlocks(view.Blocks, index)
	view.NowIndicator = e.nowIndicator(req.Date, req.Now, req.Zoom)
	return view
}

// sortBlocks orders blocks by start position, then by staff column, so the
// output is deterministic regardless of fetch interleaving.
func sortBlocks(blocks []models.LayoutBlock, staffIndex map[string]int) {
	sort.SliceStable(blocks, func(i, j int) bool {
		if blocks[i].Top != blocks[j].Top {
			return blocks[i].Top < blocks[j].Top
		}
		return staffIndex[blocks[i].StaffID] < staffIndex[blocks[j].StaffID]
	})
}
