package schedule

import (
	"time"

	"clinicsched/models"
)

// DaysPerWeek is fixed; the week view always shows Monday through Sunday.
const DaysPerWeek = 7

// WeekStartTime returns the Monday of the week containing t.
func WeekStartTime(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return t.AddDate(0, 0, 1-weekday)
}

// WeekStartOf returns the Monday of the week containing t, formatted as a
// calendar date.
func WeekStartOf(t time.Time) string {
	return WeekStartTime(t).Format(models.DateLayout)
}

// LayoutWeek maps a full week of appointments onto seven day cells, each
// subdivided into per-staff sub-columns so two staff members' blocks never
// overlap visually. Labels stay at hour marks regardless of zoom; only block
// heights scale with the gesture.
func (e *DefaultLayoutEngine) LayoutWeek(req WeekRequest) models.WeekView {
	staff := dedupeStaff(req.Staff)
	n := len(staff)

	view := models.WeekView{
		WeekStart:     req.WeekStart,
		Window:        e.Window,
		SlotHeight:    req.Zoom.SlotHeight,
		LabelInterval: 60,
	}

	weekStart, err := time.ParseInLocation(models.DateLayout, req.WeekStart, time.Local)
	if err != nil {
		return view
	}

	index := make(map[string]int, n)
	for i, s := range staff {
		index[s.ID] = i
		view.Legend = append(view.Legend, models.StaffColumn{
			StaffID:     s.ID,
			DisplayName: s.DisplayName,
			Color:       ColorFor(s.ID),
		})
	}

	dayWidth := (req.Width - TimeAxisWidth) / DaysPerWeek

	// Bucket appointments by date up front; the per-day loop below stays a
	// straight pass over each bucket.
	byDate := make(map[string][]models.Appointment, DaysPerWeek)
	for _, a := range req.Appointments {
		byDate[a.Date] = append(byDate[a.Date], a)
	}

	view.Days = make([]models.WeekDayCell, DaysPerWeek)
	for d := 0; d < DaysPerWeek; d++ {
		date := weekStart.AddDate(0, 0, d).Format(models.DateLayout)
		cell := models.WeekDayCell{
			Date:  date,
			Left:  TimeAxisWidth + float64(d)*dayWidth,
			Width: dayWidth,
		}

		if n > 0 {
			subWidth := dayWidth / float64(n)
			for _, a := range byDate[date] {
				i, ok := index[a.StaffID]
				if !ok {
					continue
				}
				if a.Duration > FullDayThresholdMinutes {
					cell.AllDay = append(cell.AllDay, models.AllDayEntry{
						AppointmentID: a.ID,
						StaffID:       a.StaffID,
						Color:         ColorFor(a.StaffID),
						Label:         a.Label,
					})
					continue
				}
				cell.Blocks = append(cell.Blocks, models.LayoutBlock{
					AppointmentID: a.ID,
					StaffID:       a.StaffID,
					Top:           e.blockTop(a.Start, req.Zoom),
					Height:        e.blockHeight(a.Duration, req.Zoom),
					ColumnLeft:    cell.Left + float64(i)*subWidth,
					ColumnWidth:   subWidth,
					Color:         ColorFor(a.StaffID),
					Label:         a.Label,
					ClientName:    a.ClientName,
				})
			}
			sortBlocks(cell.Blocks, index)
		}

		cell.NowIndicator = e.nowIndicator(date, req.Now, req.Zoom)
		view.Days[d] = cell
	}

	return view
}
