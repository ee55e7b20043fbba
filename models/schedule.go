package models

// TimeWindow is the visible hour range of the day grid.
type TimeWindow struct {
	StartHour int `json:"startHour"`
	EndHour   int `json:"endHour"`
}

// Valid reports whether the window bounds are usable.
func (w TimeWindow) Valid() bool {
	return w.StartHour < w.EndHour
}

// Minutes returns the total visible span in minutes.
func (w TimeWindow) Minutes() int {
	return (w.EndHour - w.StartHour) * 60
}

// LayoutBlock is the computed grid placement for one appointment.
// All values are layout units; the renderer treats them as pixels.
type LayoutBlock struct {
	AppointmentID string  `json:"appointmentId"`
	StaffID       string  `json:"staffId"`
	Top           float64 `json:"top"`
	Height        float64 `json:"height"`
	ColumnLeft    float64 `json:"columnLeft"`
	ColumnWidth   float64 `json:"columnWidth"`
	Color         string  `json:"color"`
	Label         string  `json:"label"`
	ClientName    string  `json:"clientName"`
}

// AllDayEntry is an appointment rendered in the fixed-height lane above the grid.
type AllDayEntry struct {
	AppointmentID string `json:"appointmentId"`
	StaffID       string `json:"staffId"`
	Color         string `json:"color"`
	Label         string `json:"label"`
}

// StaffColumn describes one staff column of the day grid.
type StaffColumn struct {
	StaffID     string  `json:"staffId"`
	DisplayName string  `json:"displayName"`
	Color       string  `json:"color"`
	Left        float64 `json:"left"`
	Width       float64 `json:"width"`
}

// DayView is the full layout of a single day.
type DayView struct {
	Date          string        `json:"date"`
	Window        TimeWindow    `json:"window"`
	SlotHeight    float64       `json:"slotHeight"`
	LabelInterval int           `json:"labelInterval"` // minutes between time-axis labels
	Columns       []StaffColumn `json:"columns"`
	Blocks        []LayoutBlock `json:"blocks"`
	AllDay        []AllDayEntry `json:"allDay"`
	NowIndicator  *float64      `json:"nowIndicator,omitempty"` // top offset, present only for today within the window
}

// WeekDayCell is one day cell of the week grid.
type WeekDayCell struct {
	Date         string        `json:"date"`
	Left         float64       `json:"left"`
	Width        float64       `json:"width"`
	Blocks       []LayoutBlock `json:"blocks"`
	AllDay       []AllDayEntry `json:"allDay"`
	NowIndicator *float64      `json:"nowIndicator,omitempty"`
}

// WeekView is the full layout of a seven-day week.
type WeekView struct {
	WeekStart     string        `json:"weekStart"` // Monday, "YYYY-MM-DD"
	Window        TimeWindow    `json:"window"`
	SlotHeight    float64       `json:"slotHeight"`
	LabelInterval int           `json:"labelInterval"`
	Days          []WeekDayCell `json:"days"`
	Legend        []StaffColumn `json:"legend"` // staff colors, no geometry in Left/Width
}
