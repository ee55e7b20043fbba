package schedule

const (
	// MinSlotHeight and MaxSlotHeight bound the pixels-per-hour scale.
	MinSlotHeight = 40.0
	MaxSlotHeight = 120.0

	// MinBlockHeight keeps every block tappable regardless of duration.
	MinBlockHeight = 40.0

	// FullDayThresholdMinutes separates timed blocks from all-day entries (8 hours).
	FullDayThresholdMinutes = 480
)

// ZoomState carries the pinch-controlled vertical scale of the grid.
type ZoomState struct {
	SlotHeight float64 `json:"slotHeight"`
}

// DefaultZoom returns the initial zoom level.
func DefaultZoom() ZoomState {
	return ZoomState{SlotHeight: 60}
}

// ApplyPinch multiplies the slot height by the gesture's final scale factor,
// clamped to the allowed range. Non-positive scales are ignored.
func (z ZoomState) ApplyPinch(scale float64) ZoomState {
	if scale <= 0 {
		return z
	}
	h := z.SlotHeight * scale
	if h < MinSlotHeight {
		h = MinSlotHeight
	}
	if h > MaxSlotHeight {
		h = MaxSlotHeight
	}
	return ZoomState{SlotHeight: h}
}

// LabelInterval maps the slot height to the time-axis label granularity for
// the single-staff day view: fully zoomed out shows hour marks, fully zoomed
// in shows quarter hours.
func (z ZoomState) LabelInterval() int {
	switch {
	case z.SlotHeight <= MinSlotHeight:
		return 60
	case z.SlotHeight >= MaxSlotHeight:
		return 15
	default:
		return 30
	}
}
