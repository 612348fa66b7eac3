// Package grid maps wall-clock time onto the fixed 15-minute rendering
// grid. All functions are pure; vertical geometry is continuous so a
// start at 08:07 lands proportionally between the 08:00 and 08:15 lines.
package grid

import (
	"fmt"
	"time"
)

// Grid resolution constants.
const (
	// SlotMinutes is the duration of one grid slot.
	SlotMinutes = 15
	// SlotsPerDay is 24 hours at four slots per hour.
	SlotsPerDay = 24 * 4
	// DefaultSlotHeightPx is the default pixel height of one slot.
	DefaultSlotHeightPx = 48.0
	// MinEventHeightPx keeps zero-duration events visible as a sliver.
	MinEventHeightPx = 1.0
)

// MinuteOfDay returns minutes since local midnight, including the
// fractional part contributed by seconds.
func MinuteOfDay(t time.Time) float64 {
	return float64(t.Hour())*60 + float64(t.Minute()) + float64(t.Second())/60
}

// OffsetPx converts a wall-clock time to a vertical pixel offset.
func OffsetPx(t time.Time, slotHeightPx float64) float64 {
	return MinuteOfDay(t) / SlotMinutes * slotHeightPx
}

// HeightPx converts an event duration to a pixel height, clamped to be
// non-negative. Callers that paint events should additionally floor the
// result at MinEventHeightPx so zero-duration events do not disappear.
func HeightPx(start, end time.Time, slotHeightPx float64) float64 {
	minutes := end.Sub(start).Minutes()
	if minutes < 0 {
		minutes = 0
	}
	return minutes / SlotMinutes * slotHeightPx
}

// Labels returns the 96 slot-boundary labels in 24-hour HH:MM form,
// one per slot, not just hour boundaries.
func Labels() []string {
	labels := make([]string, SlotsPerDay)
	for i := range labels {
		labels[i] = fmt.Sprintf("%02d:%02d", i/4, i%4*SlotMinutes)
	}
	return labels
}
