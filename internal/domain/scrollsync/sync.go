// Package scrollsync keeps the time-label gutter and the venue/event
// area vertically locked, and decides where the viewport lands when the
// active day changes.
//
// Pane state lives in the presentation layer; this package owns the
// decision logic: which mirror update to emit for a scroll, guarded so a
// sync-triggered scroll cannot feed back into another sync, and which
// offset a freshly selected day should scroll to.
package scrollsync

import (
	"sort"
	"time"

	"github.com/okian/daygrid/internal/domain/grid"
	"github.com/okian/daygrid/internal/domain/model"
)

// Pane identifies one of the two locked scroll regions.
type Pane int

// The two panes.
const (
	PaneGutter Pane = iota
	PaneVenues
)

// headerPaddingPx is the gap kept between the sticky venue header and
// the event an auto-scroll aligns to.
const headerPaddingPx = 8

// Update tells the presentation layer to set a pane's scroll offset.
type Update struct {
	Pane     Pane
	OffsetPx float64
}

// Syncer mirrors scroll offsets between the two panes. The single-flight
// guard swallows the echo scroll that applying a mirror update produces;
// it is cleared only by FrameTick, the animation-frame analog, so it is
// released unconditionally once per frame regardless of outcome.
//
// Syncer is owned by a single event loop and is not safe for concurrent
// use.
type Syncer struct {
	offsets [2]float64
	syncing bool
}

// NewSyncer returns a syncer with both panes at the top.
func NewSyncer() *Syncer {
	return &Syncer{}
}

// OnScroll records a pane's new offset and returns the mirror update for
// the opposite pane. While the guard is set, the offset is recorded but
// no update is emitted, which breaks the feedback loop between panes.
func (s *Syncer) OnScroll(pane Pane, offsetPx float64) (Update, bool) {
	if offsetPx < 0 {
		offsetPx = 0
	}
	s.offsets[pane] = offsetPx
	if s.syncing {
		return Update{}, false
	}
	s.syncing = true
	other := PaneGutter
	if pane == PaneGutter {
		other = PaneVenues
	}
	s.offsets[other] = offsetPx
	return Update{Pane: other, OffsetPx: offsetPx}, true
}

// FrameTick releases the single-flight guard. The presentation layer
// calls it once per animation frame.
func (s *Syncer) FrameTick() {
	s.syncing = false
}

// Offset returns the last known offset for a pane.
func (s *Syncer) Offset(pane Pane) float64 {
	return s.offsets[pane]
}

// Target computes the auto-scroll offset for a newly selected day, in
// priority order:
//
//  1. today, an event contains now (endpoints inclusive) -> that event
//  2. today, a future event exists -> the earliest one
//  3. today, otherwise -> the current time-of-day position
//  4. any other day -> its earliest event, or the top when it has none
//
// Aligned events sit just below the sticky header (headerPx plus a fixed
// padding); the result is never negative.
func Target(events []model.Event, day model.Day, now time.Time, headerPx, slotHeightPx float64) float64 {
	sorted := make([]model.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	align := headerPx + headerPaddingPx

	if day != model.DayOf(now) {
		if len(sorted) == 0 {
			return 0
		}
		return clampTop(grid.OffsetPx(sorted[0].Start, slotHeightPx) - align)
	}

	for _, ev := range sorted {
		if !now.Before(ev.Start) && !now.After(ev.End) {
			return clampTop(grid.OffsetPx(ev.Start, slotHeightPx) - align)
		}
	}
	for _, ev := range sorted {
		if ev.Start.After(now) {
			return clampTop(grid.OffsetPx(ev.Start, slotHeightPx) - align)
		}
	}
	return clampTop(grid.OffsetPx(now, slotHeightPx) - align)
}

func clampTop(offsetPx float64) float64 {
	if offsetPx < 0 {
		return 0
	}
	return offsetPx
}
