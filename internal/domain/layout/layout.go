// Package layout assigns display columns to overlapping events.
//
// The algorithm is greedy interval partitioning: events are placed in
// start order into the first column whose previous occupant has already
// ended, opening a new column only when none is free. It is deterministic
// for identical input and O(n log n), at the cost of not repacking columns
// afterwards, so it is not always width-optimal.
package layout

import (
	"fmt"
	"sort"

	"github.com/okian/daygrid/internal/domain/grid"
	"github.com/okian/daygrid/internal/domain/model"
)

// Placement pairs an event with its assigned column.
type Placement struct {
	Event  model.Event
	Column int
}

// Assign distributes one venue's events for one day across columns so
// that no two events sharing any time overlap land in the same column.
// Ties on start time keep the input (insertion) order, which makes the
// result reproducible for identical input. The returned column count is
// never below one, even for an empty event set.
func Assign(events []model.Event) ([]Placement, int) {
	sorted := make([]model.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	// ends[i] holds the event whose End marks when column i frees up.
	ends := make([]model.Event, 0)

	placements := make([]Placement, 0, len(sorted))
	for _, ev := range sorted {
		col := -1
		for i := range ends {
			if !ev.Start.Before(ends[i].End) {
				col = i
				ends[i] = ev
				break
			}
		}
		if col == -1 {
			ends = append(ends, ev)
			col = len(ends) - 1
		}
		placements = append(placements, Placement{Event: ev, Column: col})
	}

	total := len(ends)
	if total < 1 {
		total = 1
	}
	return placements, total
}

// Arrange runs column assignment and converts the result into absolute
// pixel geometry for one venue lane. Zero-duration events are kept
// visible as a minimal sliver instead of collapsing to nothing.
func Arrange(events []model.Event, slotHeightPx float64) ([]model.PositionedEvent, int) {
	placements, total := Assign(events)

	width := 100.0 / float64(total)
	positioned := make([]model.PositionedEvent, 0, len(placements))
	for _, p := range placements {
		height := grid.HeightPx(p.Event.Start, p.Event.End, slotHeightPx)
		if height < grid.MinEventHeightPx {
			height = grid.MinEventHeightPx
		}
		positioned = append(positioned, model.PositionedEvent{
			Event:        p.Event,
			TopPx:        grid.OffsetPx(p.Event.Start, slotHeightPx),
			HeightPx:     height,
			LeftPercent:  float64(p.Column) * width,
			WidthPercent: width,
		})
	}
	return positioned, total
}

// Check verifies that no two placements in the same column overlap in
// time. A failure indicates a bug in Assign; callers treat it as an
// internal invariant violation, not a user error.
func Check(placements []Placement) error {
	byColumn := make(map[int][]model.Event)
	for _, p := range placements {
		byColumn[p.Column] = append(byColumn[p.Column], p.Event)
	}
	for col, evs := range byColumn {
		for i := 0; i < len(evs); i++ {
			for j := i + 1; j < len(evs); j++ {
				if evs[i].Overlaps(evs[j]) {
					return fmt.Errorf("%w: column %d holds %q and %q", ErrColumnOverlap, col, evs[i].ID, evs[j].ID)
				}
			}
		}
	}
	return nil
}
