package scrollsync

import "time"

// Re-measure cadence after a layout change: next frame, then twice more
// while late-loading content can still move the header.
var remeasureDelays = []time.Duration{
	16 * time.Millisecond,
	50 * time.Millisecond,
	200 * time.Millisecond,
}

// Scheduler runs fn after delay. The presentation layer backs it with
// its frame/timer machinery; tests drive it directly.
type Scheduler func(delay time.Duration, fn func())

// HeaderTracker follows the sticky venue-header height, which only
// stabilizes some time after paint. Each refresh measures immediately
// and schedules fire-and-forget re-measurements; a stale re-measurement
// simply rewrites the same value, so ordering does not matter.
type HeaderTracker struct {
	measure  func() float64
	schedule Scheduler
	heightPx float64
}

// NewHeaderTracker builds a tracker around a measurement function.
func NewHeaderTracker(measure func() float64, schedule Scheduler) *HeaderTracker {
	t := &HeaderTracker{measure: measure, schedule: schedule}
	t.Refresh()
	return t
}

// Refresh re-reads the header height now and again after each settle
// delay.
func (t *HeaderTracker) Refresh() {
	t.apply()
	if t.schedule == nil {
		return
	}
	for _, d := range remeasureDelays {
		t.schedule(d, t.apply)
	}
}

func (t *HeaderTracker) apply() {
	if h := t.measure(); h >= 0 {
		t.heightPx = h
	}
}

// HeightPx returns the last stable measurement.
func (t *HeaderTracker) HeightPx() float64 {
	return t.heightPx
}
