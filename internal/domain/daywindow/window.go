// Package daywindow maintains the sliding strip of day tabs.
//
// The window is a fixed-size run of consecutive days with one selected
// index. Navigation never resizes it: tab selection recenters the window
// on the picked day, and approaching either edge of the strip slides the
// whole window by a fixed step, preserving the illusion of an infinite
// day list without materializing one.
package daywindow

import (
	"time"

	"github.com/okian/daygrid/internal/domain/model"
)

// Defaults for window construction.
const (
	defaultSize        = 7
	defaultExtendStep  = 3
	defaultExtendGuard = 150 * time.Millisecond
)

// Window is the sliding day strip. It is single-owner view state and is
// not safe for concurrent use.
type Window struct {
	start    model.Day
	size     int
	selected int

	extendStep  int
	extendGuard time.Duration
	lastExtend  time.Time
	now         func() time.Time
}

// Option applies a configuration option to the Window.
type Option func(*Window)

// WithSize sets the number of day tabs. Even values are bumped to the
// next odd number so the window keeps a true center.
func WithSize(size int) Option {
	return func(w *Window) {
		if size > 0 {
			if size%2 == 0 {
				size++
			}
			w.size = size
		}
	}
}

// WithExtendStep sets how many days an edge-triggered slide covers.
func WithExtendStep(step int) Option {
	return func(w *Window) {
		if step > 0 {
			w.extendStep = step
		}
	}
}

// WithExtendGuard sets the minimum interval between edge-triggered
// slides, bounding runaway accumulation under rapid repeated triggers.
func WithExtendGuard(guard time.Duration) Option {
	return func(w *Window) {
		if guard > 0 {
			w.extendGuard = guard
		}
	}
}

// WithClock injects the time source used by the extend guard.
func WithClock(now func() time.Time) Option {
	return func(w *Window) {
		if now != nil {
			w.now = now
		}
	}
}

// New builds a window centered on the given day.
func New(center model.Day, opts ...Option) *Window {
	w := &Window{
		size:        defaultSize,
		extendStep:  defaultExtendStep,
		extendGuard: defaultExtendGuard,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.selected = w.size / 2
	w.start = center.AddDays(-w.selected)
	return w
}

// Size returns the fixed tab count.
func (w *Window) Size() int { return w.size }

// SelectedIndex returns the index of the active tab.
func (w *Window) SelectedIndex() int { return w.selected }

// SelectedDay resolves the active tab to its absolute day.
func (w *Window) SelectedDay() model.Day {
	return w.start.AddDays(w.selected)
}

// Days lists the window's days in order.
func (w *Window) Days() []model.Day {
	days := make([]model.Day, w.size)
	for i := range days {
		days[i] = w.start.AddDays(i)
	}
	return days
}

// Shift translates the window start by deltaDays without touching the
// selected index, so the same relative slot points at a new absolute day.
func (w *Window) Shift(deltaDays int) {
	w.start = w.start.AddDays(deltaDays)
}

// SelectTab recenters the window on the tapped tab: the selected index
// stays at the center and the window slides underneath it. Out-of-range
// indexes are ignored.
func (w *Window) SelectTab(index int) {
	if index < 0 || index >= w.size {
		return
	}
	w.Shift(index - w.size/2)
}

// ExtendBackward slides the window toward earlier days in response to
// the user nearing the left edge of the strip. It reports whether the
// slide happened; triggers inside the guard interval are dropped.
func (w *Window) ExtendBackward() bool {
	return w.extend(-w.extendStep)
}

// ExtendForward slides the window toward later days.
func (w *Window) ExtendForward() bool {
	return w.extend(w.extendStep)
}

func (w *Window) extend(deltaDays int) bool {
	now := w.now()
	if !w.lastExtend.IsZero() && now.Sub(w.lastExtend) < w.extendGuard {
		return false
	}
	w.lastExtend = now
	w.Shift(deltaDays)
	return true
}
