// Package demo produces deterministic synthetic events for showcasing
// the calendar without persisted data. The same (day, venue set) input
// always yields the same events, so demos and tests are reproducible.
package demo

import (
	"fmt"
	"strconv"
	"time"

	"github.com/okian/daygrid/internal/domain/model"
)

// Linear-congruential generator parameters, seeded from the date.
const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgModulus    = 2147483647
	lcgDivisor    = 1000000
)

// Event shape parameters, all in local wall-clock terms.
const (
	earliestStartHour = 8
	startHourSpread   = 10
	baseMinutes       = 30
)

var titles = []string{
	"Client Meeting",
	"Workshop",
	"Team Sync",
	"Planning Session",
	"Training",
	"Strategy Call",
	"Review Session",
	"One-on-One",
	"Demo",
}

// source is the LCG state for one day's generation run.
type source struct {
	seed int64
}

// seedFor derives the generator seed from the day's YYYYMMDD digits, so
// every day shows a different but stable set of events.
func seedFor(day model.Day) *source {
	n, err := strconv.ParseInt(day.Start().Format("20060102"), 10, 64)
	if err != nil || n == 0 {
		n = 1
	}
	return &source{seed: n}
}

// next returns a pseudo-random value in [0, 1).
func (s *source) next() float64 {
	s.seed = (s.seed*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(s.seed%lcgDivisor) / lcgDivisor
}

// EventsForDay generates one to four events per venue for the given day.
// Venue order matters: the stream of pseudo-random draws is shared
// across venues, so callers must pass venues in a stable order to get
// stable output.
func EventsForDay(day model.Day, venues []model.Venue) []model.Event {
	rng := seedFor(day)
	dayStart := day.Start()
	dayEnd := dayStart.AddDate(0, 0, 1)
	stamp := dayStart.Format("20060102")

	var events []model.Event
	for _, v := range venues {
		count := 1 + int(rng.next()*4)
		for i := 0; i < count; i++ {
			startHour := earliestStartHour + int(rng.next()*float64(startHourSpread))
			minute := int(rng.next()*4) * 15
			duration := time.Duration(baseMinutes+int(rng.next()*4)*15+int(rng.next()*2)*15) * time.Minute

			start := time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(), startHour, minute, 0, 0, time.Local)
			end := start.Add(duration)
			if end.After(dayEnd) {
				end = dayEnd
			}

			events = append(events, model.Event{
				ID:      fmt.Sprintf("%s-%s-%d", stamp, v.ID, i),
				Title:   titles[int(rng.next()*float64(len(titles)))],
				VenueID: v.ID,
				Start:   start,
				End:     end,
			})
		}
	}
	return events
}
