// Package model contains domain models passed between layers.
package model

import "time"

// Venue represents a bookable room or resource. Identity is the ID;
// the title is display-only.
type Venue struct {
	ID    string
	Title string
}

// Event represents a scheduled booking in a single venue.
// Start and End are local wall-clock timestamps; End is always after Start
// for events admitted by the store.
type Event struct {
	ID      string
	Title   string
	VenueID string
	Start   time.Time
	End     time.Time
}

// Overlaps reports whether two events share any instant of time.
func (e Event) Overlaps(other Event) bool {
	return e.Start.Before(other.End) && other.Start.Before(e.End)
}

// Day is a calendar date with no time component, used as the partition
// key for event queries. The zero value is not a valid day.
type Day struct {
	Year  int
	Month time.Month
	Date  int
}

// DayOf returns the day containing t in t's location. An event belongs to
// the day of its start timestamp; spans past midnight are not split.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Date: d}
}

// Start returns midnight at the beginning of the day in the local zone.
func (d Day) Start() time.Time {
	return time.Date(d.Year, d.Month, d.Date, 0, 0, 0, 0, time.Local)
}

// AddDays returns the day shifted by n whole days (n may be negative).
func (d Day) AddDays(n int) Day {
	return DayOf(d.Start().AddDate(0, 0, n))
}

// String formats the day as YYYY-MM-DD.
func (d Day) String() string {
	return d.Start().Format("2006-01-02")
}

// ParseDay parses a YYYY-MM-DD date in the local zone.
func ParseDay(s string) (Day, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return Day{}, err
	}
	return DayOf(t), nil
}

// PositionedEvent is the computed geometry for one event in one layout
// pass. It is never persisted; a new set is derived on every render.
type PositionedEvent struct {
	Event        Event
	TopPx        float64
	HeightPx     float64
	LeftPercent  float64
	WidthPercent float64
}
