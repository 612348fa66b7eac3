// Package types contains common types used across the application
package types

// Block is one positioned event rectangle in a day view response.
type Block struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Start        string  `json:"start"`
	End          string  `json:"end"`
	TopPx        float64 `json:"top_px"`
	HeightPx     float64 `json:"height_px"`
	LeftPercent  float64 `json:"left_percent"`
	WidthPercent float64 `json:"width_percent"`
}

// Lane is the per-venue slice of a day view.
type Lane struct {
	VenueID    string  `json:"venue_id"`
	VenueTitle string  `json:"venue_title"`
	Columns    int     `json:"columns"`
	Events     []Block `json:"events"`
}

// DayView is the rendering-boundary payload for one calendar day: the
// 96 slot labels plus one lane of positioned rectangles per venue.
type DayView struct {
	Date       string   `json:"date"`
	SlotLabels []string `json:"slot_labels"`
	Lanes      []Lane   `json:"lanes"`
}

// Window describes the sliding day-tab strip.
type Window struct {
	Days     []string `json:"days"`
	Selected int      `json:"selected"`
}
