// Package repository defines the venue/event store interface and errors.
package repository

import (
	"context"

	"github.com/okian/daygrid/internal/domain/model"
)

// EventDraft carries the user-supplied fields of a new event; the store
// assigns the id.
type EventDraft struct {
	Title   string
	VenueID string
	Start   string // RFC3339
	End     string // RFC3339
}

// Store provides read/write access to persisted venues and events.
// Implementations must hand out stable ids and preserve insertion order
// across reloads; the layout core depends on both for reproducibility.
type Store interface {
	// ListVenues returns all venues in insertion order.
	ListVenues(ctx context.Context) ([]model.Venue, error)

	// Venue looks up a venue by id. Returns ErrNotFound when absent.
	Venue(ctx context.Context, id string) (model.Venue, error)

	// AddVenue creates a venue with the given display title.
	AddVenue(ctx context.Context, title string) (model.Venue, error)

	// DeleteVenue removes a venue and every event referencing it, so no
	// dangling references survive. Deleting an unknown id is a no-op.
	DeleteVenue(ctx context.Context, id string) error

	// ListEvents returns all events in insertion order.
	ListEvents(ctx context.Context) ([]model.Event, error)

	// AddEvent validates and creates an event. Fails with a validation
	// error when end <= start, a required field is missing, or the venue
	// does not exist. No state changes on failure.
	AddEvent(ctx context.Context, draft EventDraft) (model.Event, error)

	// DeleteEvent removes an event. Deleting an unknown id is a no-op.
	DeleteEvent(ctx context.Context, id string) error
}
