package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/daygrid/internal/domain/model"
)

// snapshotFileMode keeps the snapshot private to the service user.
const snapshotFileMode = 0o600

// MemStore is an in-memory Store with an optional JSON snapshot file.
// Slices keep insertion order; the id maps make lookups and cascade
// deletes cheap. The mutex exists because the HTTP adapter is
// concurrent; the core itself is synchronous.
type MemStore struct {
	mu sync.RWMutex

	venues   []model.Venue
	events   []model.Event
	venueIdx map[string]int
	eventIdx map[string]int

	snapshotPath string
	newID        func() string
}

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithSnapshotPath enables persistence: the file is loaded on startup
// and rewritten after every mutation, preserving ids and insertion
// order across reloads.
func WithSnapshotPath(path string) Option {
	return func(s *MemStore) {
		s.snapshotPath = path
	}
}

// WithIDGenerator overrides id generation, mainly for tests that need
// predictable ids.
func WithIDGenerator(gen func() string) Option {
	return func(s *MemStore) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// NewMemStore builds a store and, when a snapshot path is configured,
// loads whatever records the snapshot holds.
func NewMemStore(opts ...Option) (*MemStore, error) {
	s := &MemStore{
		venueIdx: make(map[string]int),
		eventIdx: make(map[string]int),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.snapshotPath != "" {
		if err := s.load(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSnapshot, err)
		}
	}
	return s, nil
}

// ListVenues returns all venues in insertion order.
func (s *MemStore) ListVenues(_ context.Context) ([]model.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Venue, len(s.venues))
	copy(out, s.venues)
	return out, nil
}

// Venue looks up a venue by id.
func (s *MemStore) Venue(_ context.Context, id string) (model.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.venueIdx[id]
	if !ok {
		return model.Venue{}, fmt.Errorf("%w: venue %q", ErrNotFound, id)
	}
	return s.venues[i], nil
}

// AddVenue creates a venue with a fresh id.
func (s *MemStore) AddVenue(_ context.Context, title string) (model.Venue, error) {
	if strings.TrimSpace(title) == "" {
		return model.Venue{}, ErrEmptyTitle
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v := model.Venue{ID: s.newID(), Title: title}
	s.venues = append(s.venues, v)
	s.venueIdx[v.ID] = len(s.venues) - 1
	return v, s.persist()
}

// DeleteVenue removes a venue and cascades to its events. Unknown ids
// are a no-op.
func (s *MemStore) DeleteVenue(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.venueIdx[id]; !ok {
		return nil
	}
	kept := s.venues[:0]
	for _, v := range s.venues {
		if v.ID != id {
			kept = append(kept, v)
		}
	}
	s.venues = kept

	keptEvents := s.events[:0]
	for _, ev := range s.events {
		if ev.VenueID != id {
			keptEvents = append(keptEvents, ev)
		}
	}
	s.events = keptEvents

	s.reindex()
	return s.persist()
}

// ListEvents returns all events in insertion order.
func (s *MemStore) ListEvents(_ context.Context) ([]model.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Event, len(s.events))
	copy(out, s.events)
	return out, nil
}

// AddEvent validates the draft and creates the event; nothing changes
// when validation fails.
func (s *MemStore) AddEvent(_ context.Context, draft EventDraft) (model.Event, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return model.Event{}, ErrEmptyTitle
	}
	start, err := time.Parse(time.RFC3339, draft.Start)
	if err != nil {
		return model.Event{}, fmt.Errorf("%w: start: %w", ErrBadTimestamp, err)
	}
	end, err := time.Parse(time.RFC3339, draft.End)
	if err != nil {
		return model.Event{}, fmt.Errorf("%w: end: %w", ErrBadTimestamp, err)
	}
	if !end.After(start) {
		return model.Event{}, ErrEndNotAfterStart
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.venueIdx[draft.VenueID]; !ok {
		return model.Event{}, fmt.Errorf("%w: %q", ErrUnknownVenue, draft.VenueID)
	}
	ev := model.Event{
		ID:      s.newID(),
		Title:   draft.Title,
		VenueID: draft.VenueID,
		Start:   start.Local(),
		End:     end.Local(),
	}
	s.events = append(s.events, ev)
	s.eventIdx[ev.ID] = len(s.events) - 1
	return ev, s.persist()
}

// DeleteEvent removes an event. Unknown ids are a no-op.
func (s *MemStore) DeleteEvent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.eventIdx[id]; !ok {
		return nil
	}
	kept := s.events[:0]
	for _, ev := range s.events {
		if ev.ID != id {
			kept = append(kept, ev)
		}
	}
	s.events = kept
	s.reindex()
	return s.persist()
}

// reindex rebuilds the id maps after slice compaction. Callers hold the
// write lock.
func (s *MemStore) reindex() {
	s.venueIdx = make(map[string]int, len(s.venues))
	for i, v := range s.venues {
		s.venueIdx[v.ID] = i
	}
	s.eventIdx = make(map[string]int, len(s.events))
	for i, ev := range s.events {
		s.eventIdx[ev.ID] = i
	}
}

// snapshot is the on-disk shape. Times travel as RFC3339 strings, the
// same format the API boundary speaks.
type snapshot struct {
	Venues []snapshotVenue `json:"venues"`
	Events []snapshotEvent `json:"events"`
}

type snapshotVenue struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type snapshotEvent struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	VenueID string `json:"venue_id"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

// persist writes the snapshot when persistence is enabled. Callers hold
// the write lock.
func (s *MemStore) persist() error {
	if s.snapshotPath == "" {
		return nil
	}
	snap := snapshot{
		Venues: make([]snapshotVenue, 0, len(s.venues)),
		Events: make([]snapshotEvent, 0, len(s.events)),
	}
	for _, v := range s.venues {
		snap.Venues = append(snap.Venues, snapshotVenue{ID: v.ID, Title: v.Title})
	}
	for _, ev := range s.events {
		snap.Events = append(snap.Events, snapshotEvent{
			ID:      ev.ID,
			Title:   ev.Title,
			VenueID: ev.VenueID,
			Start:   ev.Start.Format(time.RFC3339),
			End:     ev.End.Format(time.RFC3339),
		})
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSnapshot, err)
	}
	if err := os.WriteFile(s.snapshotPath, data, snapshotFileMode); err != nil {
		return fmt.Errorf("%w: %w", ErrSnapshot, err)
	}
	return nil
}

func (s *MemStore) load() error {
	data, err := os.ReadFile(s.snapshotPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}
	for _, v := range snap.Venues {
		s.venues = append(s.venues, model.Venue{ID: v.ID, Title: v.Title})
	}
	for _, ev := range snap.Events {
		start, err := time.Parse(time.RFC3339, ev.Start)
		if err != nil {
			return fmt.Errorf("event %s: %w", ev.ID, err)
		}
		end, err := time.Parse(time.RFC3339, ev.End)
		if err != nil {
			return fmt.Errorf("event %s: %w", ev.ID, err)
		}
		s.events = append(s.events, model.Event{
			ID:      ev.ID,
			Title:   ev.Title,
			VenueID: ev.VenueID,
			Start:   start.Local(),
			End:     end.Local(),
		})
	}
	s.reindex()
	return nil
}
