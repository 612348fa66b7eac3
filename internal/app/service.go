// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/okian/daygrid/internal/adapters/repository"
	"github.com/okian/daygrid/internal/demo"
	"github.com/okian/daygrid/internal/domain/daywindow"
	"github.com/okian/daygrid/internal/domain/grid"
	"github.com/okian/daygrid/internal/domain/layout"
	"github.com/okian/daygrid/internal/domain/model"
	"github.com/okian/daygrid/internal/domain/scrollsync"
	"github.com/okian/daygrid/internal/domain/types"
	"github.com/okian/daygrid/pkg/logger"
	"github.com/okian/daygrid/pkg/metrics"
)

// Service wires the store, the day window and the layout engine behind
// one API surface. Day views are derived fresh on every call, never
// cached, so a day switch can never expose stale geometry.
type Service struct {
	mu sync.Mutex

	store  repository.Store
	window *daywindow.Window
	logger logger.Logger

	slotHeightPx float64
	windowSize   int
	extendStep   int
	extendGuard  time.Duration
	demoEvents   bool
	now          func() time.Time
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the backing venue/event store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSlotHeight sets the pixel height of one 15-minute slot.
func WithSlotHeight(px float64) Option {
	return func(s *Service) {
		if px > 0 {
			s.slotHeightPx = px
		}
	}
}

// WithWindowSize sets the day-tab count.
func WithWindowSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.windowSize = size
		}
	}
}

// WithExtendStep sets the edge-slide distance in days.
func WithExtendStep(days int) Option {
	return func(s *Service) {
		if days > 0 {
			s.extendStep = days
		}
	}
}

// WithExtendGuard sets the debounce interval for edge slides.
func WithExtendGuard(guard time.Duration) Option {
	return func(s *Service) {
		if guard > 0 {
			s.extendGuard = guard
		}
	}
}

// WithDemoEvents mixes deterministic generated events into every day.
func WithDemoEvents(enabled bool) Option {
	return func(s *Service) {
		s.demoEvents = enabled
	}
}

// WithClock injects the time source, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a Service centered on today.
func New(opts ...Option) (*Service, error) {
	s := &Service{
		slotHeightPx: grid.DefaultSlotHeightPx,
		windowSize:   7,
		extendStep:   3,
		extendGuard:  150 * time.Millisecond,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.store == nil {
		store, err := repository.NewMemStore()
		if err != nil {
			return nil, err
		}
		s.store = store
	}
	s.window = daywindow.New(model.DayOf(s.now()),
		daywindow.WithSize(s.windowSize),
		daywindow.WithExtendStep(s.extendStep),
		daywindow.WithExtendGuard(s.extendGuard),
		daywindow.WithClock(s.now),
	)
	return s, nil
}

// Venues lists venues in insertion order.
func (s *Service) Venues(ctx context.Context) ([]model.Venue, error) {
	return s.store.ListVenues(ctx)
}

// CreateVenue adds a venue.
func (s *Service) CreateVenue(ctx context.Context, title string) (model.Venue, error) {
	v, err := s.store.AddVenue(ctx, title)
	if err != nil {
		metrics.RecordValidationFailure()
		return model.Venue{}, err
	}
	s.refreshStoreGauges(ctx)
	return v, nil
}

// RemoveVenue deletes a venue and, by cascade, its events.
func (s *Service) RemoveVenue(ctx context.Context, id string) error {
	if err := s.store.DeleteVenue(ctx, id); err != nil {
		return err
	}
	s.refreshStoreGauges(ctx)
	return nil
}

// Events lists events in insertion order.
func (s *Service) Events(ctx context.Context) ([]model.Event, error) {
	return s.store.ListEvents(ctx)
}

// CreateEvent validates and adds an event.
func (s *Service) CreateEvent(ctx context.Context, draft repository.EventDraft) (model.Event, error) {
	ev, err := s.store.AddEvent(ctx, draft)
	if err != nil {
		metrics.RecordValidationFailure()
		return model.Event{}, err
	}
	s.refreshStoreGauges(ctx)
	return ev, nil
}

// RemoveEvent deletes an event.
func (s *Service) RemoveEvent(ctx context.Context, id string) error {
	if err := s.store.DeleteEvent(ctx, id); err != nil {
		return err
	}
	s.refreshStoreGauges(ctx)
	return nil
}

// DayView computes the full rendering payload for one day: per-venue
// lanes of positioned events plus the 96 slot labels.
func (s *Service) DayView(ctx context.Context, day model.Day) (types.DayView, error) {
	started := s.now()

	venues, err := s.store.ListVenues(ctx)
	if err != nil {
		return types.DayView{}, err
	}
	byVenue, err := s.eventsForDay(ctx, day, venues)
	if err != nil {
		return types.DayView{}, err
	}

	view := types.DayView{
		Date:       day.String(),
		SlotLabels: grid.Labels(),
		Lanes:      make([]types.Lane, 0, len(venues)),
	}
	peak := 0
	for _, v := range venues {
		positioned, columns := layout.Arrange(byVenue[v.ID], s.slotHeightPx)
		if columns > peak {
			peak = columns
		}
		lane := types.Lane{
			VenueID:    v.ID,
			VenueTitle: v.Title,
			Columns:    columns,
			Events:     make([]types.Block, 0, len(positioned)),
		}
		for _, p := range positioned {
			lane.Events = append(lane.Events, types.Block{
				ID:           p.Event.ID,
				Title:        p.Event.Title,
				Start:        p.Event.Start.Format(time.RFC3339),
				End:          p.Event.End.Format(time.RFC3339),
				TopPx:        p.TopPx,
				HeightPx:     p.HeightPx,
				LeftPercent:  p.LeftPercent,
				WidthPercent: p.WidthPercent,
			})
		}
		view.Lanes = append(view.Lanes, lane)
	}

	metrics.RecordLayoutPass(float64(s.now().Sub(started).Microseconds())/1000, peak)
	if s.logger != nil {
		s.logger.Debug(ctx, "day view computed",
			logger.String("day", view.Date),
			logger.Int("venues", len(view.Lanes)),
			logger.Int("peak_columns", peak))
	}
	return view, nil
}

// ScrollTarget applies the auto-scroll policy for a day given the
// current sticky-header height.
func (s *Service) ScrollTarget(ctx context.Context, day model.Day, headerPx float64) (float64, error) {
	venues, err := s.store.ListVenues(ctx)
	if err != nil {
		return 0, err
	}
	byVenue, err := s.eventsForDay(ctx, day, venues)
	if err != nil {
		return 0, err
	}
	var events []model.Event
	for _, v := range venues {
		events = append(events, byVenue[v.ID]...)
	}
	return scrollsync.Target(events, day, s.now(), headerPx, s.slotHeightPx), nil
}

// Window reports the current day-tab strip.
func (s *Service) Window() types.Window {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.windowLocked()
}

// SelectTab recenters the window on the tapped tab.
func (s *Service) SelectTab(index int) types.Window {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.window.SelectedDay()
	s.window.SelectTab(index)
	if s.window.SelectedDay() != before {
		metrics.RecordDaySwitch()
	}
	return s.windowLocked()
}

// ShiftWindow slides the strip by whole days, keeping the selected slot.
func (s *Service) ShiftWindow(deltaDays int) types.Window {
	s.mu.Lock()
	defer s.mu.Unlock()
	if deltaDays != 0 {
		s.window.Shift(deltaDays)
		metrics.RecordDaySwitch()
	}
	return s.windowLocked()
}

// ExtendWindow slides the strip in response to an edge approach;
// forward when forward is true, otherwise backward. Rapid repeats
// inside the guard interval are dropped.
func (s *Service) ExtendWindow(forward bool) (types.Window, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var moved bool
	if forward {
		moved = s.window.ExtendForward()
	} else {
		moved = s.window.ExtendBackward()
	}
	if moved {
		metrics.RecordDaySwitch()
	}
	return s.windowLocked(), moved
}

func (s *Service) windowLocked() types.Window {
	days := s.window.Days()
	out := types.Window{
		Days:     make([]string, 0, len(days)),
		Selected: s.window.SelectedIndex(),
	}
	for _, d := range days {
		out.Days = append(out.Days, d.String())
	}
	return out
}

// eventsForDay buckets the day's events per venue: stored events first,
// then generated demo events when demo mode is on. Events belong to the
// day of their start timestamp only.
func (s *Service) eventsForDay(ctx context.Context, day model.Day, venues []model.Venue) (map[string][]model.Event, error) {
	all, err := s.store.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	byVenue := make(map[string][]model.Event, len(venues))
	for _, v := range venues {
		byVenue[v.ID] = nil
	}
	for _, ev := range all {
		if model.DayOf(ev.Start) != day {
			continue
		}
		byVenue[ev.VenueID] = append(byVenue[ev.VenueID], ev)
	}
	if s.demoEvents {
		for _, ev := range demo.EventsForDay(day, venues) {
			byVenue[ev.VenueID] = append(byVenue[ev.VenueID], ev)
		}
	}
	return byVenue, nil
}

func (s *Service) refreshStoreGauges(ctx context.Context) {
	venues, err := s.store.ListVenues(ctx)
	if err != nil {
		return
	}
	events, err := s.store.ListEvents(ctx)
	if err != nil {
		return
	}
	metrics.SetVenueCount(len(venues))
	metrics.SetEventCount(len(events))
}
