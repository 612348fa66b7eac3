// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/daygrid/internal/adapters/repository"
	"github.com/okian/daygrid/internal/domain/model"
	"github.com/okian/daygrid/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Venues(ctx context.Context) ([]model.Venue, error)
	CreateVenue(ctx context.Context, title string) (model.Venue, error)
	RemoveVenue(ctx context.Context, id string) error

	Events(ctx context.Context) ([]model.Event, error)
	CreateEvent(ctx context.Context, draft repository.EventDraft) (model.Event, error)
	RemoveEvent(ctx context.Context, id string) error

	DayView(ctx context.Context, day model.Day) (types.DayView, error)
	ScrollTarget(ctx context.Context, day model.Day, headerPx float64) (float64, error)

	Window() types.Window
	SelectTab(index int) types.Window
	ShiftWindow(deltaDays int) types.Window
	ExtendWindow(forward bool) (types.Window, bool)
}

// Server wires HTTP routes for the business API.
type Server struct {
	venuesHandler *VenuesHandler
	eventsHandler *EventsHandler
	daysHandler   *DaysHandler
	windowHandler *WindowHandler
	healthHandler *HealthHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		venuesHandler: NewVenuesHandler(deps),
		eventsHandler: NewEventsHandler(deps),
		daysHandler:   NewDaysHandler(deps),
		windowHandler: NewWindowHandler(deps),
		healthHandler: NewHealthHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/api/venues", MetricsMiddleware(s.venuesHandler.HandleVenues, "venues"))
	mux.HandleFunc("/api/venues/", MetricsMiddleware(s.venuesHandler.HandleVenueByID, "venue"))
	mux.HandleFunc("/api/events", MetricsMiddleware(s.eventsHandler.HandleEvents, "events"))
	mux.HandleFunc("/api/events/", MetricsMiddleware(s.eventsHandler.HandleEventByID, "event"))
	mux.HandleFunc("/api/days/", MetricsMiddleware(s.daysHandler.HandleDay, "days"))
	mux.HandleFunc("/api/window", MetricsMiddleware(s.windowHandler.HandleGetWindow, "window"))
	mux.HandleFunc("/api/window/", MetricsMiddleware(s.windowHandler.HandleWindowAction, "window_action"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeStoreError translates store error kinds to HTTP statuses:
// validation -> 400, not-found -> 404, anything else -> 500.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrValidation):
		writeError(w, http.StatusBadRequest, "validation_error", err)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
