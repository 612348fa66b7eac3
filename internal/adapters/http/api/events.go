package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/okian/daygrid/internal/adapters/repository"
	"github.com/okian/daygrid/internal/domain/model"
)

// EventsHandler handles event collection and item requests.
type EventsHandler struct {
	deps Dependencies
}

// NewEventsHandler creates a new events handler.
func NewEventsHandler(deps Dependencies) *EventsHandler {
	return &EventsHandler{deps: deps}
}

// eventRequest mirrors the JSON body of POST /api/events. Times travel
// as RFC3339 strings; the store validates them.
type eventRequest struct {
	Title   string `json:"title"`
	VenueID string `json:"venue_id"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

type eventResponse struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	VenueID string `json:"venue_id"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

func toEventResponse(ev model.Event) eventResponse {
	return eventResponse{
		ID:      ev.ID,
		Title:   ev.Title,
		VenueID: ev.VenueID,
		Start:   ev.Start.Format(time.RFC3339),
		End:     ev.End.Format(time.RFC3339),
	}
}

// HandleEvents handles GET and POST /api/events.
func (h *EventsHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		events, err := h.deps.Events(r.Context())
		if err != nil {
			writeStoreError(w, err)
			return
		}
		out := make([]eventResponse, 0, len(events))
		for _, ev := range events {
			out = append(out, toEventResponse(ev))
		}
		writeJSON(w, http.StatusOK, out)
	case http.MethodPost:
		var req eventRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		ev, err := h.deps.CreateEvent(r.Context(), repository.EventDraft{
			Title:   req.Title,
			VenueID: req.VenueID,
			Start:   req.Start,
			End:     req.End,
		})
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toEventResponse(ev))
	default:
		http.NotFound(w, r)
	}
}

// HandleEventByID handles DELETE /api/events/{id}.
func (h *EventsHandler) HandleEventByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/events/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := h.deps.RemoveEvent(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
