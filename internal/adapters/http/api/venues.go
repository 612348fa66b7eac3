package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

// VenuesHandler handles venue collection and item requests.
type VenuesHandler struct {
	deps Dependencies
}

// NewVenuesHandler creates a new venues handler.
func NewVenuesHandler(deps Dependencies) *VenuesHandler {
	return &VenuesHandler{deps: deps}
}

type venueRequest struct {
	Title string `json:"title"`
}

type venueResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// HandleVenues handles GET and POST /api/venues.
func (h *VenuesHandler) HandleVenues(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		venues, err := h.deps.Venues(r.Context())
		if err != nil {
			writeStoreError(w, err)
			return
		}
		out := make([]venueResponse, 0, len(venues))
		for _, v := range venues {
			out = append(out, venueResponse{ID: v.ID, Title: v.Title})
		}
		writeJSON(w, http.StatusOK, out)
	case http.MethodPost:
		var req venueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		v, err := h.deps.CreateVenue(r.Context(), req.Title)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, venueResponse{ID: v.ID, Title: v.Title})
	default:
		http.NotFound(w, r)
	}
}

// HandleVenueByID handles DELETE /api/venues/{id}.
func (h *VenuesHandler) HandleVenueByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/venues/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	// Cascades to the venue's events; deleting a missing id is a no-op.
	if err := h.deps.RemoveVenue(r.Context(), id); err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
