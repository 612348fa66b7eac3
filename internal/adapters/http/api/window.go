package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

// WindowHandler handles day-tab strip navigation.
type WindowHandler struct {
	deps Dependencies
}

// NewWindowHandler creates a new window handler.
func NewWindowHandler(deps Dependencies) *WindowHandler {
	return &WindowHandler{deps: deps}
}

// HandleGetWindow handles GET /api/window.
func (h *WindowHandler) HandleGetWindow(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Window())
}

type selectRequest struct {
	Index int `json:"index"`
}

type shiftRequest struct {
	DeltaDays int `json:"delta_days"`
}

type extendRequest struct {
	Direction string `json:"direction"` // "forward" or "backward"
}

type extendResponse struct {
	Window any  `json:"window"`
	Moved  bool `json:"moved"`
}

// HandleWindowAction handles POST /api/window/{select|shift|extend}.
func (h *WindowHandler) HandleWindowAction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	action := strings.TrimPrefix(r.URL.Path, "/api/window/")
	switch action {
	case "select":
		var req selectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, h.deps.SelectTab(req.Index))
	case "shift":
		var req shiftRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, h.deps.ShiftWindow(req.DeltaDays))
	case "extend":
		var req extendRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		if req.Direction != "forward" && req.Direction != "backward" {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		window, moved := h.deps.ExtendWindow(req.Direction == "forward")
		writeJSON(w, http.StatusOK, extendResponse{Window: window, Moved: moved})
	default:
		http.NotFound(w, r)
	}
}
