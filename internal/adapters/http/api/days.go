package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/okian/daygrid/internal/domain/model"
	"github.com/okian/daygrid/internal/domain/types"
)

// DaysHandler serves the per-day rendering payload and its exports.
type DaysHandler struct {
	deps Dependencies
}

// NewDaysHandler creates a new days handler.
func NewDaysHandler(deps Dependencies) *DaysHandler {
	return &DaysHandler{deps: deps}
}

// dayViewResponse is a DayView plus the auto-scroll offset computed for
// the caller's sticky-header height.
type dayViewResponse struct {
	types.DayView
	ScrollTargetPx float64 `json:"scroll_target_px"`
}

// HandleDay handles GET /api/days/{YYYY-MM-DD} and
// GET /api/days/{YYYY-MM-DD}/ics.
func (h *DaysHandler) HandleDay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	rest := strings.TrimPrefix(r.URL.Path, "/api/days/")
	dateStr, sub, _ := strings.Cut(rest, "/")
	day, err := model.ParseDay(dateStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadDate)
		return
	}
	switch sub {
	case "":
		h.handleView(w, r, day)
	case "ics":
		h.handleICS(w, r, day)
	default:
		http.NotFound(w, r)
	}
}

func (h *DaysHandler) handleView(w http.ResponseWriter, r *http.Request, day model.Day) {
	view, err := h.deps.DayView(r.Context(), day)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	// header_px lets the client report its measured sticky-header height.
	headerPx := 0.0
	if raw := r.URL.Query().Get("header_px"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		headerPx = parsed
	}
	target, err := h.deps.ScrollTarget(r.Context(), day, headerPx)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dayViewResponse{DayView: view, ScrollTargetPx: target})
}

// handleICS exports the day's events as an iCalendar feed, one VEVENT
// per positioned event, with the venue title as the location.
func (h *DaysHandler) handleICS(w http.ResponseWriter, r *http.Request, day model.Day) {
	view, err := h.deps.DayView(r.Context(), day)
	if err != nil {
		writeStoreError(w, err)
		return
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	for _, lane := range view.Lanes {
		for _, block := range lane.Events {
			start, err := time.Parse(time.RFC3339, block.Start)
			if err != nil {
				continue
			}
			end, err := time.Parse(time.RFC3339, block.End)
			if err != nil {
				continue
			}
			ev := cal.AddEvent(block.ID)
			ev.SetSummary(block.Title)
			ev.SetLocation(lane.VenueTitle)
			ev.SetStartAt(start)
			ev.SetEndAt(end)
			ev.SetDtStampTime(start)
		}
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="daygrid-`+day.String()+`.ics"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(cal.Serialize()))
}
