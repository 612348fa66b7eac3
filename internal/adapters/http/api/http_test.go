package api_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/okian/daygrid/internal/adapters/http/api"
	service "github.com/okian/daygrid/internal/app"
	"github.com/okian/daygrid/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func newTestMux(t *testing.T, now time.Time) *http.ServeMux {
	t.Helper()
	svc, err := service.New(service.WithClock(func() time.Time { return now }))
	if err != nil {
		t.Fatalf("service: %v", err)
	}
	mux := http.NewServeMux()
	api.NewServer(svc).Register(context.Background(), mux)
	return mux
}

func do(mux *http.ServeMux, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestAPI(t *testing.T) {
	now := time.Date(2025, time.March, 10, 14, 10, 0, 0, time.Local)
	today := model.DayOf(now)
	rfc := func(hour, minute int) string {
		return today.Start().Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute).Format(time.RFC3339)
	}

	Convey("Given the API mux", t, func() {
		mux := newTestMux(t, now)

		createVenue := func(title string) string {
			rec := do(mux, http.MethodPost, "/api/venues", fmt.Sprintf(`{"title":%q}`, title))
			So(rec.Code, ShouldEqual, http.StatusCreated)
			var out struct {
				ID string `json:"id"`
			}
			So(json.Unmarshal(rec.Body.Bytes(), &out), ShouldBeNil)
			return out.ID
		}

		Convey("Venues can be created and listed in insertion order", func() {
			a := createVenue("Main Hall")
			b := createVenue("Studio")

			rec := do(mux, http.MethodGet, "/api/venues", "")
			So(rec.Code, ShouldEqual, http.StatusOK)
			var venues []struct {
				ID    string `json:"id"`
				Title string `json:"title"`
			}
			So(json.Unmarshal(rec.Body.Bytes(), &venues), ShouldBeNil)
			So(len(venues), ShouldEqual, 2)
			So(venues[0].ID, ShouldEqual, a)
			So(venues[1].ID, ShouldEqual, b)
		})

		Convey("A blank venue title is a validation error", func() {
			rec := do(mux, http.MethodPost, "/api/venues", `{"title":"  "}`)
			So(rec.Code, ShouldEqual, http.StatusBadRequest)
			So(rec.Body.String(), ShouldContainSubstring, "validation_error")
		})

		Convey("Given a venue", func() {
			venueID := createVenue("Main Hall")

			postEvent := func(title, start, end string) *httptest.ResponseRecorder {
				body := fmt.Sprintf(`{"title":%q,"venue_id":%q,"start":%q,"end":%q}`, title, venueID, start, end)
				return do(mux, http.MethodPost, "/api/events", body)
			}

			Convey("A valid event is created", func() {
				rec := postEvent("Workshop", rfc(9, 0), rfc(10, 0))
				So(rec.Code, ShouldEqual, http.StatusCreated)
				So(rec.Body.String(), ShouldContainSubstring, "Workshop")
			})

			Convey("An inverted interval is rejected and nothing is stored", func() {
				rec := postEvent("Backwards", rfc(10, 0), rfc(9, 0))
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
				So(rec.Body.String(), ShouldContainSubstring, "validation_error")

				list := do(mux, http.MethodGet, "/api/events", "")
				So(list.Body.String(), ShouldEqual, "[]\n")
			})

			Convey("An unknown venue reference is rejected", func() {
				body := fmt.Sprintf(`{"title":"Orphan","venue_id":"missing","start":%q,"end":%q}`, rfc(9, 0), rfc(10, 0))
				rec := do(mux, http.MethodPost, "/api/events", body)
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
			})

			Convey("Deleting the venue cascades to its events", func() {
				So(postEvent("Doomed", rfc(9, 0), rfc(10, 0)).Code, ShouldEqual, http.StatusCreated)

				rec := do(mux, http.MethodDelete, "/api/venues/"+venueID, "")
				So(rec.Code, ShouldEqual, http.StatusOK)

				list := do(mux, http.MethodGet, "/api/events", "")
				So(list.Body.String(), ShouldEqual, "[]\n")

				Convey("And deleting it again is a no-op", func() {
					again := do(mux, http.MethodDelete, "/api/venues/"+venueID, "")
					So(again.Code, ShouldEqual, http.StatusOK)
				})
			})

			Convey("The day view reports lanes, labels and scroll target", func() {
				So(postEvent("Running", rfc(14, 0), rfc(15, 0)).Code, ShouldEqual, http.StatusCreated)

				rec := do(mux, http.MethodGet, "/api/days/"+today.String()+"?header_px=56", "")
				So(rec.Code, ShouldEqual, http.StatusOK)

				var view struct {
					Date       string   `json:"date"`
					SlotLabels []string `json:"slot_labels"`
					Lanes      []struct {
						VenueID string `json:"venue_id"`
						Columns int    `json:"columns"`
						Events  []struct {
							TopPx        float64 `json:"top_px"`
							WidthPercent float64 `json:"width_percent"`
						} `json:"events"`
					} `json:"lanes"`
					ScrollTargetPx float64 `json:"scroll_target_px"`
				}
				So(json.Unmarshal(rec.Body.Bytes(), &view), ShouldBeNil)
				So(view.Date, ShouldEqual, today.String())
				So(len(view.SlotLabels), ShouldEqual, 96)
				So(len(view.Lanes), ShouldEqual, 1)
				So(view.Lanes[0].Columns, ShouldEqual, 1)
				So(len(view.Lanes[0].Events), ShouldEqual, 1)
				// 14:00 is slot 56; target sits headerPx+8 above it.
				So(view.Lanes[0].Events[0].TopPx, ShouldEqual, 56*48.0)
				So(view.ScrollTargetPx, ShouldEqual, 56*48.0-64)
			})

			Convey("A malformed date is rejected", func() {
				rec := do(mux, http.MethodGet, "/api/days/2025-3-10", "")
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
			})

			Convey("The ICS export carries the day's events", func() {
				So(postEvent("Workshop", rfc(9, 0), rfc(10, 0)).Code, ShouldEqual, http.StatusCreated)

				rec := do(mux, http.MethodGet, "/api/days/"+today.String()+"/ics", "")
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Header().Get("Content-Type"), ShouldStartWith, "text/calendar")
				So(rec.Body.String(), ShouldContainSubstring, "BEGIN:VCALENDAR")
				So(rec.Body.String(), ShouldContainSubstring, "SUMMARY:Workshop")
				So(rec.Body.String(), ShouldContainSubstring, "LOCATION:Main Hall")
			})
		})

		Convey("The day window is navigable over HTTP", func() {
			rec := do(mux, http.MethodGet, "/api/window", "")
			So(rec.Code, ShouldEqual, http.StatusOK)

			var window struct {
				Days     []string `json:"days"`
				Selected int      `json:"selected"`
			}
			So(json.Unmarshal(rec.Body.Bytes(), &window), ShouldBeNil)
			So(len(window.Days), ShouldEqual, 7)
			So(window.Days[window.Selected], ShouldEqual, today.String())

			Convey("Shift moves the selected slot's day", func() {
				rec := do(mux, http.MethodPost, "/api/window/shift", `{"delta_days":3}`)
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(json.Unmarshal(rec.Body.Bytes(), &window), ShouldBeNil)
				So(window.Days[window.Selected], ShouldEqual, today.AddDays(3).String())
			})

			Convey("Select recenters on the tapped tab", func() {
				rec := do(mux, http.MethodPost, "/api/window/select", `{"index":5}`)
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(json.Unmarshal(rec.Body.Bytes(), &window), ShouldBeNil)
				So(window.Selected, ShouldEqual, 3)
				So(window.Days[window.Selected], ShouldEqual, today.AddDays(2).String())
			})

			Convey("A second extend inside the guard does not move", func() {
				first := do(mux, http.MethodPost, "/api/window/extend", `{"direction":"forward"}`)
				So(first.Code, ShouldEqual, http.StatusOK)
				So(first.Body.String(), ShouldContainSubstring, `"moved":true`)

				second := do(mux, http.MethodPost, "/api/window/extend", `{"direction":"forward"}`)
				So(second.Body.String(), ShouldContainSubstring, `"moved":false`)
			})

			Convey("An unknown direction is rejected", func() {
				rec := do(mux, http.MethodPost, "/api/window/extend", `{"direction":"sideways"}`)
				So(rec.Code, ShouldEqual, http.StatusBadRequest)
			})
		})

		Convey("Unsupported methods fall through to 404", func() {
			So(do(mux, http.MethodPut, "/api/venues", "{}").Code, ShouldEqual, http.StatusNotFound)
			So(do(mux, http.MethodDelete, "/api/events", "").Code, ShouldEqual, http.StatusNotFound)
		})
	})
}
