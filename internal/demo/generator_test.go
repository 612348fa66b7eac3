package demo_test

import (
	"testing"
	"time"

	"github.com/okian/daygrid/internal/demo"
	"github.com/okian/daygrid/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEventsForDay(t *testing.T) {
	day := model.Day{Year: 2025, Month: time.March, Date: 10}
	venues := []model.Venue{
		{ID: "venue-a", Title: "Main Hall"},
		{ID: "venue-b", Title: "Studio"},
	}

	Convey("Given a day and a venue set", t, func() {
		events := demo.EventsForDay(day, venues)

		Convey("Every venue gets between one and four events", func() {
			perVenue := map[string]int{}
			for _, ev := range events {
				perVenue[ev.VenueID]++
			}
			So(len(perVenue), ShouldEqual, 2)
			for _, n := range perVenue {
				So(n, ShouldBeGreaterThanOrEqualTo, 1)
				So(n, ShouldBeLessThanOrEqualTo, 4)
			}
		})

		Convey("All events fall inside the requested day", func() {
			dayStart := day.Start()
			dayEnd := dayStart.AddDate(0, 0, 1)
			for _, ev := range events {
				So(ev.Start.Before(dayStart), ShouldBeFalse)
				So(ev.End.After(dayEnd), ShouldBeFalse)
				So(ev.End.After(ev.Start), ShouldBeTrue)
				So(model.DayOf(ev.Start), ShouldResemble, day)
			}
		})

		Convey("Starts snap to quarter-hour boundaries in business hours", func() {
			for _, ev := range events {
				So(ev.Start.Minute()%15, ShouldEqual, 0)
				So(ev.Start.Hour(), ShouldBeGreaterThanOrEqualTo, 8)
				So(ev.Start.Hour(), ShouldBeLessThan, 18)
			}
		})

		Convey("The same inputs yield the same outputs", func() {
			again := demo.EventsForDay(day, venues)
			So(again, ShouldResemble, events)
		})

		Convey("A different day yields a different set", func() {
			other := demo.EventsForDay(day.AddDays(1), venues)
			So(other, ShouldNotResemble, events)
		})

		Convey("Event ids encode day, venue and sequence", func() {
			So(events[0].ID, ShouldStartWith, "20250310-venue-a-")
		})
	})

	Convey("Given no venues", t, func() {
		Convey("No events are generated", func() {
			So(demo.EventsForDay(day, nil), ShouldBeEmpty)
		})
	})
}
