package model_test

import (
	"testing"
	"time"

	"github.com/okian/daygrid/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestDay(t *testing.T) {
	Convey("Given timestamps across a day boundary", t, func() {
		lateNight := time.Date(2025, time.March, 10, 23, 45, 0, 0, time.Local)
		earlyMorning := time.Date(2025, time.March, 11, 0, 15, 0, 0, time.Local)

		Convey("Each belongs to the day of its own start", func() {
			So(model.DayOf(lateNight), ShouldResemble, model.Day{Year: 2025, Month: time.March, Date: 10})
			So(model.DayOf(earlyMorning), ShouldResemble, model.Day{Year: 2025, Month: time.March, Date: 11})
		})

		Convey("A cross-midnight event stays with its start day", func() {
			ev := model.Event{Start: lateNight, End: earlyMorning}
			So(model.DayOf(ev.Start), ShouldResemble, model.Day{Year: 2025, Month: time.March, Date: 10})
		})
	})

	Convey("Given a day", t, func() {
		day := model.Day{Year: 2025, Month: time.March, Date: 10}

		Convey("It formats as YYYY-MM-DD and round-trips through ParseDay", func() {
			So(day.String(), ShouldEqual, "2025-03-10")
			parsed, err := model.ParseDay("2025-03-10")
			So(err, ShouldBeNil)
			So(parsed, ShouldResemble, day)
		})

		Convey("Malformed dates fail to parse", func() {
			_, err := model.ParseDay("03/10/2025")
			So(err, ShouldNotBeNil)
		})

		Convey("AddDays crosses month and year boundaries", func() {
			So(day.AddDays(22), ShouldResemble, model.Day{Year: 2025, Month: time.April, Date: 1})
			So(day.AddDays(-69), ShouldResemble, model.Day{Year: 2024, Month: time.December, Date: 31})
		})

		Convey("Start is local midnight", func() {
			start := day.Start()
			So(start.Hour(), ShouldEqual, 0)
			So(start.Minute(), ShouldEqual, 0)
			So(start.Location(), ShouldEqual, time.Local)
		})
	})
}

func TestEventOverlaps(t *testing.T) {
	at := func(hour, minute int) time.Time {
		return time.Date(2025, time.March, 10, hour, minute, 0, 0, time.Local)
	}

	Convey("Given events on one day", t, func() {
		a := model.Event{Start: at(9, 0), End: at(9, 30)}

		Convey("Sharing any instant counts as overlap", func() {
			b := model.Event{Start: at(9, 15), End: at(10, 0)}
			So(a.Overlaps(b), ShouldBeTrue)
			So(b.Overlaps(a), ShouldBeTrue)
		})

		Convey("Back-to-back events do not overlap", func() {
			b := model.Event{Start: at(9, 30), End: at(10, 0)}
			So(a.Overlaps(b), ShouldBeFalse)
		})

		Convey("Containment is overlap", func() {
			b := model.Event{Start: at(8, 0), End: at(11, 0)}
			So(a.Overlaps(b), ShouldBeTrue)
		})
	})
}
