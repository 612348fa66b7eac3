package grid_test

import (
	"testing"
	"time"

	"github.com/okian/daygrid/internal/domain/grid"
	. "github.com/smartystreets/goconvey/convey"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, time.March, 10, hour, minute, 0, 0, time.Local)
}

func TestOffsetPx(t *testing.T) {
	Convey("Given the default slot height", t, func() {
		h := grid.DefaultSlotHeightPx

		Convey("Midnight maps to offset zero", func() {
			So(grid.OffsetPx(at(0, 0), h), ShouldEqual, 0)
		})

		Convey("Whole slots map to whole multiples of the slot height", func() {
			So(grid.OffsetPx(at(0, 15), h), ShouldEqual, h)
			So(grid.OffsetPx(at(1, 0), h), ShouldEqual, 4*h)
			So(grid.OffsetPx(at(9, 30), h), ShouldEqual, 38*h)
		})

		Convey("Sub-slot times keep their fractional position", func() {
			// 08:07 sits 7/15 of the way into the 08:00 slot.
			want := (8*60 + 7) / 15.0 * h
			So(grid.OffsetPx(at(8, 7), h), ShouldAlmostEqual, want, 1e-9)
		})

		Convey("Offsets are monotonic over the day", func() {
			prev := -1.0
			for hour := 0; hour < 24; hour++ {
				for min := 0; min < 60; min += 7 {
					off := grid.OffsetPx(at(hour, min), h)
					So(off, ShouldBeGreaterThanOrEqualTo, prev)
					prev = off
				}
			}
		})
	})
}

func TestHeightPx(t *testing.T) {
	Convey("Given the default slot height", t, func() {
		h := grid.DefaultSlotHeightPx

		Convey("A one-slot event is one slot tall", func() {
			So(grid.HeightPx(at(9, 0), at(9, 15), h), ShouldEqual, h)
		})

		Convey("A 90-minute event spans six slots", func() {
			So(grid.HeightPx(at(9, 0), at(10, 30), h), ShouldEqual, 6*h)
		})

		Convey("Inverted intervals clamp to zero rather than going negative", func() {
			So(grid.HeightPx(at(10, 0), at(9, 0), h), ShouldEqual, 0)
		})

		Convey("Zero duration yields zero height", func() {
			So(grid.HeightPx(at(9, 0), at(9, 0), h), ShouldEqual, 0)
		})
	})
}

func TestLabels(t *testing.T) {
	Convey("Given the slot label list", t, func() {
		labels := grid.Labels()

		Convey("There is one label per 15-minute slot", func() {
			So(len(labels), ShouldEqual, grid.SlotsPerDay)
			So(len(labels), ShouldEqual, 96)
		})

		Convey("Labels are 24-hour HH:MM at every slot boundary", func() {
			So(labels[0], ShouldEqual, "00:00")
			So(labels[1], ShouldEqual, "00:15")
			So(labels[33], ShouldEqual, "08:15")
			So(labels[95], ShouldEqual, "23:45")
		})
	})
}
