package metrics_test

import (
	"testing"

	"github.com/okian/daygrid/pkg/metrics"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMetrics(t *testing.T) {
	Convey("Given the metrics manager", t, func() {
		metrics.Init()

		Convey("Init is idempotent and the registry is stable", func() {
			first := metrics.GetRegistry()
			metrics.Init()
			So(metrics.GetRegistry(), ShouldEqual, first)
		})

		Convey("Recording helpers do not panic", func() {
			So(func() {
				metrics.SetVenueCount(3)
				metrics.SetEventCount(12)
				metrics.RecordLayoutPass(0.4, 2)
				metrics.RecordDaySwitch()
				metrics.RecordValidationFailure()
				metrics.RecordHTTPRequest("days", "GET", "200")
				metrics.RecordHTTPRequestDuration("days", "GET", "200", 3.5)
			}, ShouldNotPanic)
		})

		Convey("Registered collectors gather cleanly", func() {
			families, err := metrics.GetRegistry().Gather()
			So(err, ShouldBeNil)
			So(len(families), ShouldBeGreaterThan, 0)
		})
	})
}
