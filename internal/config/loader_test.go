package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/daygrid/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	Convey("Given a clean environment", t, func() {
		for _, key := range []string{
			"DAYGRID_CONFIG", "DAYGRID_ADDR", "DAYGRID_WINDOW_SIZE",
			"DAYGRID_DEMO_EVENTS", "DAYGRID_SLOT_HEIGHT_PX",
		} {
			So(os.Unsetenv(key), ShouldBeNil)
		}

		Convey("Defaults load successfully", func() {
			cfg, err := config.Load(ctx)
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":9080")
			So(cfg.SlotHeightPx, ShouldEqual, 48)
			So(cfg.WindowSize, ShouldEqual, 7)
			So(cfg.ExtendStepDays, ShouldEqual, 3)
			So(cfg.DemoEvents, ShouldBeFalse)
		})

		Convey("Environment variables override defaults", func() {
			t.Setenv("DAYGRID_ADDR", ":7070")
			t.Setenv("DAYGRID_WINDOW_SIZE", "9")
			t.Setenv("DAYGRID_DEMO_EVENTS", "true")

			cfg, err := config.Load(ctx)
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":7070")
			So(cfg.WindowSize, ShouldEqual, 9)
			So(cfg.DemoEvents, ShouldBeTrue)
		})

		Convey("A YAML file overrides defaults but yields to env", func() {
			path := filepath.Join(t.TempDir(), "daygrid.yaml")
			So(os.WriteFile(path, []byte("addr: \":6060\"\nslot_height_px: 24\n"), 0o600), ShouldBeNil)
			t.Setenv("DAYGRID_CONFIG", path)
			t.Setenv("DAYGRID_ADDR", ":7070")

			cfg, err := config.Load(ctx)
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, ":7070")
			So(cfg.SlotHeightPx, ShouldEqual, 24)
		})

		Convey("Invalid values are rejected", func() {
			t.Setenv("DAYGRID_SLOT_HEIGHT_PX", "-1")

			_, err := config.Load(ctx)
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})

		Convey("A missing config file is an error", func() {
			t.Setenv("DAYGRID_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

			_, err := config.Load(ctx)
			So(errors.Is(err, config.ErrLoadConfig), ShouldBeTrue)
		})
	})
}
