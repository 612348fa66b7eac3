// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() with defaults; Load layers file and env on top.
// - External errors are wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SlotHeightPx is the rendered height of one 15-minute slot.
	SlotHeightPx float64 `koanf:"slot_height_px"`

	// WindowSize is the number of day tabs; even values are bumped to
	// odd so the window keeps a center.
	WindowSize int `koanf:"window_size"`

	// ExtendStepDays is how far an edge-triggered slide moves the strip.
	ExtendStepDays int `koanf:"extend_step_days"`

	// ExtendGuardMS debounces repeated edge triggers.
	ExtendGuardMS int `koanf:"extend_guard_ms"`

	// SnapshotPath persists venues/events as JSON; empty disables it.
	SnapshotPath string `koanf:"snapshot_path"`

	// DemoEvents mixes deterministic generated events into every day.
	DemoEvents bool `koanf:"demo_events"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9080",
		SlotHeightPx:   48,
		WindowSize:     7,
		ExtendStepDays: 3,
		ExtendGuardMS:  150,
		SnapshotPath:   "daygrid.json",
		DemoEvents:     false,
	}
}
