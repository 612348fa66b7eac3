package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if DAYGRID_CONFIG is set
//  3. env (prefix DAYGRID_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("DAYGRID_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: DAYGRID_ADDR, DAYGRID_WINDOW_SIZE, ...
	// Underscores are preserved so keys match the koanf struct tags.
	envProvider := env.Provider("DAYGRID_", ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), "daygrid_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	switch {
	case cfg.Addr == "":
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.SlotHeightPx <= 0:
		return nil, fmt.Errorf("%w: slot_height_px must be positive", ErrInvalidConfig)
	case cfg.WindowSize < 1:
		return nil, fmt.Errorf("%w: window_size must be at least 1", ErrInvalidConfig)
	case cfg.ExtendStepDays < 1:
		return nil, fmt.Errorf("%w: extend_step_days must be at least 1", ErrInvalidConfig)
	}
	return &cfg, nil
}
