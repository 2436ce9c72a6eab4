package config

import (
	"fmt"
	"strings"
)

// validateConfig checks every section and reports all problems at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateLayout(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	switch config.Logging.Level {
	case "", "trace", "debug", "info", "warn", "error", "fatal":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, fatal (got %q)", config.Logging.Level))
	}

	switch config.Logging.Format {
	case "", "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}

	return validationErrors
}

func validateLayout(config *Config) []string {
	var validationErrors []string
	l := config.Layout

	if l.SnapshotIntervalMs < 0 || l.SnapshotIntervalMs > maxSnapshotIntervalMs {
		validationErrors = append(validationErrors,
			fmt.Sprintf("layout.snapshot_interval_ms must be between 0 and %d", maxSnapshotIntervalMs))
	}
	if l.DefaultMinPanelPx < 0 {
		validationErrors = append(validationErrors, "layout.default_min_panel_px must be non-negative")
	}
	if l.EdgeThresholdPct <= 0 || l.EdgeThresholdPct > maxEdgeThresholdPct {
		validationErrors = append(validationErrors,
			fmt.Sprintf("layout.edge_threshold_pct must be in (0, %.1f]", maxEdgeThresholdPct))
	}
	if l.EdgeThresholdMaxPx <= 0 {
		validationErrors = append(validationErrors, "layout.edge_threshold_max_px must be positive")
	}
	if l.SnapTolerancePx < 0 {
		validationErrors = append(validationErrors, "layout.snap_tolerance_px must be non-negative")
	}
	if l.FloatingOffsetPx < 0 {
		validationErrors = append(validationErrors, "layout.floating_offset_px must be non-negative")
	}
	if l.DefaultFloatingWidth < minFloatingDimensionPx {
		validationErrors = append(validationErrors,
			fmt.Sprintf("layout.default_floating_width must be at least %d", minFloatingDimensionPx))
	}
	if l.DefaultFloatingHeight < minFloatingDimensionPx/2 {
		validationErrors = append(validationErrors,
			fmt.Sprintf("layout.default_floating_height must be at least %d", minFloatingDimensionPx/2))
	}

	switch l.GesturePolicy {
	case GesturePolicyIgnore, GesturePolicyForceEnd:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("layout.gesture_policy must be ignore or force_end (got %q)", l.GesturePolicy))
	}

	return validationErrors
}
