package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig_Layout(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "zero interval uses default", mutate: func(c *Config) { c.Layout.SnapshotIntervalMs = 0 }},
		{name: "snap disabled", mutate: func(c *Config) { c.Layout.SnapTolerancePx = 0 }},
		{name: "negative interval", mutate: func(c *Config) { c.Layout.SnapshotIntervalMs = -1 }, wantErr: "layout.snapshot_interval_ms"},
		{name: "huge interval", mutate: func(c *Config) { c.Layout.SnapshotIntervalMs = 120_000 }, wantErr: "layout.snapshot_interval_ms"},
		{name: "negative min panel", mutate: func(c *Config) { c.Layout.DefaultMinPanelPx = -5 }, wantErr: "layout.default_min_panel_px"},
		{name: "zero edge pct", mutate: func(c *Config) { c.Layout.EdgeThresholdPct = 0 }, wantErr: "layout.edge_threshold_pct"},
		{name: "edge pct over half", mutate: func(c *Config) { c.Layout.EdgeThresholdPct = 0.6 }, wantErr: "layout.edge_threshold_pct"},
		{name: "zero edge cap", mutate: func(c *Config) { c.Layout.EdgeThresholdMaxPx = 0 }, wantErr: "layout.edge_threshold_max_px"},
		{name: "negative snap", mutate: func(c *Config) { c.Layout.SnapTolerancePx = -1 }, wantErr: "layout.snap_tolerance_px"},
		{name: "narrow floating", mutate: func(c *Config) { c.Layout.DefaultFloatingWidth = 50 }, wantErr: "layout.default_floating_width"},
		{name: "short floating", mutate: func(c *Config) { c.Layout.DefaultFloatingHeight = 10 }, wantErr: "layout.default_floating_height"},
		{name: "unknown policy", mutate: func(c *Config) { c.Layout.GesturePolicy = "queue" }, wantErr: "layout.gesture_policy"},
		{name: "unknown level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
		{name: "unknown format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_ReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout.SnapTolerancePx = -1
	cfg.Layout.FloatingOffsetPx = -1

	err := validateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed:\n  - ")
	assert.Contains(t, err.Error(), "layout.snap_tolerance_px")
	assert.Contains(t, err.Error(), "layout.floating_offset_px")
}
