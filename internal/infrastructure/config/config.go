package config

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Config represents the complete configuration for dockyard.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging" toml:"logging"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database" toml:"database"`
	// Layout tunes the docking engine: gestures, snapping and persistence.
	Layout LayoutConfig `mapstructure:"layout" yaml:"layout" toml:"layout"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level" toml:"level"`
	// Format is console or json.
	Format string `mapstructure:"format" yaml:"format" toml:"format"`
	// File writes logs to this path in addition to stderr when set.
	File string `mapstructure:"file" yaml:"file" toml:"file"`
}

// DatabaseConfig holds the layout store location.
type DatabaseConfig struct {
	Path string `mapstructure:"path" yaml:"path" toml:"path"`
}

// GesturePolicy decides what happens when a gesture starts while another is active.
type GesturePolicy string

const (
	// GesturePolicyIgnore drops the new gesture.
	GesturePolicyIgnore GesturePolicy = "ignore"
	// GesturePolicyForceEnd ends the active gesture, then starts the new one.
	GesturePolicyForceEnd GesturePolicy = "force_end"
)

// LayoutConfig controls the docking engine. Pixel values are in layout units;
// the terminal shell maps one cell to 8x16 units.
type LayoutConfig struct {
	// SnapshotIntervalMs debounces layout saves.
	SnapshotIntervalMs int `mapstructure:"snapshot_interval_ms" yaml:"snapshot_interval_ms" toml:"snapshot_interval_ms"`
	// DefaultMinPanelPx applies to panels without their own minimum.
	DefaultMinPanelPx int `mapstructure:"default_min_panel_px" yaml:"default_min_panel_px" toml:"default_min_panel_px"`
	// EdgeThresholdPct is the share of a panel dimension that counts as an edge drop zone.
	EdgeThresholdPct float64 `mapstructure:"edge_threshold_pct" yaml:"edge_threshold_pct" toml:"edge_threshold_pct"`
	// EdgeThresholdMaxPx caps the edge drop zone.
	EdgeThresholdMaxPx int `mapstructure:"edge_threshold_max_px" yaml:"edge_threshold_max_px" toml:"edge_threshold_max_px"`
	// SnapTolerancePx is the distance under which floating windows snap. Zero disables snapping.
	SnapTolerancePx int `mapstructure:"snap_tolerance_px" yaml:"snap_tolerance_px" toml:"snap_tolerance_px"`
	// FloatingOffsetPx cascades newly opened floating windows.
	FloatingOffsetPx      int `mapstructure:"floating_offset_px" yaml:"floating_offset_px" toml:"floating_offset_px"`
	DefaultFloatingWidth  int `mapstructure:"default_floating_width" yaml:"default_floating_width" toml:"default_floating_width"`
	DefaultFloatingHeight int `mapstructure:"default_floating_height" yaml:"default_floating_height" toml:"default_floating_height"`
	// GesturePolicy is ignore or force_end.
	GesturePolicy GesturePolicy `mapstructure:"gesture_policy" yaml:"gesture_policy" toml:"gesture_policy"`
}
