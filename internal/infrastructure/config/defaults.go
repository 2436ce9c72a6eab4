package config

// Default configuration constants
const (
	defaultSnapshotIntervalMs = 500
	defaultMinPanelPx         = 80
	defaultEdgeThresholdPct   = 0.10
	defaultEdgeThresholdMaxPx = 60
	defaultSnapTolerancePx    = 12
	defaultFloatingOffsetPx   = 24
	defaultFloatingWidth      = 400
	defaultFloatingHeight     = 300
	maxSnapshotIntervalMs     = 60_000
	maxEdgeThresholdPct       = 0.5
	minFloatingDimensionPx    = 120
	defaultLogLevel           = "info"
	defaultLogFormat          = "console"
)

// DefaultConfig returns the default configuration values for dockyard.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Database: DatabaseConfig{
			// Path is set dynamically in Load()
		},
		Layout: LayoutConfig{
			SnapshotIntervalMs:    defaultSnapshotIntervalMs,
			DefaultMinPanelPx:     defaultMinPanelPx,
			EdgeThresholdPct:      defaultEdgeThresholdPct,
			EdgeThresholdMaxPx:    defaultEdgeThresholdMaxPx,
			SnapTolerancePx:       defaultSnapTolerancePx,
			FloatingOffsetPx:      defaultFloatingOffsetPx,
			DefaultFloatingWidth:  defaultFloatingWidth,
			DefaultFloatingHeight: defaultFloatingHeight,
			GesturePolicy:         GesturePolicyIgnore,
		},
	}
}
