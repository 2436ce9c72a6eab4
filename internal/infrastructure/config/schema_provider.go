package config

import (
	"fmt"
	"strings"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionLogging  = "Logging"
	SectionDatabase = "Database"
	SectionLayout   = "Layout"
	SectionGestures = "Gestures"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 16)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	keys = append(keys, p.getDatabaseKeys()...)
	keys = append(keys, p.getLayoutKeys(defaults)...)
	keys = append(keys, p.getGestureKeys(defaults)...)
	for i := range keys {
		keys[i].Env = EnvVar(keys[i].Key)
	}
	return keys
}

// EnvVar returns the environment variable overriding key.
func EnvVar(key string) string {
	if env, ok := envAliases[key]; ok {
		return env
	}
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Minimum log level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "fatal"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.file",
			Type:        "string",
			Default:     defaults.Logging.File,
			Description: "Also write logs to this file (empty disables)",
			Section:     SectionLogging,
		},
	}
}

func (*SchemaProvider) getDatabaseKeys() []entity.ConfigKeyInfo {
	dbPath, err := GetDatabaseFile()
	if err != nil {
		dbPath = "$XDG_DATA_HOME/dockyard/" + databaseName
	}
	return []entity.ConfigKeyInfo{
		{
			Key:         "database.path",
			Type:        "string",
			Default:     dbPath,
			Description: "SQLite file holding saved layouts",
			Section:     SectionDatabase,
		},
	}
}

func (*SchemaProvider) getLayoutKeys(defaults *Config) []entity.ConfigKeyInfo {
	l := defaults.Layout
	return []entity.ConfigKeyInfo{
		{
			Key:         "layout.snapshot_interval_ms",
			Type:        "int",
			Default:     fmt.Sprintf("%d", l.SnapshotIntervalMs),
			Description: "Delay before a changed layout is saved (0 uses the default)",
			Range:       fmt.Sprintf("0-%d", maxSnapshotIntervalMs),
			Section:     SectionLayout,
		},
		{
			Key:         "layout.default_min_panel_px",
			Type:        "int",
			Default:     fmt.Sprintf("%d", l.DefaultMinPanelPx),
			Description: "Minimum panel size when a panel declares none",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.floating_offset_px",
			Type:        "int",
			Default:     fmt.Sprintf("%d", l.FloatingOffsetPx),
			Description: "Cascade offset between newly opened floating windows",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.default_floating_width",
			Type:        "int",
			Default:     fmt.Sprintf("%d", l.DefaultFloatingWidth),
			Description: "Width of a floating window when the panel has no default size",
			Section:     SectionLayout,
		},
		{
			Key:         "layout.default_floating_height",
			Type:        "int",
			Default:     fmt.Sprintf("%d", l.DefaultFloatingHeight),
			Description: "Height of a floating window when the panel has no default size",
			Section:     SectionLayout,
		},
	}
}

func (*SchemaProvider) getGestureKeys(defaults *Config) []entity.ConfigKeyInfo {
	l := defaults.Layout
	return []entity.ConfigKeyInfo{
		{
			Key:         "layout.edge_threshold_pct",
			Type:        "float64",
			Default:     fmt.Sprintf("%.2f", l.EdgeThresholdPct),
			Description: "Share of a panel dimension that counts as a drop edge",
			Range:       fmt.Sprintf("0.01-%.1f", maxEdgeThresholdPct),
			Section:     SectionGestures,
		},
		{
			Key:         "layout.edge_threshold_max_px",
			Type:        "int",
			Default:     fmt.Sprintf("%d", l.EdgeThresholdMaxPx),
			Description: "Upper bound of the drop edge size",
			Section:     SectionGestures,
		},
		{
			Key:         "layout.snap_tolerance_px",
			Type:        "int",
			Default:     fmt.Sprintf("%d", l.SnapTolerancePx),
			Description: "Distance under which floating windows snap to edges (0 disables)",
			Section:     SectionGestures,
		},
		{
			Key:         "layout.gesture_policy",
			Type:        "string",
			Default:     string(l.GesturePolicy),
			Description: "What to do when a gesture starts while another is active",
			Values:      []string{string(GesturePolicyIgnore), string(GesturePolicyForceEnd)},
			Section:     SectionGestures,
		},
	}
}
