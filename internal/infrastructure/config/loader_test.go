package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateXDG points every XDG directory at a temp dir.
func isolateXDG(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return root
}

func TestSetLayoutDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, 500, mgr.viper.GetInt("layout.snapshot_interval_ms"))
	assert.Equal(t, 80, mgr.viper.GetInt("layout.default_min_panel_px"))
	assert.InDelta(t, 0.10, mgr.viper.GetFloat64("layout.edge_threshold_pct"), 1e-9)
	assert.Equal(t, 60, mgr.viper.GetInt("layout.edge_threshold_max_px"))
	assert.Equal(t, 12, mgr.viper.GetInt("layout.snap_tolerance_px"))
	assert.Equal(t, "ignore", mgr.viper.GetString("layout.gesture_policy"))
	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
}

func TestNormalizeConfig_GesturePolicy(t *testing.T) {
	tests := []struct {
		in   GesturePolicy
		want GesturePolicy
	}{
		{in: "", want: GesturePolicyIgnore},
		{in: "IGNORE", want: GesturePolicyIgnore},
		{in: " force_end ", want: GesturePolicyForceEnd},
		{in: "force-end", want: GesturePolicyForceEnd},
		{in: "bogus", want: "bogus"},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Layout.GesturePolicy = tt.in

			normalizeConfig(cfg)

			assert.Equal(t, tt.want, cfg.Layout.GesturePolicy)
		})
	}
}

func TestNormalizeConfig_LegacyTextFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Format = "Text"
	cfg.Logging.Level = " DEBUG"

	normalizeConfig(cfg)

	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "config", appName)

	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.FileExists(t, filepath.Join(dir, "config.toml"))
	assert.FileExists(t, filepath.Join(dir, "config.schema.json"))

	cfg := mgr.Get()
	assert.Equal(t, DefaultConfig().Layout, cfg.Layout)
	assert.Equal(t, filepath.Join(root, "data", appName, databaseName), cfg.Database.Path)
}

func TestManager_LoadReadsFileAndEnv(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "config", appName)
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[layout]
snap_tolerance_px = 4
gesture_policy = "force_end"

[database]
path = "/tmp/layouts.sqlite"
`), filePerm))
	t.Setenv("DOCKYARD_LAYOUT_SNAPSHOT_INTERVAL_MS", "250")
	t.Setenv("DOCKYARD_LOG_LEVEL", "debug")

	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 4, cfg.Layout.SnapTolerancePx)
	assert.Equal(t, GesturePolicyForceEnd, cfg.Layout.GesturePolicy)
	assert.Equal(t, 250, cfg.Layout.SnapshotIntervalMs)
	assert.Equal(t, 80, cfg.Layout.DefaultMinPanelPx)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/layouts.sqlite", cfg.Database.Path)
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "config", appName)
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[layout]
edge_threshold_pct = 2.0
gesture_policy = "queue"
`), filePerm))

	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout.edge_threshold_pct")
	assert.Contains(t, err.Error(), "layout.gesture_policy")
}

func TestManager_ReloadNotifiesAndKeepsPreviousOnError(t *testing.T) {
	root := isolateXDG(t)
	dir := filepath.Join(root, "config", appName)

	mgr, err := NewManagerWithDir(dir)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got []*Config
	mgr.OnConfigChange(func(c *Config) { got = append(got, c) })

	file := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(file, []byte("[layout]\nsnap_tolerance_px = 20\n"), filePerm))
	require.NoError(t, mgr.Reload())
	require.Len(t, got, 1)
	assert.Equal(t, 20, got[0].Layout.SnapTolerancePx)
	assert.Equal(t, 20, mgr.Get().Layout.SnapTolerancePx)

	require.NoError(t, os.WriteFile(file, []byte("[layout]\nsnap_tolerance_px = -1\n"), filePerm))
	require.Error(t, mgr.Reload())
	assert.Len(t, got, 1)
	assert.Equal(t, 20, mgr.Get().Layout.SnapTolerancePx)
}

func TestManager_GetBeforeLoadReturnsDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	assert.Equal(t, DefaultConfig(), mgr.Get())
}
