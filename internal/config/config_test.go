package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ruminaider/segmenu/internal/config"
	"github.com/ruminaider/segmenu/internal/paths"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("forest", "", "")
	fs.String("flavor", "mocha", "")
	fs.String("log-level", "info", "")
	fs.Bool("mouse", true, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, paths.ForestFile(), cfg.Forest)
	assert.Equal(t, paths.LogFile(), cfg.LogFile)
	assert.Equal(t, "mocha", cfg.Flavor)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Mouse)
	assert.False(t, cfg.Watch)
	assert.Empty(t, cfg.Selected)
	assert.Empty(t, cfg.File)
}

func TestLoad_HomeConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".segmenu"), 0o755))
	require.NoError(t, os.WriteFile(paths.ConfigFile(), []byte("flavor: latte\n"), 0o644))

	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "latte", cfg.Flavor)
	assert.Equal(t, paths.ConfigFile(), cfg.File)
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := writeConfig(t, `forest: /tmp/forest.yaml
selected: p1
flavor: Frappe
mouse: false
watch: true
log_level: debug
widths:
  inbox: 12
  projects: 20
`)
	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/forest.yaml", cfg.Forest)
	assert.Equal(t, "p1", cfg.Selected)
	assert.Equal(t, "frappe", cfg.Flavor)
	assert.False(t, cfg.Mouse)
	assert.True(t, cfg.Watch)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, map[string]int{"inbox": 12, "projects": 20}, cfg.Widths)
	assert.Equal(t, path, cfg.File)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := config.Load(writeConfig(t, "{{{"), nil)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "flavor: latte\nlog_level: warn\n")
	t.Setenv("SEGMENU_FLAVOR", "macchiato")
	t.Setenv("SEGMENU_WATCH", "true")

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "macchiato", cfg.Flavor)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.Watch)
}

func TestLoad_ChangedFlagsOverrideEnv(t *testing.T) {
	path := writeConfig(t, "flavor: latte\nlog_level: warn\n")
	t.Setenv("SEGMENU_LOG_LEVEL", "error")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--log-level", "debug", "--config", path}))

	cfg, err := config.Load(path, fs)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Unchanged flag defaults do not clobber the file.
	assert.Equal(t, "latte", cfg.Flavor)
	assert.True(t, cfg.Mouse)
}

func TestLoad_BoolFlag(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--mouse=false"}))

	cfg, err := config.Load("", fs)
	require.NoError(t, err)
	assert.False(t, cfg.Mouse)
}

func TestValidate(t *testing.T) {
	valid := config.Config{Forest: "f.yaml", Flavor: "mocha", LogLevel: "info"}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name string
		cfg  config.Config
		msg  string
	}{
		{"empty forest", config.Config{Flavor: "mocha", LogLevel: "info"}, "forest"},
		{"bad flavor", config.Config{Forest: "f", Flavor: "solarized", LogLevel: "info"}, "flavor"},
		{"bad level", config.Config{Forest: "f", Flavor: "mocha", LogLevel: "loud"}, "log_level"},
		{"negative width", config.Config{Forest: "f", Flavor: "mocha", LogLevel: "info", Widths: map[string]int{"a": -1}}, "widths"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoad_InvalidValue(t *testing.T) {
	_, err := config.Load(writeConfig(t, "flavor: neon\n"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "flavor")
}
