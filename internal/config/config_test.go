package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg Config
	require.NoError(t, yaml.Unmarshal(defaultYAML, &cfg))
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	dir := t.TempDir()
	cfg, err := load("", filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadCustomPathOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", "timing:\n  base_fall_ms: 800\nscores:\n  backend: sqlite\n")

	cfg, err := load(path)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Timing.BaseFallMS)
	assert.Equal(t, BackendSQLite, cfg.Scores.Backend)
	assert.Equal(t, 20, cfg.Timing.FPS, "unset values keep their defaults")
	assert.Equal(t, 800*time.Millisecond, cfg.FallBase())
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := load(filepath.Join(dir, "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := writeFile(t, dir, "bad.yaml", "timing: [")
	_, err = load(bad)
	assert.Error(t, err)

	invalid := writeFile(t, dir, "invalid.yaml", "timing:\n  fps: 0\n")
	_, err = load(invalid)
	assert.ErrorContains(t, err, "timing.fps")
}

func TestLoadSearchOrder(t *testing.T) {
	dir := t.TempDir()
	user := writeFile(t, dir, "user.yaml", "timing:\n  fps: 30\n")
	local := writeFile(t, dir, "local.yaml", "timing:\n  fps: 40\n")

	cfg, err := load("", user, local)
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.Timing.FPS)

	cfg, err = load("", filepath.Join(dir, "missing.yaml"), local)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Timing.FPS)
}

func TestLoadSkipsBrokenImplicitFiles(t *testing.T) {
	dir := t.TempDir()
	broken := writeFile(t, dir, "broken.yaml", "scores:\n  backend: redis\n")
	local := writeFile(t, dir, "local.yaml", "timing:\n  fps: 40\n")

	cfg, err := load("", broken, local)
	require.NoError(t, err)
	assert.Equal(t, 40, cfg.Timing.FPS)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"fps too high", func(c *Config) { c.Timing.FPS = 500 }, "timing.fps"},
		{"fall too fast", func(c *Config) { c.Timing.BaseFallMS = 10 }, "base_fall_ms"},
		{"unknown backend", func(c *Config) { c.Scores.Backend = "csv" }, "scores.backend"},
		{"wide block", func(c *Config) { c.Theme.Block = "###" }, "theme.block"},
		{"narrow empty", func(c *Config) { c.Theme.Empty = "." }, "theme.empty"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestRuntime(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timing.FPS = 30
	cfg.Timing.BaseFallMS = 600

	rc := cfg.Runtime(42, 100, 40)
	assert.Equal(t, int64(42), rc.Seed)
	assert.Equal(t, 30, rc.TickRate)
	assert.Equal(t, 600*time.Millisecond, rc.FallBase)
	assert.Equal(t, 100, rc.ScreenW)
	assert.Equal(t, 40, rc.ScreenH)

	rc = cfg.Runtime(1, 0, 0)
	assert.Equal(t, 80, rc.ScreenW)
}

func TestScorePath(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "tetris_highscore.txt", cfg.ScorePath())

	cfg.Scores.Path = "/tmp/best.txt"
	assert.Equal(t, "/tmp/best.txt", cfg.ScorePath())

	cfg.Scores = Scores{Backend: BackendSQLite}
	assert.Equal(t, ".db", filepath.Ext(cfg.ScorePath()))
}

func TestLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, log.InfoLevel, cfg.LogLevel())

	cfg.Log.Level = "debug"
	assert.Equal(t, log.DebugLevel, cfg.LogLevel())
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timing.FPS = 25

	data, err := cfg.Marshal()
	require.NoError(t, err)

	got, err := parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
