package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/twistycube"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "twistycube.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Cube.Order)
	assert.Equal(t, 25, cfg.Cube.ShuffleLength)
	assert.Equal(t, 250*time.Millisecond, cfg.Play.TickInterval)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "scripts", cfg.Scripts.Dir)

	p, err := cfg.Palette()
	require.NoError(t, err)
	assert.Equal(t, twistycube.DefaultPalette, p)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
cube:
  order: 5
  seed: 42
  palette:
    front: blue
    back: green
play:
  tick_interval: 100ms
logging:
  format: json
scripts:
  solver: true
`)
	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Cube.Order)
	assert.Equal(t, uint64(42), cfg.Cube.Seed)
	assert.Equal(t, 100*time.Millisecond, cfg.Play.TickInterval)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.Scripts.Solver)

	p, err := cfg.Palette()
	require.NoError(t, err)
	assert.Equal(t, twistycube.Blue, p[twistycube.Front])
	assert.Equal(t, twistycube.Green, p[twistycube.Back])
	assert.Equal(t, twistycube.White, p[twistycube.Up])

	opts, err := cfg.CubeOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 2)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TWISTYCUBE_CUBE_ORDER", "4")
	t.Setenv("TWISTYCUBE_LOGGING_LEVEL", "debug")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Cube.Order)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_FlagsWin(t *testing.T) {
	path := writeConfig(t, "cube:\n  order: 5\n")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("order", 3, "")
	flags.Uint64("seed", 0, "")
	flags.Bool("log-json", false, "")
	flags.Duration("tick", time.Second, "")
	require.NoError(t, flags.Parse([]string{"--order=7", "--log-json", "--tick=50ms"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Cube.Order)
	assert.Equal(t, uint64(0), cfg.Cube.Seed, "unchanged flags do not override")
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 50*time.Millisecond, cfg.Play.TickInterval)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"order", "cube:\n  order: 0\n"},
		{"format", "logging:\n  format: xml\n"},
		{"palette color", "cube:\n  palette:\n    front: purple\n"},
		{"palette face", "cube:\n  palette:\n    top: white\n"},
		{"palette duplicate", "cube:\n  palette:\n    front: white\n"},
		{"tick", "play:\n  tick_interval: 0s\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), nil)
			assert.Error(t, err)
		})
	}
}
