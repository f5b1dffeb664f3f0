package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engineinput "movingsquare/pkg/engine/input"
	"movingsquare/pkg/game/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movingsquare.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// dump runs with -dump-config and loads the printed TOML back
func dump(t *testing.T, args ...string) config.Config {
	t.Helper()
	t.Cleanup(engineinput.ResetBindings)
	var out bytes.Buffer
	require.NoError(t, run(append(args, "-dump-config"), &out))
	cfg, err := config.Load(writeConfig(t, out.String()), false)
	require.NoError(t, err)
	return cfg
}

func TestRun_FileValuesSurviveUnsetFlags(t *testing.T) {
	path := writeConfig(t, `
grid_width = 7
edge = "wrap"
jitter = true
tps = 60
`)
	cfg := dump(t, "-config", path)
	assert.Equal(t, 7, cfg.GridWidth)
	assert.Equal(t, "wrap", cfg.Edge)
	assert.True(t, cfg.Jitter)
	assert.Equal(t, 60, cfg.TPS)
	assert.Equal(t, 5, cfg.GridHeight)
}

func TestRun_GivenFlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `
grid_width = 7
edge = "wrap"
jitter = true
`)
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg config.Config)
	}{
		{"wrap false", []string{"-wrap=false"}, func(t *testing.T, cfg config.Config) {
			assert.Equal(t, "stop", cfg.Edge)
		}},
		{"jitter false", []string{"-jitter=false"}, func(t *testing.T, cfg config.Config) {
			assert.False(t, cfg.Jitter)
		}},
		{"width", []string{"-width", "9"}, func(t *testing.T, cfg config.Config) {
			assert.Equal(t, 9, cfg.GridWidth)
			assert.Equal(t, "wrap", cfg.Edge)
		}},
		{"backend and seed", []string{"-backend", "tui", "-seed", "42"}, func(t *testing.T, cfg config.Config) {
			assert.Equal(t, config.BackendTUI, cfg.Backend)
			assert.Equal(t, int64(42), cfg.Seed)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, dump(t, append([]string{"-config", path}, tt.args...)...))
		})
	}
}

func TestRun_DefaultConfigPathIsOptional(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	cfg := dump(t)
	assert.Equal(t, config.Default().GridWidth, cfg.GridWidth)
}

func TestRun_MissingExplicitConfig(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-config", filepath.Join(t.TempDir(), "nope.toml"), "-dump-config"}, &out)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, out.String())
}

func TestRun_InvalidFlagValue(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-backend", "sdl", "-dump-config"}, &out)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestRun_HelpExitsCleanly(t *testing.T) {
	var out bytes.Buffer
	assert.NoError(t, run([]string{"-h"}, &out))
}

func TestRun_Keys(t *testing.T) {
	t.Cleanup(engineinput.ResetBindings)
	path := writeConfig(t, `
log_file = "`+filepath.ToSlash(filepath.Join(t.TempDir(), "run.log"))+`"

[bindings]
toggle_jitter = "x"
`)
	var out bytes.Buffer
	require.NoError(t, run([]string{"-config", path, "-keys"}, &out))
	assert.Contains(t, out.String(), "Toggle Jitter")
	assert.Contains(t, out.String(), "x")
}
