// Package config holds the runtime configuration for the game: grid size,
// timing, initial modes, backend choice and key binding overrides.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	engineinput "movingsquare/pkg/engine/input"
	"movingsquare/pkg/engine/tick"
	"movingsquare/pkg/engine/world"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Backend names
const (
	BackendEbiten = "ebiten"
	BackendTUI    = "tui"
)

// Config is the full set of tunables. Field tags are the TOML keys.
type Config struct {
	GridWidth  int `toml:"grid_width"`
	GridHeight int `toml:"grid_height"`
	BlockSize  int `toml:"block_size"` // pixels per cell in the window backend

	TickPeriod int `toml:"tick_period"` // update ticks between jitter/slide steps
	TPS        int `toml:"tps"`         // update ticks per second

	Edge   string `toml:"edge"` // "stop" or "wrap"
	Jitter bool   `toml:"jitter"`
	Seed   int64  `toml:"seed"`

	Backend string `toml:"backend"`
	Locale  string `toml:"locale"`
	HUD     bool   `toml:"hud"`

	LogLevel string `toml:"log_level"`
	LogFile  string `toml:"log_file"`

	// HoldTimeout is how long a terminal key counts as held without a repeat.
	// It must exceed the terminal's initial key-repeat delay (660ms on X11).
	HoldTimeout Duration `toml:"hold_timeout"`

	// Bindings maps action keys (e.g. "toggle_edge") to an input code.
	Bindings map[string]string `toml:"bindings"`
}

// Duration is a time.Duration that reads and writes as "750ms" in TOML
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the stock configuration: a 5x5 grid of 100px cells,
// 120 updates per second and a step every 12 updates.
func Default() Config {
	return Config{
		GridWidth:   5,
		GridHeight:  5,
		BlockSize:   100,
		TickPeriod:  tick.DefaultPeriod,
		TPS:         120,
		Edge:        world.EdgeStop.String(),
		Backend:     BackendEbiten,
		Locale:      "en",
		LogLevel:    "info",
		HoldTimeout: Duration{750 * time.Millisecond},
	}
}

// Load reads a TOML file over the defaults. A missing file is not an error
// when optional is true.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Validate checks value ranges and names
func (c Config) Validate() error {
	var errs []error
	if _, err := world.NewGrid(c.GridWidth, c.GridHeight); err != nil {
		errs = append(errs, err)
	}
	if c.BlockSize <= 0 {
		errs = append(errs, fmt.Errorf("block_size must be positive, got %d", c.BlockSize))
	}
	if c.TickPeriod <= 0 {
		errs = append(errs, fmt.Errorf("tick_period must be positive, got %d", c.TickPeriod))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", c.TPS))
	}
	if _, ok := world.ParseEdgeMode(c.Edge); !ok {
		errs = append(errs, fmt.Errorf("edge must be stop or wrap, got %q", c.Edge))
	}
	switch c.Backend {
	case BackendEbiten, BackendTUI:
	default:
		errs = append(errs, fmt.Errorf("unknown backend %q", c.Backend))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log level %q", c.LogLevel))
	}
	if c.HoldTimeout.Duration < 0 {
		errs = append(errs, fmt.Errorf("hold_timeout must not be negative"))
	}
	for _, key := range sortedKeys(c.Bindings) {
		if _, ok := engineinput.ParseAction(key); !ok {
			errs = append(errs, fmt.Errorf("unknown binding action %q", key))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Grid returns the configured grid. Call Validate first.
func (c Config) Grid() world.Grid {
	return world.Grid{Width: c.GridWidth, Height: c.GridHeight}
}

// EdgeMode returns the configured initial edge mode
func (c Config) EdgeMode() world.EdgeMode {
	m, _ := world.ParseEdgeMode(c.Edge)
	return m
}

// WindowSize returns the window size in pixels
func (c Config) WindowSize() (width, height int) {
	return c.GridWidth * c.BlockSize, c.GridHeight * c.BlockSize
}

// ApplyBindings installs the binding overrides into the input tables
func (c Config) ApplyBindings() {
	for _, key := range sortedKeys(c.Bindings) {
		if action, ok := engineinput.ParseAction(key); ok {
			engineinput.SetSingleBinding(action, c.Bindings[key])
		}
	}
}

// Write encodes the config as TOML
func (c Config) Write(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
