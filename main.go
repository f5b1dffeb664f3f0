package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"movingsquare/pkg/engine/terminal"
	"movingsquare/pkg/game/config"
	"movingsquare/pkg/game/i18n"
	"movingsquare/pkg/game/logging"
	"movingsquare/pkg/game/menu"
	"movingsquare/pkg/game/renderer"
	ebitenrenderer "movingsquare/pkg/game/renderer/ebiten"
	"movingsquare/pkg/game/renderer/tui"
	"movingsquare/pkg/game/state"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("moving square failed", "err", err)
		os.Exit(1)
	}
}

// run is main without the exit, writing command output to stdout
func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("movingsquare", flag.ContinueOnError)
	configPath := fs.String("config", "movingsquare.toml", "path to a TOML config file")
	backend := fs.String("backend", "", "renderer: ebiten or tui")
	width := fs.Int("width", 0, "grid width in cells")
	height := fs.Int("height", 0, "grid height in cells")
	block := fs.Int("block", 0, "cell size in pixels (ebiten)")
	tps := fs.Int("tps", 0, "update ticks per second")
	period := fs.Int("period", 0, "ticks between jitter/slide steps")
	wrap := fs.Bool("wrap", false, "start with edge wrapping on")
	jitter := fs.Bool("jitter", false, "start with jitter on")
	seed := fs.Int64("seed", 0, "random seed for jitter (0 = time based)")
	hud := fs.Bool("hud", false, "show the mode status line")
	locale := fs.String("locale", "", "message locale (en, de)")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")
	logFile := fs.String("log-file", "", "write logs to this file")
	dumpConfig := fs.Bool("dump-config", false, "print the effective config as TOML and exit")
	listKeys := fs.Bool("keys", false, "print the key bindings and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	// The default config path is optional; an explicit one must exist.
	explicit := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})
	cfg, err := config.Load(*configPath, !explicit)
	if err != nil {
		return err
	}

	// Flags override the file only when given
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "backend":
			cfg.Backend = *backend
		case "width":
			cfg.GridWidth = *width
		case "height":
			cfg.GridHeight = *height
		case "block":
			cfg.BlockSize = *block
		case "tps":
			cfg.TPS = *tps
		case "period":
			cfg.TickPeriod = *period
		case "wrap":
			if *wrap {
				cfg.Edge = "wrap"
			} else {
				cfg.Edge = "stop"
			}
		case "jitter":
			cfg.Jitter = *jitter
		case "seed":
			cfg.Seed = *seed
		case "hud":
			cfg.HUD = *hud
		case "locale":
			cfg.Locale = *locale
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-file":
			cfg.LogFile = *logFile
		}
	})

	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.ApplyBindings()

	if *dumpConfig {
		return cfg.Write(stdout)
	}

	// Logs on stderr would be drawn over the terminal grid
	var fallback io.Writer
	if cfg.Backend == config.BackendTUI {
		fallback = io.Discard
	}
	closer, err := logging.Setup(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile, Fallback: fallback})
	if err != nil {
		return err
	}
	defer closer.Close()

	if err := i18n.Init(cfg.Locale); err != nil {
		slog.Warn("locale not available, using en", "locale", cfg.Locale, "err", err)
	}

	if *listKeys {
		return menu.PrintBindings(stdout)
	}

	g := state.NewGame(state.Options{
		Grid:       cfg.Grid(),
		Edge:       cfg.EdgeMode(),
		Jitter:     cfg.Jitter,
		TickPeriod: cfg.TickPeriod,
		Seed:       cfg.Seed,
	})

	switch cfg.Backend {
	case config.BackendTUI:
		if !terminal.IsTerminal() {
			return fmt.Errorf("tui backend: %w", terminal.ErrNotATerminal)
		}
		renderer.SetRenderer(tui.New(cfg))
	default:
		renderer.SetRenderer(ebitenrenderer.New(cfg))
	}

	slog.Info("starting", "backend", cfg.Backend, "grid", fmt.Sprintf("%dx%d", cfg.GridWidth, cfg.GridHeight), "edge", g.Edge, "jitter", g.Jitter, "locale", i18n.Locale())
	if err := renderer.Run(g); err != nil {
		return err
	}
	if cfg.Backend == config.BackendTUI {
		fmt.Fprintln(stdout, i18n.T("GOODBYE"))
	}
	return nil
}
