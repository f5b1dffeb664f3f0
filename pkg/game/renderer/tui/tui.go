// Package tui runs the game in a terminal: raw-mode keyboard input and the
// grid drawn with box characters.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gookit/color"

	engineinput "movingsquare/pkg/engine/input"
	"movingsquare/pkg/engine/terminal"
	"movingsquare/pkg/game/config"
	"movingsquare/pkg/game/gameplay"
	"movingsquare/pkg/game/i18n"
	"movingsquare/pkg/game/renderer"
	"movingsquare/pkg/game/state"
)

// Characters per grid cell. Terminal cells are roughly twice as tall as
// they are wide, so 4x2 looks square.
const (
	cellCols = 4
	cellRows = 2
)

// ErrTerminalTooSmall is returned by Init when the grid does not fit
var ErrTerminalTooSmall = errors.New("terminal too small")

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	cfg   config.Config
	style renderer.Style

	in  io.Reader
	out io.Writer

	colorBackground color.Style
	colorSquare     color.Style

	canvas    *cellCanvas
	debouncer *engineinput.Debouncer
	restore   func()

	// sizeFn reports the terminal size; replaced in tests
	sizeFn func() (int, int)
}

// New creates a new TUI renderer reading stdin and writing stdout
func New(cfg config.Config) *TUIRenderer {
	style := renderer.DefaultStyle(cfg.BlockSize)
	style.HUD = cfg.HUD
	return &TUIRenderer{
		cfg:       cfg,
		style:     style,
		in:        os.Stdin,
		out:       os.Stdout,
		debouncer: engineinput.NewDebouncer(cfg.HoldTimeout.Duration),
		sizeFn:    terminal.GetSize,
	}
}

// Init checks the terminal size, sets up colours and enters raw mode
func (t *TUIRenderer) Init() error {
	if err := t.checkSize(); err != nil {
		return err
	}

	t.colorBackground = color.Style{color.FgBlack, color.BgWhite}
	t.colorSquare = color.Style{color.FgRed, color.BgWhite, color.OpBold}
	t.canvas = t.newCanvas()

	restore, err := terminal.EnterRaw()
	if err != nil {
		return err
	}
	t.restore = restore
	// Clear the screen and hide the cursor
	fmt.Fprint(t.out, "\x1b[2J\x1b[?25l")
	return nil
}

func (t *TUIRenderer) newCanvas() *cellCanvas {
	return newCellCanvas(
		t.cfg.GridWidth*cellCols, t.cfg.GridHeight*cellRows,
		t.cfg.BlockSize, cellCols, cellRows,
		t.colorBackground, t.colorSquare,
	)
}

func (t *TUIRenderer) checkSize() error {
	needW, needH := t.cfg.GridWidth*cellCols, t.cfg.GridHeight*cellRows+1
	w, h := t.sizeFn()
	if w < needW || h < needH {
		return fmt.Errorf("%w: %s", ErrTerminalTooSmall, i18n.T("TERMINAL_TOO_SMALL", w, h, needW, needH))
	}
	return nil
}

// Run reads keys and ticks the game at the configured rate until quit
func (t *TUIRenderer) Run(g *state.Game) error {
	defer t.shutdown()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	keys := make(chan engineinput.RawInput, 32)
	go func() {
		if err := engineinput.ReadTerminal(ctx, t.in, keys); err != nil && !errors.Is(err, context.Canceled) {
			slog.Warn("terminal input stopped", "err", err)
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(t.cfg.TPS))
	defer ticker.Stop()
	return t.loop(g, keys, ticker.C)
}

// loop is the event loop proper. It returns when the player quits or the
// key channel closes.
func (t *TUIRenderer) loop(g *state.Game, keys <-chan engineinput.RawInput, ticks <-chan time.Time) error {
	var (
		last  state.Snapshot
		drawn bool
	)
	for {
		select {
		case raw, ok := <-keys:
			if !ok {
				return nil
			}
			ev, ok := t.debouncer.Feed(raw)
			if !ok {
				continue
			}
			// A new key means any previously held key was let go already.
			for _, rel := range t.debouncer.DropExcept(ev.Code) {
				gameplay.ProcessInput(g, rel)
			}
			intent := engineinput.MapToIntent(ev)
			if gameplay.ProcessIntent(g, intent) {
				slog.Info("quit requested", "frames", g.Frames)
				return nil
			}
			if _, moving := intent.Action.Direction(); !moving {
				// Only movement keys are held; release everything else at once
				// so a quick second press is not taken for auto-repeat.
				t.debouncer.Feed(engineinput.RawInput{Device: raw.Device, Code: raw.Code, Edge: engineinput.EdgeRelease, Timestamp: raw.Timestamp})
			}
		case now := <-ticks:
			for _, ev := range t.debouncer.Expire(now) {
				gameplay.ProcessInput(g, ev)
			}
			gameplay.Update(g)

			snap := g.Snapshot()
			snap.Frames = 0
			if drawn && snap == last {
				continue
			}
			last, drawn = snap, true
			if err := t.draw(g); err != nil {
				return err
			}
		}
	}
}

func (t *TUIRenderer) draw(g *state.Game) error {
	renderer.DrawFrame(t.canvas, g.Snapshot(), t.style)
	return t.canvas.Render(t.out)
}

func (t *TUIRenderer) shutdown() {
	// Show the cursor again and move below the grid
	fmt.Fprint(t.out, "\x1b[?25h\r\n")
	if t.restore != nil {
		t.restore()
	}
}
