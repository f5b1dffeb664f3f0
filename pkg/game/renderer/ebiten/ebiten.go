package ebiten

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"movingsquare/pkg/game/config"
	"movingsquare/pkg/game/gameplay"
	"movingsquare/pkg/game/i18n"
	"movingsquare/pkg/game/renderer"
	"movingsquare/pkg/game/state"
)

// EbitenRenderer runs the game in a window. It implements both
// renderer.Renderer and ebiten.Game.
type EbitenRenderer struct {
	cfg   config.Config
	style renderer.Style
	game  *state.Game

	hudFace *text.GoTextFace

	// scratch buffers reused every tick
	keys     []ebiten.Key
	gamepads []ebiten.GamepadID

	windowOpenedLogged bool
}

// New creates a new Ebiten renderer
func New(cfg config.Config) *EbitenRenderer {
	style := renderer.DefaultStyle(cfg.BlockSize)
	style.HUD = cfg.HUD
	return &EbitenRenderer{
		cfg:   cfg,
		style: style,
	}
}

// Init sizes and titles the window and sets the update rate
func (e *EbitenRenderer) Init() error {
	w, h := e.cfg.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(i18n.T("WINDOW_TITLE"))
	ebiten.SetTPS(e.cfg.TPS)
	if e.style.HUD {
		return e.loadHUDFont()
	}
	return nil
}

// Run starts the Ebiten game loop and blocks until the window closes
func (e *EbitenRenderer) Run(g *state.Game) error {
	e.game = g
	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update handles input and advances the game by one tick (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		slog.Info("window opened", "width", w, "height", h, "tps", ebiten.TPS())
	}

	for _, ev := range e.pollInput() {
		if gameplay.ProcessInput(e.game, ev) {
			slog.Info("quit requested", "frames", e.game.Frames)
			return ebiten.Termination
		}
	}

	gameplay.Update(e.game)
	return nil
}

// Draw renders the current state (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	renderer.DrawFrame(screenCanvas{dst: screen, face: e.hudFace}, e.game.Snapshot(), e.style)
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.cfg.WindowSize()
}
