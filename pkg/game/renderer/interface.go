package renderer

import (
	"errors"

	"movingsquare/pkg/game/state"
)

// ErrNoRenderer is returned by Run when no backend has been selected
var ErrNoRenderer = errors.New("no renderer selected")

// Renderer defines the interface for game rendering backends.
// A backend owns the event loop: it delivers press/release events to the
// gameplay package, calls the per-tick update and draws frames until the
// player quits.
type Renderer interface {
	// Init prepares the backend (window, terminal mode, etc.)
	Init() error

	// Run drives the event loop until quit, returning nil on a normal exit
	Run(g *state.Game) error
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Run initializes and runs the current renderer
func Run(g *state.Game) error {
	if Current == nil {
		return ErrNoRenderer
	}
	if err := Current.Init(); err != nil {
		return err
	}
	return Current.Run(g)
}
