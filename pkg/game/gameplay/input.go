package gameplay

import (
	"log/slog"

	engineinput "movingsquare/pkg/engine/input"
	"movingsquare/pkg/engine/world"
	"movingsquare/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
// It returns true when the player asked to quit.
//
// Pressing a movement key sets the pending slide direction; releasing any
// movement key clears it. Mode toggles act on press only.
func ProcessIntent(g *state.Game, intent engineinput.Intent) (quit bool) {
	if dir, ok := intent.Action.Direction(); ok {
		if intent.Released {
			g.Pending = world.None
		} else {
			g.Pending = dir
		}
		return false
	}

	if intent.Released {
		return false
	}

	switch intent.Action {
	case engineinput.ActionToggleEdge:
		g.ToggleEdge()
		slog.Debug("edge mode changed", "edge", g.Edge)
	case engineinput.ActionToggleJitter:
		g.ToggleJitter()
		slog.Debug("jitter changed", "jitter", g.Jitter)
	case engineinput.ActionQuit:
		return true
	}
	return false
}

// ProcessInput maps a debounced event through the bindings and applies it.
func ProcessInput(g *state.Game, ev engineinput.DebouncedInput) (quit bool) {
	return ProcessIntent(g, engineinput.MapToIntent(ev))
}
