// Package gameplay provides core game logic for square movement.
package gameplay

import (
	"movingsquare/pkg/engine/world"
	"movingsquare/pkg/game/state"
)

// Move shifts the square by (dx, dy), stopping or wrapping at the border
// according to the current edge mode.
func Move(g *state.Game, dx, dy int) {
	g.Pos = g.Grid.Step(g.Pos, dx, dy, g.Edge)
}

// Jitter moves the square one cell in a uniformly random direction when
// jittering is enabled.
func Jitter(g *state.Game) {
	if !g.Jitter {
		return
	}
	dirs := world.AllDirections()
	dx, dy := dirs[g.Rand.Intn(len(dirs))].Delta()
	Move(g, dx, dy)
}

// Slide moves the square one cell in the pending direction, if any.
func Slide(g *state.Game) {
	if g.Pending == world.None {
		return
	}
	dx, dy := g.Pending.Delta()
	Move(g, dx, dy)
}

// Update advances the game by one tick. The jitter counter is checked
// before the slide counter, so on a shared tick jitter applies first.
func Update(g *state.Game) {
	g.Frames++
	if g.JitterTick.Advance() {
		Jitter(g)
	}
	if g.SlideTick.Advance() {
		Slide(g)
	}
}
