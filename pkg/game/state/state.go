// Package state holds the mutable game state shared by gameplay and renderers.
package state

import (
	"math/rand"
	"time"

	"movingsquare/pkg/engine/tick"
	"movingsquare/pkg/engine/world"
)

// Options configures a new game
type Options struct {
	Grid       world.Grid
	Edge       world.EdgeMode
	Jitter     bool
	TickPeriod int
	Seed       int64 // 0 picks a time-based seed
}

// Game represents the state of the moving square
type Game struct {
	Pos  world.Position
	Grid world.Grid

	Edge    world.EdgeMode  // stop or wrap at the grid border
	Jitter  bool            // random unit step every jitter tick
	Pending world.Direction // slide direction for the next slide tick; None means stay

	JitterTick *tick.Counter
	SlideTick  *tick.Counter

	Frames int // update ticks processed

	Rand *rand.Rand
}

// NewGame creates a new game with the square in the centre of the grid
func NewGame(opts Options) *Game {
	period := opts.TickPeriod
	if period == 0 {
		period = tick.DefaultPeriod
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Game{
		Pos:        opts.Grid.Center(),
		Grid:       opts.Grid,
		Edge:       opts.Edge,
		Jitter:     opts.Jitter,
		Pending:    world.None,
		JitterTick: tick.NewCounter(period),
		SlideTick:  tick.NewCounter(period),
		Rand:       rand.New(rand.NewSource(seed)),
	}
}

// ToggleEdge flips between stopping and wrapping at the border
func (g *Game) ToggleEdge() {
	g.Edge = g.Edge.Toggle()
}

// ToggleJitter starts or stops jittering
func (g *Game) ToggleJitter() {
	g.Jitter = !g.Jitter
}

// Snapshot is a copy of the fields a renderer needs for one frame
type Snapshot struct {
	Pos     world.Position
	Grid    world.Grid
	Edge    world.EdgeMode
	Jitter  bool
	Pending world.Direction
	Frames  int
}

// Snapshot copies the render-relevant state
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Pos:     g.Pos,
		Grid:    g.Grid,
		Edge:    g.Edge,
		Jitter:  g.Jitter,
		Pending: g.Pending,
		Frames:  g.Frames,
	}
}
