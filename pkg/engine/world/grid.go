// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import (
	"errors"
	"fmt"
)

// ErrInvalidGrid is returned when a grid would have no cells
var ErrInvalidGrid = errors.New("invalid grid")

// Position is a cell coordinate; X is the column and Y the row
type Position struct {
	X int
	Y int
}

// Add returns p offset by (dx, dy) without any bounds handling
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String returns the position as "x,y"
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Grid describes the bounds of the playing field. Valid cells are
// [0, Width) x [0, Height).
type Grid struct {
	Width  int
	Height int
}

// NewGrid creates a new grid with the given dimensions
func NewGrid(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("%w: %dx%d", ErrInvalidGrid, width, height)
	}
	return Grid{Width: width, Height: height}, nil
}

// Cells returns the number of cells in the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Contains checks if a position is within grid bounds
func (g Grid) Contains(p Position) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Center returns the starting cell used for a fresh game
func (g Grid) Center() Position {
	return Position{X: g.Width / 2, Y: g.Height / 2}
}

// Step moves p by (dx, dy) and resolves the grid edge according to mode.
// Each axis is handled independently against its own size.
func (g Grid) Step(p Position, dx, dy int, mode EdgeMode) Position {
	switch mode {
	case EdgeWrap:
		return Position{
			X: wrap(p.X+dx, g.Width),
			Y: wrap(p.Y+dy, g.Height),
		}
	default:
		return Position{
			X: clamp(p.X+dx, 0, g.Width-1),
			Y: clamp(p.Y+dy, 0, g.Height-1),
		}
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// wrap reduces v into [0, size). size must be positive.
func wrap(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}
