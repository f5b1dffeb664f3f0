// Package renderer turns game state into draw calls. Backends supply a
// Canvas; DrawFrame is the same for all of them.
package renderer

import (
	"image"
	"image/color"

	"golang.org/x/image/colornames"

	"movingsquare/pkg/engine/world"
	"movingsquare/pkg/game/i18n"
	"movingsquare/pkg/game/state"
)

// Canvas is the drawing surface a backend hands to DrawFrame.
// Coordinates are pixels of a GridWidth*BlockSize x GridHeight*BlockSize
// surface; backends with coarser resolution scale them down.
type Canvas interface {
	Fill(c color.Color)
	StrokeRect(r image.Rectangle, width float32, c color.Color)
	Label(text string, x, y int)
}

// Style controls the look of a frame
type Style struct {
	BlockSize   int
	Background  color.Color
	Square      color.Color
	StrokeWidth float32
	HUD         bool
}

// DefaultStyle is a red outline on white, ten pixels thick
func DefaultStyle(blockSize int) Style {
	return Style{
		BlockSize:   blockSize,
		Background:  colornames.White,
		Square:      colornames.Red,
		StrokeWidth: 10,
	}
}

// CellRect returns the pixel rectangle of a grid cell
func CellRect(p world.Position, blockSize int) image.Rectangle {
	x, y := p.X*blockSize, p.Y*blockSize
	return image.Rect(x, y, x+blockSize, y+blockSize)
}

// DrawFrame draws one frame: the background, the square's outline and,
// if enabled, the status line. It never modifies game state.
func DrawFrame(c Canvas, s state.Snapshot, st Style) {
	c.Fill(st.Background)
	c.StrokeRect(CellRect(s.Pos, st.BlockSize), st.StrokeWidth, st.Square)
	if st.HUD {
		c.Label(StatusLine(s), 4, 4)
	}
}

// StatusLine describes the current modes in the active locale
func StatusLine(s state.Snapshot) string {
	edge := i18n.T("EDGE_STOP")
	if s.Edge == world.EdgeWrap {
		edge = i18n.T("EDGE_WRAP")
	}
	jitter := i18n.T("OFF")
	if s.Jitter {
		jitter = i18n.T("ON")
	}
	return i18n.T("HUD_STATUS", edge, jitter)
}
