// Package ebiten provides an Ebiten-based 2D graphical renderer for the moving square.
package ebiten

import "golang.org/x/image/colornames"

// Palette for text drawn over the white background
var (
	colorHUDText = colornames.Dimgray
)

const (
	hudFontSize = 8.0
)
