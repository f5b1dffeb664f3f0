package ebiten

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenCanvas adapts an *ebiten.Image to renderer.Canvas
type screenCanvas struct {
	dst  *ebiten.Image
	face *text.GoTextFace
}

func (c screenCanvas) Fill(col color.Color) {
	c.dst.Fill(col)
}

// StrokeRect draws the outline inset by half the stroke width so it stays
// inside the cell.
func (c screenCanvas) StrokeRect(r image.Rectangle, width float32, col color.Color) {
	inset := width / 2
	vector.StrokeRect(c.dst,
		float32(r.Min.X)+inset, float32(r.Min.Y)+inset,
		float32(r.Dx())-width, float32(r.Dy())-width,
		width, col, true)
}

func (c screenCanvas) Label(str string, x, y int) {
	if c.face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(colorHUDText)
	op.LineSpacing = hudFontSize
	text.Draw(c.dst, str, c.face, op)
}
