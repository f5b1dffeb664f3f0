package tui

import (
	"image"
	"image/color"
	"io"
	"strings"

	gcolor "github.com/gookit/color"
)

// cell is one character on screen
type cell struct {
	ch    rune
	style gcolor.Style
}

// cellCanvas implements renderer.Canvas on a character buffer. Pixel
// coordinates are scaled so that one grid block covers cellCols x cellRows
// characters.
type cellCanvas struct {
	blockSize int
	cellCols  int
	cellRows  int

	background gcolor.Style
	square     gcolor.Style

	cells [][]cell
	label string
}

func newCellCanvas(cols, rows, blockSize, cellCols, cellRows int, background, square gcolor.Style) *cellCanvas {
	cells := make([][]cell, rows)
	for i := range cells {
		cells[i] = make([]cell, cols)
	}
	return &cellCanvas{
		blockSize:  blockSize,
		cellCols:   cellCols,
		cellRows:   cellRows,
		background: background,
		square:     square,
		cells:      cells,
	}
}

// Fill clears every character to the background style. The colour
// argument is ignored; the terminal palette is fixed at Init.
func (c *cellCanvas) Fill(color.Color) {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = cell{ch: ' ', style: c.background}
		}
	}
	c.label = ""
}

// StrokeRect draws a box outline around the character rectangle covering r
func (c *cellCanvas) StrokeRect(r image.Rectangle, _ float32, _ color.Color) {
	x0, y0 := c.toChar(r.Min.X, r.Min.Y)
	x1, y1 := c.toChar(r.Max.X, r.Max.Y)
	x1--
	y1--
	if x1 < x0 || y1 < y0 {
		return
	}
	for x := x0; x <= x1; x++ {
		c.set(x, y0, '─')
		c.set(x, y1, '─')
	}
	for y := y0; y <= y1; y++ {
		c.set(x0, y, '│')
		c.set(x1, y, '│')
	}
	c.set(x0, y0, '┌')
	c.set(x1, y0, '┐')
	c.set(x0, y1, '└')
	c.set(x1, y1, '┘')
}

// Label keeps the text for the status line printed under the grid
func (c *cellCanvas) Label(text string, _, _ int) {
	c.label = text
}

func (c *cellCanvas) toChar(px, py int) (int, int) {
	return px * c.cellCols / c.blockSize, py * c.cellRows / c.blockSize
}

func (c *cellCanvas) set(x, y int, ch rune) {
	if y < 0 || y >= len(c.cells) || x < 0 || x >= len(c.cells[y]) {
		return
	}
	c.cells[y][x] = cell{ch: ch, style: c.square}
}

// Render writes the frame starting at the top-left corner. Lines end in
// "\r\n" because the terminal is in raw mode.
func (c *cellCanvas) Render(w io.Writer) error {
	var b strings.Builder
	b.WriteString("\x1b[H")
	for _, row := range c.cells {
		writeRuns(&b, row)
		b.WriteString("\x1b[K\r\n")
	}
	b.WriteString(c.label)
	b.WriteString("\x1b[K\r\n")
	_, err := io.WriteString(w, b.String())
	return err
}

// writeRuns emits consecutive cells sharing a style as one styled string
func writeRuns(b *strings.Builder, row []cell) {
	start := 0
	for i := 1; i <= len(row); i++ {
		if i < len(row) && sameStyle(row[i].style, row[start].style) {
			continue
		}
		var run strings.Builder
		for _, c := range row[start:i] {
			run.WriteRune(c.ch)
		}
		b.WriteString(row[start].style.Sprint(run.String()))
		start = i
	}
}

func sameStyle(a, b gcolor.Style) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
