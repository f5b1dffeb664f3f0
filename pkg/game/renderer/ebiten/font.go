package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// loadHUDFont loads the pixel font used for the status line
func (e *EbitenRenderer) loadHUDFont() error {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return fmt.Errorf("loading HUD font: %w", err)
	}
	e.hudFace = &text.GoTextFace{
		Source: s,
		Size:   hudFontSize,
	}
	return nil
}
