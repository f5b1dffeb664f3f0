package ebiten

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	engineinput "movingsquare/pkg/engine/input"
)

func TestKeyCode(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want string
	}{
		{ebiten.KeyArrowUp, "arrow_up"},
		{ebiten.KeyArrowRight, "arrow_right"},
		{ebiten.KeyEscape, "escape"},
		{ebiten.KeyW, "w"},
		{ebiten.KeyJ, "j"},
		{ebiten.KeyDigit3, "3"},
		{ebiten.KeyF1, ""},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, keyCode(tt.key))
		})
	}
}

func TestKeyCode_DefaultBindingsReachable(t *testing.T) {
	engineinput.ResetBindings()
	for _, k := range []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyArrowLeft, ebiten.KeyArrowRight, ebiten.KeyW, ebiten.KeyJ, ebiten.KeyEscape} {
		intent := engineinput.MapToIntent(engineinput.DebouncedInput{Code: keyCode(k)})
		assert.NotEqual(t, engineinput.ActionNone, intent.Action, "key %v", k)
	}
}
