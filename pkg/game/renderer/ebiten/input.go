package ebiten

import (
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "movingsquare/pkg/engine/input"
)

// keyCodes names the non-letter keys the bindings refer to
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:    "arrow_up",
	ebiten.KeyArrowDown:  "arrow_down",
	ebiten.KeyArrowLeft:  "arrow_left",
	ebiten.KeyArrowRight: "arrow_right",
	ebiten.KeyEscape:     "escape",
	ebiten.KeyEnter:      "enter",
	ebiten.KeySpace:      "space",
	ebiten.KeyBackspace:  "backspace",
}

// gamepadCodes maps standard-layout buttons to binding codes
var gamepadCodes = []struct {
	button ebiten.StandardGamepadButton
	code   string
}{
	{ebiten.StandardGamepadButtonLeftTop, "gamepad_dpad_up"},
	{ebiten.StandardGamepadButtonLeftBottom, "gamepad_dpad_down"},
	{ebiten.StandardGamepadButtonLeftLeft, "gamepad_dpad_left"},
	{ebiten.StandardGamepadButtonLeftRight, "gamepad_dpad_right"},
	{ebiten.StandardGamepadButtonRightLeft, "gamepad_x"},
	{ebiten.StandardGamepadButtonRightTop, "gamepad_y"},
	{ebiten.StandardGamepadButtonRightRight, "gamepad_b"},
}

// keyCode converts an Ebiten key to a binding code. Letters and digits map
// to their lowercase character; unknown keys map to "".
func keyCode(k ebiten.Key) string {
	if code, ok := keyCodes[k]; ok {
		return code
	}
	name := k.String()
	if len(name) == 1 {
		return strings.ToLower(name)
	}
	if strings.HasPrefix(name, "Digit") && len(name) == len("Digit")+1 {
		return name[len("Digit"):]
	}
	return ""
}

// pollInput collects this tick's key and button edges, presses first.
// Ebiten reports clean edges, so no debouncing is needed.
func (e *EbitenRenderer) pollInput() []engineinput.DebouncedInput {
	now := time.Now()
	var evs []engineinput.DebouncedInput
	add := func(dev engineinput.Device, code string, edge engineinput.Edge) {
		if code == "" {
			return
		}
		evs = append(evs, engineinput.NewDebouncedInput(engineinput.RawInput{
			Device:    dev,
			Code:      code,
			Edge:      edge,
			Timestamp: now,
		}))
	}

	e.keys = inpututil.AppendJustPressedKeys(e.keys[:0])
	for _, k := range e.keys {
		add(engineinput.DeviceKeyboard, keyCode(k), engineinput.EdgePress)
	}
	e.keys = inpututil.AppendJustReleasedKeys(e.keys[:0])
	for _, k := range e.keys {
		add(engineinput.DeviceKeyboard, keyCode(k), engineinput.EdgeRelease)
	}

	e.gamepads = ebiten.AppendGamepadIDs(e.gamepads[:0])
	for _, id := range e.gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range gamepadCodes {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b.button) {
				add(engineinput.DeviceGamepad, b.code, engineinput.EdgePress)
			}
			if inpututil.IsStandardGamepadButtonJustReleased(id, b.button) {
				add(engineinput.DeviceGamepad, b.code, engineinput.EdgeRelease)
			}
		}
	}
	return evs
}
