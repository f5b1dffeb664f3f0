package input

import (
	"sort"
	"time"

	"github.com/zyedidia/generic/mapset"

	"movingsquare/pkg/engine/world"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

// Edge says whether a raw event is a key going down or coming up.
type Edge int

const (
	EdgePress Edge = iota
	EdgeRelease
)

// String returns "press" or "release"
func (e Edge) String() string {
	if e == EdgeRelease {
		return "release"
	}
	return "press"
}

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight

	// Mode switches
	ActionToggleEdge
	ActionToggleJitter

	// Meta
	ActionQuit
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
// Released is set when the intent comes from a key being let go.
type Intent struct {
	Action   Action
	Released bool
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑agnostic identifier (e.g. "arrow_up", "w", "gamepad_dpad_up").
type RawInput struct {
	Device    Device
	Code      string
	Edge      Edge
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// See Debouncer.
type DebouncedInput struct {
	Device Device
	Code   string
	Edge   Edge
}

// NewDebouncedInput converts a raw event to a debounced event without any
// filtering. Backends that deliver clean edges (Ebiten) use this directly.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
		Edge:   raw.Edge,
	}
}

// Codes that always stay bound to movement and cannot be rebound away.
var reservedCodes = func() mapset.Set[string] {
	s := mapset.New[string]()
	for _, c := range []string{"arrow_up", "arrow_down", "arrow_left", "arrow_right"} {
		s.Put(c)
	}
	return s
}()

// defaultBindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
func defaultBindings() map[string]Action {
	return map[string]Action{
		// Movement
		"arrow_up":    ActionMoveUp,
		"arrow_down":  ActionMoveDown,
		"arrow_left":  ActionMoveLeft,
		"arrow_right": ActionMoveRight,

		// Mode switches
		"w": ActionToggleEdge,
		"j": ActionToggleJitter,

		// Quit
		"escape": ActionQuit,
		"q":      ActionQuit,
		"ctrl_c": ActionQuit,

		// Controller/gamepad specific bindings
		"gamepad_dpad_up":    ActionMoveUp,
		"gamepad_dpad_down":  ActionMoveDown,
		"gamepad_dpad_left":  ActionMoveLeft,
		"gamepad_dpad_right": ActionMoveRight,
		"gamepad_x":          ActionToggleEdge,
		"gamepad_y":          ActionToggleJitter,
		"gamepad_b":          ActionQuit,
	}
}

var bindings = defaultBindings()

// ResetBindings restores the built-in binding table.
func ResetBindings() {
	bindings = defaultBindings()
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act, Released: ev.Edge == EdgeRelease}
	}
	return Intent{Action: ActionNone}
}

// Direction returns the movement direction for a movement action.
func (a Action) Direction() (world.Direction, bool) {
	switch a {
	case ActionMoveUp:
		return world.Up, true
	case ActionMoveDown:
		return world.Down, true
	case ActionMoveLeft:
		return world.Left, true
	case ActionMoveRight:
		return world.Right, true
	default:
		return world.None, false
	}
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveUp:
		return "Move Up"
	case ActionMoveDown:
		return "Move Down"
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionToggleEdge:
		return "Toggle Edge Wrap"
	case ActionToggleJitter:
		return "Toggle Jitter"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// actionKeys are the names used for actions in configuration files.
var actionKeys = map[string]Action{
	"move_up":       ActionMoveUp,
	"move_down":     ActionMoveDown,
	"move_left":     ActionMoveLeft,
	"move_right":    ActionMoveRight,
	"toggle_edge":   ActionToggleEdge,
	"toggle_jitter": ActionToggleJitter,
	"quit":          ActionQuit,
}

// ParseAction looks up an action by its configuration key (e.g. "toggle_edge").
func ParseAction(key string) (Action, bool) {
	a, ok := actionKeys[key]
	return a, ok
}

// AllActions returns every bindable action in display order.
func AllActions() []Action {
	return []Action{
		ActionMoveUp,
		ActionMoveDown,
		ActionMoveLeft,
		ActionMoveRight,
		ActionToggleEdge,
		ActionToggleJitter,
		ActionQuit,
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so listings don't reshuffle between runs.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// IsReserved reports whether a code is pinned to its built-in action.
func IsReserved(code string) bool {
	return reservedCodes.Has(code)
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// Reserved arrow codes are never removed and can't be reassigned.
func SetSingleBinding(action Action, code string) {
	for c, a := range bindings {
		if reservedCodes.Has(c) {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !reservedCodes.Has(code) {
		bindings[code] = action
	}
}
