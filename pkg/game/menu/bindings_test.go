package menu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engineinput "movingsquare/pkg/engine/input"
	"movingsquare/pkg/game/i18n"
)

func TestBindingItems_Defaults(t *testing.T) {
	engineinput.ResetBindings()
	items := BindingItems()
	require.Len(t, items, len(engineinput.AllActions()))

	assert.Equal(t, engineinput.ActionMoveUp, items[0].Action)
	assert.Equal(t, []string{"arrow_up", "gamepad_dpad_up"}, items[0].Codes)
	assert.True(t, items[0].NonRebindable)

	last := items[len(items)-1]
	assert.Equal(t, engineinput.ActionQuit, last.Action)
	assert.Equal(t, []string{"ctrl_c", "escape", "gamepad_b", "q"}, last.Codes)
	assert.False(t, last.NonRebindable)
}

func TestPrintBindings(t *testing.T) {
	require.NoError(t, i18n.Init("en"))
	engineinput.ResetBindings()
	defer engineinput.ResetBindings()
	engineinput.SetSingleBinding(engineinput.ActionToggleJitter, "")

	var buf bytes.Buffer
	require.NoError(t, PrintBindings(&buf))
	lines := strings.Split(strings.TrimSpace(color.ClearCode(buf.String())), "\n")

	assert.Equal(t, "Key bindings", lines[0])
	assert.Contains(t, lines, "  Move Left: arrow_left, gamepad_dpad_left (fixed)")
	assert.Contains(t, lines, "  Toggle Edge Wrap: gamepad_x, w")
	assert.Contains(t, lines, "  Toggle Jitter: (unbound)")
}
