package input

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeKeys(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want []string
	}{
		{"csi arrows", []byte("\x1b[A\x1b[B\x1b[C\x1b[D"), []string{"arrow_up", "arrow_down", "arrow_right", "arrow_left"}},
		{"ss3 arrows", []byte("\x1bOA\x1bOD"), []string{"arrow_up", "arrow_left"}},
		{"modified arrow", []byte("\x1b[1;5C"), []string{"arrow_right"}},
		{"unknown sequence dropped", []byte("\x1b[3~w"), []string{"w"}},
		{"lone escape", []byte{0x1b}, []string{"escape"}},
		{"escape then letter", []byte("\x1bj"), []string{"escape", "j"}},
		{"ctrl c", []byte{0x03}, []string{"ctrl_c"}},
		{"uppercase folds", []byte("WJ"), []string{"w", "j"}},
		{"enter and space", []byte("\r "), []string{"enter", "space"}},
		{"truncated sequence", []byte("\x1b["), nil},
		{"control bytes ignored", []byte{0x01, 0x02}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeKeys(tt.in))
		})
	}
}

func TestReadTerminal_EmitsPressesUntilEOF(t *testing.T) {
	out := make(chan RawInput, 8)
	err := ReadTerminal(context.Background(), strings.NewReader("\x1b[Aj"), out)
	require.NoError(t, err)

	var codes []string
	for ev := range out {
		assert.Equal(t, EdgePress, ev.Edge)
		assert.Equal(t, DeviceTerminal, ev.Device)
		codes = append(codes, ev.Code)
	}
	assert.Equal(t, []string{"arrow_up", "j"}, codes)
}

func TestReadTerminal_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := make(chan RawInput) // unbuffered, nobody reading
	err := ReadTerminal(ctx, strings.NewReader("q"), out)
	assert.ErrorIs(t, err, context.Canceled)
}
