package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirection_Delta(t *testing.T) {
	tests := []struct {
		dir    Direction
		dx, dy int
	}{
		{None, 0, 0},
		{Up, 0, -1},
		{Down, 0, 1},
		{Left, -1, 0},
		{Right, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			dx, dy := tt.dir.Delta()
			assert.Equal(t, tt.dx, dx)
			assert.Equal(t, tt.dy, dy)
		})
	}
}

func TestDirection_OppositeCancelsDelta(t *testing.T) {
	for _, d := range AllDirections() {
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		assert.Equal(t, 0, dx+ox, "%v", d)
		assert.Equal(t, 0, dy+oy, "%v", d)
		assert.Equal(t, d, d.Opposite().Opposite())
	}
	assert.Equal(t, None, None.Opposite())
}

func TestDirection_IsValid(t *testing.T) {
	assert.True(t, None.IsValid())
	assert.True(t, Right.IsValid())
	assert.False(t, Direction(42).IsValid())
	assert.Equal(t, "Unknown", Direction(42).String())
}
