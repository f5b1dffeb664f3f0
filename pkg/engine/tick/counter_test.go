package tick

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter_FiresOnFirstAdvance(t *testing.T) {
	c := NewCounter(DefaultPeriod)
	assert.True(t, c.Advance())
	assert.Equal(t, 0, c.Count())
}

func TestCounter_FiresEveryPeriod(t *testing.T) {
	c := NewCounter(12)
	var fired []int
	for i := 1; i <= 37; i++ {
		if c.Advance() {
			fired = append(fired, i)
		}
	}
	assert.Equal(t, []int{1, 13, 25, 37}, fired)
}

func TestCounter_NonPositivePeriodFiresEveryTick(t *testing.T) {
	for _, p := range []int{0, -3, 1} {
		c := NewCounter(p)
		assert.Equal(t, 1, c.Period())
		for i := 0; i < 5; i++ {
			assert.True(t, c.Advance(), "period %d tick %d", p, i)
		}
	}
}

func TestCounter_ResetPrimes(t *testing.T) {
	c := NewCounter(4)
	c.Advance()
	c.Advance()
	assert.Equal(t, 1, c.Count())
	c.Reset()
	assert.True(t, c.Advance())
}
