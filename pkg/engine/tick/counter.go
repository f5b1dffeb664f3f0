// Package tick provides fixed-interval counters driven by the game loop's
// update ticks.
package tick

// DefaultPeriod is the number of update ticks between two firings.
// At 120 updates per second this is ten firings per second.
const DefaultPeriod = 12

// Counter fires once every Period calls to Advance. A fresh counter is
// primed so that the very first Advance fires.
type Counter struct {
	period int
	count  int
}

// NewCounter creates a primed counter. Periods below one are treated as one.
func NewCounter(period int) *Counter {
	if period < 1 {
		period = 1
	}
	c := &Counter{period: period}
	c.Reset()
	return c
}

// Period returns the number of ticks between firings
func (c *Counter) Period() int {
	return c.period
}

// Count returns the ticks elapsed since the last firing
func (c *Counter) Count() int {
	return c.count
}

// Advance counts one tick and reports whether the counter fired
func (c *Counter) Advance() bool {
	c.count++
	if c.count >= c.period {
		c.count = 0
		return true
	}
	return false
}

// Reset primes the counter so the next Advance fires
func (c *Counter) Reset() {
	c.count = c.period - 1
}
