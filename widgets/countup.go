package widgets

import (
	"fmt"
	"math"
)

// CountUp eases a number from zero to its target over a fixed tick count
// once started. With motion off the target shows immediately.
type CountUp struct {
	target  float64
	elapsed int
	ticks   int
	started bool
	motion  bool
	Format  func(v float64) string
}

func NewCountUp(target float64, ticks int, motion bool) *CountUp {
	if ticks <= 0 {
		ticks = 30
	}
	c := &CountUp{target: target, ticks: ticks, motion: motion}
	if !motion {
		c.started = true
		c.elapsed = ticks
	}
	return c
}

// Start begins the count. Re-entering the viewport does not restart it.
func (c *CountUp) Start() {
	if c.started {
		return
	}
	c.started = true
	if !c.motion {
		c.elapsed = c.ticks
	}
}

func (c *CountUp) Animating() bool {
	return c.started && c.elapsed < c.ticks
}

func (c *CountUp) Tick() {
	if !c.Animating() {
		return
	}
	c.elapsed++
}

// Value is the eased current value, cubic ease-out so the count lands softly.
func (c *CountUp) Value() float64 {
	if !c.started {
		return 0
	}
	p := float64(c.elapsed) / float64(c.ticks)
	if p >= 1 {
		return c.target
	}
	return c.target * (1 - math.Pow(1-p, 3))
}

func (c *CountUp) Text() string {
	if c.Format != nil {
		return c.Format(c.Value())
	}
	return fmt.Sprintf("%.0f", c.Value())
}
