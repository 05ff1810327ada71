package widgets

import (
	"fmt"
	"strings"
	"testing"
)

func TestTypewriterRevealsAfterStart(t *testing.T) {
	tw := NewTypewriter("hello world", true)
	if tw.Animating() {
		t.Fatalf("typewriter must be idle before Start")
	}
	if tw.Text() != "" {
		t.Fatalf("unstarted typewriter showed %q", tw.Text())
	}
	tw.Start()
	if !tw.Animating() {
		t.Fatalf("started typewriter should animate")
	}
	for i := 0; i < 100 && tw.Animating(); i++ {
		tw.Tick()
	}
	if tw.Text() != "hello world" {
		t.Fatalf("final text = %q", tw.Text())
	}
	tw.Start() // restart must be a no-op
	if tw.Text() != "hello world" {
		t.Fatalf("restart reset the reveal")
	}
}

func TestTypewriterShowsCursorMidReveal(t *testing.T) {
	tw := NewTypewriter("abcdef", true)
	tw.Start()
	tw.Tick()
	if !strings.HasSuffix(tw.Text(), "▌") {
		t.Fatalf("expected cursor during reveal, got %q", tw.Text())
	}
}

func TestTypewriterMotionOffIsInstant(t *testing.T) {
	tw := NewTypewriter("instant", false)
	if tw.Animating() {
		t.Fatalf("motion off must not animate")
	}
	if tw.Text() != "instant" {
		t.Fatalf("text = %q, want full text", tw.Text())
	}
}

func TestCountUpEasesToTarget(t *testing.T) {
	c := NewCountUp(250, 10, true)
	c.Start()
	if got := c.Value(); got != 0 {
		t.Fatalf("value before first tick = %v, want 0", got)
	}
	var prev float64
	for c.Animating() {
		c.Tick()
		v := c.Value()
		if v < prev {
			t.Fatalf("count went backwards: %v after %v", v, prev)
		}
		prev = v
	}
	if c.Value() != 250 {
		t.Fatalf("final value = %v, want 250", c.Value())
	}
}

func TestCountUpMotionOffIsInstant(t *testing.T) {
	c := NewCountUp(42, 10, false)
	if c.Animating() {
		t.Fatalf("motion off must not animate")
	}
	if c.Text() != "42" {
		t.Fatalf("text = %q, want 42", c.Text())
	}
}

func TestCountUpCustomFormat(t *testing.T) {
	c := NewCountUp(99, 5, false)
	c.Format = func(v float64) string { return fmt.Sprintf("%.0f%%", v) }
	if c.Text() != "99%" {
		t.Fatalf("text = %q, want 99%%", c.Text())
	}
}
