package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VStack stacks widgets top to bottom across the full height, splitting it
// evenly. Remainder rows go to the topmost children, and every child is
// padded or clipped to exactly its share so the row each child starts at is
// a function of height alone.
type VStack struct {
	Widgets []Widget
	Spacing int // blank lines between children
}

func (v VStack) Render(width, height int) string {
	n := len(v.Widgets)
	if n == 0 || width <= 0 || height <= 0 {
		return ""
	}
	usable := max(n, height-max(0, v.Spacing)*(n-1))
	share, extra := usable/n, usable%n
	parts := make([]string, 0, n*2)
	for i, w := range v.Widgets {
		h := share
		if i < extra {
			h++
		}
		parts = append(parts, FitHeight(w.Render(width, h), h))
		if i < n-1 {
			for s := 0; s < v.Spacing; s++ {
				parts = append(parts, "")
			}
		}
	}
	return strings.Join(parts, "\n")
}

// ClipHeight drops any lines of s past height.
func ClipHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= height {
		return s
	}
	return strings.Join(lines[:height], "\n")
}

// FitHeight pads or clips s to exactly height lines.
func FitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// padRight clips s to width display cells and pads with spaces up to it.
func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// cutLeft drops the first cols display cells of s.
func cutLeft(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	head := ansi.Truncate(s, cols, "")
	return strings.TrimPrefix(s, head)
}
