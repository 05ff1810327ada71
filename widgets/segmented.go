package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	pillPad = 2 // horizontal padding inside a pill
	pillGap = 1 // cells between pills
)

// SegmentedView draws a row of pills with a sliding indicator rail under it.
// It is the terminal half of a segmented control: the engine in core pushes
// state changes in through the adapter methods and reads pill bounds back out,
// and this type turns them into two lines of styled cells. With motion on the
// rail chases its target on a spring; with motion off every move is a snap.
type SegmentedView struct {
	labels  []string
	active  []bool
	hovered int
	focused int

	width   int // cells available to the pill row
	origin  int // left padding inside the container
	hscroll int

	motion       bool
	spring       Spring
	posX, velX   float64
	posW, velW   float64
	targetX      int
	targetW      int
	placed       bool // geometry has been set at least once
	activeStyle  lipgloss.Style
	idleStyle    lipgloss.Style
	hoverStyle   lipgloss.Style
	railStyle    lipgloss.Style
	railBedStyle lipgloss.Style
}

func NewSegmentedView(labels []string, motion bool) *SegmentedView {
	return &SegmentedView{
		labels:       labels,
		active:       make([]bool, len(labels)),
		hovered:      -1,
		origin:       1,
		width:        80,
		motion:       motion,
		spring:       NewSlideSpring(),
		activeStyle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#89b4fa")),
		idleStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8")).Background(lipgloss.Color("#313244")),
		hoverStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Background(lipgloss.Color("#45475a")),
		railStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")),
		railBedStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("#313244")),
	}
}

// Height is the fixed row count of the view: pills plus rail.
func (s *SegmentedView) Height() int { return 2 }

// SetWidth tells the view how many cells it may use and rescrolls so the
// focused pill stays visible.
func (s *SegmentedView) SetWidth(width int) {
	s.width = max(1, width)
	s.ensureVisible(s.focused)
}

// SetItemActive mirrors the engine's active flag for pill index.
func (s *SegmentedView) SetItemActive(index int, active bool) {
	if index < 0 || index >= len(s.active) {
		return
	}
	s.active[index] = active
	if active {
		s.ensureVisible(index)
	}
}

// FocusItem moves the keyboard focus marker and scrolls the pill into view.
func (s *SegmentedView) FocusItem(index int) {
	if index < 0 || index >= len(s.labels) {
		return
	}
	s.focused = index
	s.ensureVisible(index)
}

// SetIndicatorGeometry retargets the rail. The first placement snaps so the
// rail never slides in from cold-start zero.
func (s *SegmentedView) SetIndicatorGeometry(offset, width int) {
	s.targetX = offset
	s.targetW = width
	if !s.motion || !s.placed {
		s.posX, s.velX = float64(offset), 0
		s.posW, s.velW = float64(width), 0
	}
	s.placed = true
}

// ItemBounds reports pill index's offset and width relative to the content
// origin, before scroll.
func (s *SegmentedView) ItemBounds(index int) (offset, width int) {
	if index < 0 || index >= len(s.labels) {
		return 0, 0
	}
	off := 0
	for i := 0; i < index; i++ {
		off += s.pillWidth(i) + pillGap
	}
	return off, s.pillWidth(index)
}

func (s *SegmentedView) ContentOrigin() int { return s.origin }

func (s *SegmentedView) ScrollOffset() int { return s.hscroll }

// Hover styles pill index as hovered; -1 clears it. Purely visual, the
// engine's preview drives the rail separately.
func (s *SegmentedView) Hover(index int) {
	if index >= len(s.labels) {
		index = -1
	}
	s.hovered = index
}

// HitTest maps view-local coordinates to a pill index. Row 0 is the pill
// row; the rail does not hit.
func (s *SegmentedView) HitTest(x, y int) (int, bool) {
	if y != 0 {
		return 0, false
	}
	cx := x - s.origin + s.hscroll
	off := 0
	for i := range s.labels {
		w := s.pillWidth(i)
		if cx >= off && cx < off+w {
			return i, true
		}
		off += w + pillGap
	}
	return 0, false
}

// Animating reports whether the rail is still chasing its target.
func (s *SegmentedView) Animating() bool {
	if !s.motion || !s.placed {
		return false
	}
	return math.Abs(s.posX-float64(s.targetX)) > 0.25 ||
		math.Abs(s.posW-float64(s.targetW)) > 0.25 ||
		math.Abs(s.velX) > 0.25 || math.Abs(s.velW) > 0.25
}

// Tick advances the rail spring one frame and snaps when close enough.
func (s *SegmentedView) Tick() {
	if !s.Animating() {
		return
	}
	s.posX, s.velX = s.spring.Update(s.posX, s.velX, float64(s.targetX))
	s.posW, s.velW = s.spring.Update(s.posW, s.velW, float64(s.targetW))
	if !s.Animating() {
		s.posX, s.velX = float64(s.targetX), 0
		s.posW, s.velW = float64(s.targetW), 0
	}
}

func (s *SegmentedView) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	s.width = width
	row := s.renderPills(width)
	if height == 1 {
		return row
	}
	lines := []string{row, s.renderRail(width)}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (s *SegmentedView) renderPills(width int) string {
	var b strings.Builder
	for i, label := range s.labels {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", pillGap))
		}
		style := s.idleStyle
		switch {
		case s.active[i]:
			style = s.activeStyle
		case i == s.hovered:
			style = s.hoverStyle
		}
		b.WriteString(style.Render(strings.Repeat(" ", pillPad) + label + strings.Repeat(" ", pillPad)))
	}
	row := b.String()
	row = cutLeft(row, s.hscroll)
	row = ansi.Truncate(row, max(0, width-s.origin), "")
	return strings.Repeat(" ", s.origin) + row
}

// renderRail draws the indicator at its animated position over a dim bed.
func (s *SegmentedView) renderRail(width int) string {
	x := int(math.Round(s.posX))
	w := int(math.Round(s.posW))
	if !s.placed || w <= 0 {
		return s.railBedStyle.Render(strings.Repeat("╌", max(0, width)))
	}
	if x < 0 {
		w += x
		x = 0
	}
	if x > width {
		x = width
	}
	if x+w > width {
		w = width - x
	}
	if w < 0 {
		w = 0
	}
	var b strings.Builder
	b.WriteString(s.railBedStyle.Render(strings.Repeat("╌", x)))
	b.WriteString(s.railStyle.Render(strings.Repeat("▔", w)))
	b.WriteString(s.railBedStyle.Render(strings.Repeat("╌", max(0, width-x-w))))
	return b.String()
}

func (s *SegmentedView) pillWidth(i int) int {
	return ansi.StringWidth(s.labels[i]) + 2*pillPad
}

// ensureVisible scrolls horizontally so pill index sits fully inside the
// view, when the row is wider than the container.
func (s *SegmentedView) ensureVisible(index int) {
	if index < 0 || index >= len(s.labels) {
		return
	}
	off, w := s.ItemBounds(index)
	avail := max(1, s.width-s.origin)
	total := 0
	for i := range s.labels {
		total += s.pillWidth(i)
		if i > 0 {
			total += pillGap
		}
	}
	if total <= avail {
		s.hscroll = 0
		return
	}
	if off < s.hscroll {
		s.hscroll = off
	} else if off+w > s.hscroll+avail {
		s.hscroll = off + w - avail
	}
	if s.hscroll > total-avail {
		s.hscroll = total - avail
	}
	if s.hscroll < 0 {
		s.hscroll = 0
	}
}
