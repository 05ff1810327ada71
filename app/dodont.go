package app

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/showdeck/core"
	"github.com/jask/showdeck/internal/content"
	"github.com/jask/showdeck/widgets"
)

// DoDontSection is the two-way toggle: a "do" card and a "don't" card behind
// a two-pill control with the binary policy.
type DoDontSection struct {
	title   string
	group   widgets.SegmentedGroup
	control *core.SegmentedControl
	panelH  int
}

func NewDoDontSection(dd content.DoDont, motion bool) *DoDontSection {
	g := widgets.NewSegmentedGroup([]string{"Do", "Don't"}, motion)
	g.Deck.Add("do", widgets.BulletList{
		Bullet: "✓",
		Items:  dd.Do,
		Style:  lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")),
	})
	g.Deck.Add("dont", widgets.BulletList{
		Bullet: "✗",
		Items:  dd.Dont,
		Style:  lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")),
	})
	items := []core.Item{
		{Label: "Do", Active: !dd.DontWins},
		{Label: "Don't", Active: dd.DontWins},
	}
	s := &DoDontSection{
		title:  dd.Title,
		group:  g,
		panelH: max(len(dd.Do), len(dd.Dont)),
	}
	s.control = core.NewSegmentedControl(items, g, g.SegmentedView, core.BinaryPanels{Primary: "do", Secondary: "dont"})
	return s
}

func (s *DoDontSection) ID() string    { return "dodont" }
func (s *DoDontSection) Title() string { return s.title }

func (s *DoDontSection) Control() *core.SegmentedControl { return s.control }

func (s *DoDontSection) Update(m *core.Model, msg tea.Msg) tea.Cmd { return nil }

func (s *DoDontSection) Height(width int) int { return 3 + s.panelH }

func (s *DoDontSection) Build(m *core.Model, width int) widgets.Widget {
	return widgets.RenderFunc(func(width, height int) string {
		s.group.SetWidth(width)
		parts := []string{
			sectionTitleStyle.Render(s.title),
			s.group.SegmentedView.Render(width, 2),
			s.group.Deck.Render(width, max(1, height-3)),
		}
		return strings.Join(parts, "\n")
	})
}

func (s *DoDontSection) HandleMouse(m *core.Model, x, y int, msg tea.MouseMsg) (bool, tea.Cmd) {
	idx, hit := s.group.SegmentedView.HitTest(x, y-1)
	if !hit {
		s.ClearHover()
		return false, nil
	}
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		s.control.SetActive(idx)
		return true, nil
	case msg.Action == tea.MouseActionMotion:
		s.group.SegmentedView.Hover(idx)
		s.control.PreviewIndicator(idx)
		return true, nil
	}
	return false, nil
}

func (s *DoDontSection) ClearHover() {
	s.group.SegmentedView.Hover(-1)
	s.control.ClearPreview()
}

func (s *DoDontSection) Animating() bool { return s.group.SegmentedView.Animating() }

func (s *DoDontSection) Tick(at time.Time) { s.group.SegmentedView.Tick() }
