package app

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/showdeck/core"
	"github.com/jask/showdeck/internal/content"
	"github.com/jask/showdeck/widgets"
)

var sectionTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cdd6f4"))

// CapabilitiesSection is the N-way tab group: one pill per capability, one
// panel per pill, coupled through the indexed policy.
type CapabilitiesSection struct {
	title   string
	group   widgets.SegmentedGroup
	control *core.SegmentedControl
	panelH  int
}

func NewCapabilitiesSection(group content.CapabilityGroup, motion bool) *CapabilitiesSection {
	labels := make([]string, len(group.Tabs))
	items := make([]core.Item, len(group.Tabs))
	keys := make([]string, len(group.Tabs))
	panelH := 0
	for i, tab := range group.Tabs {
		labels[i] = tab.Label
		items[i] = core.Item{Label: tab.Label, Active: tab.Default}
		keys[i] = fmt.Sprintf("cap-%d", i)
		if len(tab.Lines) > panelH {
			panelH = len(tab.Lines)
		}
	}
	panelH += 3 // card border and title

	g := widgets.NewSegmentedGroup(labels, motion)
	for i, tab := range group.Tabs {
		g.Deck.Add(keys[i], widgets.Card{
			Title:   tab.Label,
			Content: strings.Join(tab.Lines, "\n"),
			Accent:  lipgloss.Color("#89b4fa"),
		})
	}

	s := &CapabilitiesSection{
		title:  group.Title,
		group:  g,
		panelH: panelH,
	}
	s.control = core.NewSegmentedControl(items, g, g.SegmentedView, core.IndexedPanels{Keys: keys})
	return s
}

func (s *CapabilitiesSection) ID() string    { return "capabilities" }
func (s *CapabilitiesSection) Title() string { return s.title }

func (s *CapabilitiesSection) Control() *core.SegmentedControl { return s.control }

// Update handles direct pill selection by number; arrows arrive as routed
// segment actions, not here.
func (s *CapabilitiesSection) Update(m *core.Model, msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(key.Runes) != 1 {
		return nil
	}
	r := key.Runes[0]
	if r < '1' || r > '9' {
		return nil
	}
	idx := int(r - '1')
	if idx >= s.control.Len() {
		return nil
	}
	s.control.SetActive(idx)
	return nil
}

// Height: title, pills, rail, panel card.
func (s *CapabilitiesSection) Height(width int) int { return 3 + s.panelH }

func (s *CapabilitiesSection) Build(m *core.Model, width int) widgets.Widget {
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

// HandleMouse activates on click and previews the rail on hover. Local row 1
// is the pill row, row 2 the rail.
func (s *CapabilitiesSection) HandleMouse(m *core.Model, x, y int, msg tea.MouseMsg) (bool, tea.Cmd) {
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

func (s *CapabilitiesSection) ClearHover() {
	s.group.SegmentedView.Hover(-1)
	s.control.ClearPreview()
}

func (s *CapabilitiesSection) Animating() bool { return s.group.SegmentedView.Animating() }

func (s *CapabilitiesSection) Tick(at time.Time) { s.group.SegmentedView.Tick() }
