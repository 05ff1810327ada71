package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/showdeck/core"
	"github.com/jask/showdeck/widgets"
)

var (
	jumpTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	jumpCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#cdd6f4"))
	jumpMetaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	jumpHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
)

// JumpItem is one palette entry: a section anchor or a page command.
type JumpItem struct {
	ID    string
	Label string
	Desc  string
}

// JumpScreen is the fuzzy jump palette. Typing filters, enter fires the
// onSelected hook and pops, esc pops.
type JumpScreen struct {
	title      string
	palette    *core.Palette
	byID       map[string]JumpItem
	onSelected func(JumpItem) tea.Msg
}

func NewJumpScreen(title string, items []JumpItem, onSelected func(JumpItem) tea.Msg) *JumpScreen {
	listItems := make([]core.PaletteItem, 0, len(items))
	byID := make(map[string]JumpItem, len(items))
	for _, it := range items {
		byID[it.ID] = it
		listItems = append(listItems, core.PaletteItem{
			ID:     it.ID,
			Label:  it.Label,
			Meta:   it.Desc,
			Search: it.Label + " " + it.Desc,
		})
	}
	return &JumpScreen{
		title:      title,
		palette:    core.NewPalette(title, listItems),
		byID:       byID,
		onSelected: onSelected,
	}
}

func (s *JumpScreen) Title() string { return s.title }
func (s *JumpScreen) Scope() string { return "screen:palette" }

func (s *JumpScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	result := s.palette.HandleKey(keyMsg.String())
	switch result.Action {
	case core.PaletteActionCancelled:
		return s, nil, true
	case core.PaletteActionSelected:
		item, exists := s.byID[result.Item.ID]
		if !exists {
			return s, nil, true
		}
		if s.onSelected != nil {
			return s, func() tea.Msg { return s.onSelected(item) }, true
		}
		return s, nil, true
	default:
		return s, nil, false
	}
}

func (s *JumpScreen) View(width, height int) string {
	lines := []string{jumpTitleStyle.Render(s.title)}
	filter := s.palette.Query()
	if filter == "" {
		filter = jumpMetaStyle.Render("(type to filter)")
	}
	lines = append(lines, "Filter: "+filter, "")
	items := s.palette.Items()
	if len(items) == 0 {
		lines = append(lines, jumpMetaStyle.Render("  No matches"))
	} else {
		for idx, item := range items {
			label := item.Label
			if item.Meta != "" {
				label += " " + jumpMetaStyle.Render("· "+item.Meta)
			}
			if idx == s.palette.Cursor() {
				lines = append(lines, jumpCursorStyle.Render("> ")+label)
			} else {
				lines = append(lines, "  "+label)
			}
		}
	}
	lines = append(lines, "", jumpHintStyle.Render("enter jump · esc close"))
	return widgets.ClipHeight(strings.Join(lines, "\n"), max(6, height))
}
