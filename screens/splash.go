package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/showdeck/core"
	"github.com/jask/showdeck/widgets"
)

var (
	splashMarkStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	splashTagStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	splashHintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
)

// SplashScreen is the intro layer shown before the page. Any key dismisses.
type SplashScreen struct {
	product string
	tagline string
}

func NewSplashScreen(product, tagline string) *SplashScreen {
	return &SplashScreen{product: product, tagline: tagline}
}

func (s *SplashScreen) Title() string { return s.product }
func (s *SplashScreen) Scope() string { return "screen:splash" }

func (s *SplashScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return s, nil, true
	}
	return s, nil, false
}

func (s *SplashScreen) View(width, height int) string {
	lines := []string{
		splashMarkStyle.Render("▮ " + s.product),
		"",
		splashTagStyle.Render(s.tagline),
		"",
		splashHintStyle.Render("press any key"),
	}
	return widgets.ClipHeight(strings.Join(lines, "\n"), max(5, height))
}
