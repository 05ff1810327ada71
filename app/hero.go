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

var (
	heroNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#89b4fa"))
	heroTaglineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	heroStatStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a6e3a1"))
	heroLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
	heroInstallStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af"))
	heroHintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086"))
)

// HeroSection is the page opener: product name, typewritten tagline, counted
// stats and the install one-liner.
type HeroSection struct {
	product  string
	install  string
	stats    []content.Stat
	tagline  *widgets.Typewriter
	counters []*widgets.CountUp
}

func NewHeroSection(deck content.Deck, motion bool) *HeroSection {
	counters := make([]*widgets.CountUp, len(deck.Stats))
	for i, st := range deck.Stats {
		c := widgets.NewCountUp(st.Value, 24, motion)
		suffix := st.Suffix
		c.Format = func(v float64) string { return fmt.Sprintf("%.0f%s", v, suffix) }
		counters[i] = c
	}
	return &HeroSection{
		product:  deck.Product,
		install:  deck.Install,
		stats:    deck.Stats,
		tagline:  widgets.NewTypewriter(deck.Tagline, motion),
		counters: counters,
	}
}

func (s *HeroSection) ID() string    { return "hero" }
func (s *HeroSection) Title() string { return "Overview" }

func (s *HeroSection) Update(m *core.Model, msg tea.Msg) tea.Cmd { return nil }

func (s *HeroSection) Height(width int) int { return 7 }

func (s *HeroSection) Build(m *core.Model, width int) widgets.Widget {
	return widgets.RenderFunc(func(width, height int) string {
		stats := make([]string, 0, len(s.stats)*2)
		for i, st := range s.stats {
			if i > 0 {
				stats = append(stats, heroLabelStyle.Render("  │  "))
			}
			stats = append(stats, heroStatStyle.Render(s.counters[i].Text())+" "+heroLabelStyle.Render(st.Label))
		}
		install := ""
		if s.install != "" {
			install = heroInstallStyle.Render("$ "+s.install) + heroHintStyle.Render("  (c to copy)")
		}
		lines := []string{
			heroNameStyle.Render("▮ " + s.product),
			heroTaglineStyle.Render(s.tagline.Text()),
			"",
			strings.Join(stats, ""),
			"",
			install,
			"",
		}
		return strings.Join(lines, "\n")
	})
}

// Reveal starts the typewriter and counters the first time the hero scrolls
// into view.
func (s *HeroSection) Reveal() tea.Cmd {
	s.tagline.Start()
	for _, c := range s.counters {
		c.Start()
	}
	return nil
}

func (s *HeroSection) Animating() bool {
	if s.tagline.Animating() {
		return true
	}
	for _, c := range s.counters {
		if c.Animating() {
			return true
		}
	}
	return false
}

func (s *HeroSection) Tick(at time.Time) {
	s.tagline.Tick()
	for _, c := range s.counters {
		c.Tick()
	}
}
