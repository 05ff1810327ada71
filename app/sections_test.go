package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/showdeck/internal/config"
	"github.com/jask/showdeck/internal/content"
)

func testDeck() content.Deck {
	return content.Deck{
		Product: "showdeck",
		Tagline: "tag",
		Install: "go install example",
		Stats:   []content.Stat{{Label: "ms", Value: 4}},
		Capability: content.CapabilityGroup{
			Title: "Capabilities",
			Tabs: []content.CapabilityTab{
				{Label: "One", Lines: []string{"a"}},
				{Label: "Two", Lines: []string{"b"}, Default: true},
				{Label: "Three", Lines: []string{"c"}},
			},
		},
		DoDont: content.DoDont{Title: "Do / Don't", Do: []string{"d"}, Dont: []string{"n"}},
	}
}

func TestCapabilitiesSeedsDefaultTab(t *testing.T) {
	s := NewCapabilitiesSection(testDeck().Capability, false)
	if got := s.Control().ActiveIndex(); got != 1 {
		t.Fatalf("active = %d, want the marked tab 1", got)
	}
	if !s.group.Deck.IsVisible("cap-1") {
		t.Fatalf("panel for the marked tab should be visible")
	}
	if s.group.Deck.IsVisible("cap-0") || s.group.Deck.IsVisible("cap-2") {
		t.Fatalf("only one panel may show")
	}
}

func TestCapabilitiesNumberKeyActivates(t *testing.T) {
	s := NewCapabilitiesSection(testDeck().Capability, false)
	s.Update(nil, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	if got := s.Control().ActiveIndex(); got != 2 {
		t.Fatalf("active = %d after pressing 3, want 2", got)
	}
	// out-of-range number is ignored
	s.Update(nil, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'9'}})
	if got := s.Control().ActiveIndex(); got != 2 {
		t.Fatalf("active = %d after pressing 9, want unchanged 2", got)
	}
}

func TestCapabilitiesMouseClickActivates(t *testing.T) {
	s := NewCapabilitiesSection(testDeck().Capability, false)
	s.group.SetWidth(60)
	// pill 0 starts at origin 1, row 1 locally (row 0 is the title)
	handled, _ := s.HandleMouse(nil, 2, 1, tea.MouseMsg{
		Action: tea.MouseActionPress, Button: tea.MouseButtonLeft,
	})
	if !handled {
		t.Fatalf("click on a pill should be handled")
	}
	if got := s.Control().ActiveIndex(); got != 0 {
		t.Fatalf("active = %d after click on pill 0", got)
	}
}

func TestCapabilitiesHoverPreviewsWithoutActivating(t *testing.T) {
	s := NewCapabilitiesSection(testDeck().Capability, false)
	s.group.SetWidth(60)
	handled, _ := s.HandleMouse(nil, 2, 1, tea.MouseMsg{Action: tea.MouseActionMotion})
	if !handled {
		t.Fatalf("hover over a pill should be handled")
	}
	if idx, ok := s.Control().Previewing(); !ok || idx != 0 {
		t.Fatalf("preview = (%d,%v), want (0,true)", idx, ok)
	}
	if got := s.Control().ActiveIndex(); got != 1 {
		t.Fatalf("hover must not change the active index, got %d", got)
	}
	s.ClearHover()
	if _, ok := s.Control().Previewing(); ok {
		t.Fatalf("preview should clear when the pointer leaves")
	}
}

func TestDoDontBinarySwitch(t *testing.T) {
	s := NewDoDontSection(testDeck().DoDont, false)
	if !s.group.Deck.IsVisible("do") || s.group.Deck.IsVisible("dont") {
		t.Fatalf("fresh section should show the do card")
	}
	s.Control().Next()
	if s.group.Deck.IsVisible("do") || !s.group.Deck.IsVisible("dont") {
		t.Fatalf("toggle should swap the cards")
	}
	s.Control().Next()
	if !s.group.Deck.IsVisible("do") {
		t.Fatalf("toggle should wrap back to the do card")
	}
}

func TestDoDontStartsOnDontWhenMarked(t *testing.T) {
	dd := testDeck().DoDont
	dd.DontWins = true
	s := NewDoDontSection(dd, false)
	if got := s.Control().ActiveIndex(); got != 1 {
		t.Fatalf("active = %d, want 1", got)
	}
	if !s.group.Deck.IsVisible("dont") {
		t.Fatalf("don't card should show")
	}
}

func TestHeroRevealStartsAnimations(t *testing.T) {
	s := NewHeroSection(testDeck(), true)
	if s.Animating() {
		t.Fatalf("hero should be idle before reveal")
	}
	s.Reveal()
	if !s.Animating() {
		t.Fatalf("reveal should start the typewriter and counters")
	}
	for i := 0; i < 200 && s.Animating(); i++ {
		s.Tick(time.Now())
	}
	if s.Animating() {
		t.Fatalf("hero animations never settled")
	}
}

func TestBuildPagePushesSplash(t *testing.T) {
	cfg := config.Config{UI: config.UIConfig{Motion: true, Mouse: true, Splash: true}}
	m := BuildPage(testDeck(), cfg, nil)
	if m.ActiveScope() != "screen:splash" {
		t.Fatalf("scope = %q, want the splash on top", m.ActiveScope())
	}

	cfg.UI.Splash = false
	m = BuildPage(testDeck(), cfg, nil)
	if m.ActiveScope() != "section:hero" {
		t.Fatalf("scope = %q, want the hero focused", m.ActiveScope())
	}
}
