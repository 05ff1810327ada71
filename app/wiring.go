package app

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/showdeck/core"
	"github.com/jask/showdeck/internal/config"
	"github.com/jask/showdeck/internal/content"
	"github.com/jask/showdeck/screens"
)

// BuildPage wires the deck into a ready model: sections, key table, palette
// and clipboard hooks, splash.
func BuildPage(deck content.Deck, cfg config.Config, logger *zap.Logger) core.Model {
	motion := cfg.UI.Motion
	sections := []core.Section{
		NewHeroSection(deck, motion),
		NewCapabilitiesSection(deck.Capability, motion),
		NewDoDontSection(deck.DoDont, motion),
	}

	keys := core.NewKeyRegistry(core.DefaultKeyBindings())
	m := core.NewModel(deck.Product, sections, keys, logger)
	m.Motion = motion

	m.OpenPalette = func(m *core.Model) core.Screen {
		items := make([]screens.JumpItem, 0, len(m.Sections()))
		for _, s := range m.Sections() {
			items = append(items, screens.JumpItem{ID: s.ID(), Label: s.Title(), Desc: "section"})
		}
		return screens.NewJumpScreen("Jump to", items, func(it screens.JumpItem) tea.Msg {
			return core.ScrollToSectionMsg{ID: it.ID}
		})
	}

	m.CopyInstall = copyInstallCmd(deck.Install)

	if cfg.UI.Splash {
		m.PushScreen(screens.NewSplashScreen(deck.Product, deck.Tagline))
	}
	return m
}

func copyInstallCmd(install string) func(*core.Model) tea.Cmd {
	return func(m *core.Model) tea.Cmd {
		if install == "" {
			return core.StatusCmd("Nothing to copy")
		}
		return func() tea.Msg {
			if err := clipboard.WriteAll(install); err != nil {
				return core.StatusMsg{Text: fmt.Sprintf("copy install: %v", err), IsErr: true}
			}
			return core.ToastMsg{Text: "Install command copied"}
		}
	}
}
