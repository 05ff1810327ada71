package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/showdeck/app"
	"github.com/jask/showdeck/internal/config"
	"github.com/jask/showdeck/internal/content"
	"github.com/jask/showdeck/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Log.Path)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	deckPath := cfg.Deck.Path
	if len(os.Args) > 1 {
		deckPath = os.Args[1]
	}
	deck, err := content.Load(deckPath)
	if err != nil {
		log.Fatalf("deck: %v", err)
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}

	p := tea.NewProgram(app.BuildPage(deck, cfg, logger), opts...)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
