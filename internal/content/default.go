package content

// Default is the built-in deck the page ships with.
func Default() Deck {
	return Deck{
		Product: "showdeck",
		Tagline: "Product pages that live in the terminal.",
		Install: "go install github.com/jask/showdeck/cmd/showdeck@latest",
		Stats: []Stat{
			{Label: "render time", Value: 4, Suffix: "ms"},
			{Label: "binary size", Value: 9, Suffix: "MB"},
			{Label: "dependencies", Value: 11},
		},
		Capability: CapabilityGroup{
			Title: "Capabilities",
			Tabs: []CapabilityTab{
				{
					Label: "Sections",
					Lines: []string{
						"Compose a page from stacked sections.",
						"Each section declares its own height and keys.",
					},
					Default: true,
				},
				{
					Label: "Tabs",
					Lines: []string{
						"Pill groups with a sliding indicator rail.",
						"Keyboard, mouse and hover all drive one engine.",
					},
				},
				{
					Label: "Motion",
					Lines: []string{
						"Spring-driven slides, typewriter and count-up.",
						"All of it off with one config flag.",
					},
				},
				{
					Label: "Theming",
					Lines: []string{
						"One palette file, styles derived from it.",
						"Degrades cleanly on low-color terminals.",
					},
				},
			},
		},
		DoDont: DoDont{
			Title: "Do / Don't",
			Do: []string{
				"keep panels the same height so the page never jumps",
				"give every section a jump label",
				"let esc always close the top layer",
			},
			Dont: []string{
				"animate on terminals that asked for reduced motion",
				"write logs to stdout while the TUI owns it",
				"block the event loop on the clipboard",
			},
		},
	}
}
