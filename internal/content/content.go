// Package content holds the marketing copy a page renders: the deck. A deck
// is data only; sections decide how it looks.
package content

import (
	"fmt"

	"github.com/spf13/viper"
)

// Deck is everything the page says about the product.
type Deck struct {
	Product    string
	Tagline    string
	Install    string // shell one-liner offered for copy
	Stats      []Stat
	Capability CapabilityGroup
	DoDont     DoDont
}

// Stat is one hero number, counted up on reveal.
type Stat struct {
	Label  string
	Value  float64
	Suffix string // rendered after the number, e.g. "%" or "k"
}

// CapabilityGroup is the N-way tab group: one pill per capability.
type CapabilityGroup struct {
	Title string
	Tabs  []CapabilityTab
}

// CapabilityTab is one pill and its panel copy. At most one tab should carry
// Default; the first marked wins, falling back to index 0.
type CapabilityTab struct {
	Label   string
	Lines   []string
	Default bool
}

// DoDont is the two-way toggle: usage guidance split into a "do" card and a
// "don't" card.
type DoDont struct {
	Title    string
	Do       []string
	Dont     []string
	DontWins bool // start on the "don't" card
}

// Validate rejects decks a page cannot render at all. Sparse decks are fine;
// sections degrade on their own.
func (d Deck) Validate() error {
	if d.Product == "" {
		return fmt.Errorf("deck: product name is required")
	}
	for i, tab := range d.Capability.Tabs {
		if tab.Label == "" {
			return fmt.Errorf("deck: capability tab %d has no label", i)
		}
	}
	return nil
}

// Load returns the built-in deck, or the deck at path when given. A broken
// deck file is an error rather than a silent fallback.
func Load(path string) (Deck, error) {
	if path == "" {
		return Default(), nil
	}
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return Deck{}, fmt.Errorf("read deck %s: %w", path, err)
	}
	deck := Default()
	if err := v.Unmarshal(&deck); err != nil {
		return Deck{}, fmt.Errorf("unmarshal deck %s: %w", path, err)
	}
	if err := deck.Validate(); err != nil {
		return Deck{}, err
	}
	return deck, nil
}
