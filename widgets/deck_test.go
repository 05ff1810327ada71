package widgets

import (
	"strings"
	"testing"
)

func TestPanelDeckVisibility(t *testing.T) {
	d := NewPanelDeck()
	d.Add("overview", Text{Lines: []string{"overview body"}})
	d.Add("pricing", Text{Lines: []string{"pricing body"}})
	d.SetPanelVisible("overview", true)
	d.SetPanelVisible("pricing", false)
	d.SetPanelVisible("ghost", true) // unknown key ignored

	if !d.IsVisible("overview") || d.IsVisible("pricing") || d.IsVisible("ghost") {
		t.Fatalf("visibility flags wrong: %v", d.VisibleKeys())
	}
	out := d.Render(30, 3)
	if !strings.Contains(out, "overview body") {
		t.Fatalf("visible panel missing from render: %q", out)
	}
	if strings.Contains(out, "pricing body") {
		t.Fatalf("hidden panel leaked into render: %q", out)
	}
}

func TestPanelDeckOrderStable(t *testing.T) {
	d := NewPanelDeck()
	d.Add("b", Text{Lines: []string{"b"}})
	d.Add("a", Text{Lines: []string{"a"}})
	d.SetPanelVisible("a", true)
	d.SetPanelVisible("b", true)
	keys := d.VisibleKeys()
	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Fatalf("keys = %v, want registration order [b a]", keys)
	}
}

func TestSegmentedGroupRoutesPanelFlags(t *testing.T) {
	g := NewSegmentedGroup([]string{"On", "Off"}, false)
	g.Deck.Add("primary", Text{Lines: []string{"p"}})
	g.SetPanelVisible("primary", true)
	if !g.Deck.IsVisible("primary") {
		t.Fatalf("group did not forward visibility to deck")
	}
}
