package core

import "testing"

func paletteItems() []PaletteItem {
	return []PaletteItem{
		{ID: "hero", Label: "Overview"},
		{ID: "capabilities", Label: "Capabilities"},
		{ID: "dodont", Label: "Do / Don't"},
		{ID: "copy", Label: "Copy install command"},
	}
}

func TestPaletteSubsequenceFilter(t *testing.T) {
	p := NewPalette("Jump", paletteItems())
	p.SetQuery("cap")
	items := p.Items()
	if len(items) == 0 || items[0].ID != "capabilities" {
		t.Fatalf("filtered = %v, want capabilities first", items)
	}
}

func TestPalettePrefixBeatsScattered(t *testing.T) {
	p := NewPalette("Jump", []PaletteItem{
		{ID: "scattered", Label: "x c x a x p"},
		{ID: "prefix", Label: "capable"},
	})
	p.SetQuery("cap")
	items := p.Items()
	if len(items) != 2 || items[0].ID != "prefix" {
		t.Fatalf("order = %v, want prefix match first", items)
	}
}

func TestPaletteTypoStillMatches(t *testing.T) {
	p := NewPalette("Jump", paletteItems())
	p.SetQuery("overveiw")
	items := p.Items()
	if len(items) == 0 {
		t.Fatalf("one-letter typo emptied the list")
	}
	if items[0].ID != "hero" {
		t.Fatalf("typo match = %v, want hero", items[0].ID)
	}
}

func TestPaletteShortQueriesSkipTypoFallback(t *testing.T) {
	p := NewPalette("Jump", []PaletteItem{{ID: "a", Label: "zz"}})
	p.SetQuery("qx")
	if got := len(p.Items()); got != 0 {
		t.Fatalf("two-char miss should not near-match, got %d items", got)
	}
}

func TestPaletteNavigationAndSelect(t *testing.T) {
	p := NewPalette("Jump", paletteItems())
	if r := p.HandleKey("down"); r.Action != PaletteActionMoved {
		t.Fatalf("down = %v", r.Action)
	}
	r := p.HandleKey("enter")
	if r.Action != PaletteActionSelected || r.Item.ID != "capabilities" {
		t.Fatalf("enter = %v %q", r.Action, r.Item.ID)
	}
	if r := p.HandleKey("esc"); r.Action != PaletteActionCancelled {
		t.Fatalf("esc = %v", r.Action)
	}
}

func TestPaletteTypingRefilters(t *testing.T) {
	p := NewPalette("Jump", paletteItems())
	p.HandleKey("d")
	p.HandleKey("o")
	items := p.Items()
	if len(items) == 0 {
		t.Fatalf("typed query emptied the list")
	}
	p.HandleKey("backspace")
	if p.Query() != "d" {
		t.Fatalf("query = %q after backspace", p.Query())
	}
}

func TestNilPaletteIsInert(t *testing.T) {
	var p *Palette
	p.SetQuery("x")
	if r := p.HandleKey("enter"); r.Action != PaletteActionNone {
		t.Fatalf("nil palette returned %v", r.Action)
	}
	if items := p.Items(); items != nil {
		t.Fatalf("nil palette returned items %v", items)
	}
}
