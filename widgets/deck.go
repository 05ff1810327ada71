package widgets

import "strings"

// PanelDeck holds keyed panels and tracks which of them are showing. The
// deck knows nothing about why a panel is visible; the engine's panel policy
// flips the flags through SetPanelVisible.
type PanelDeck struct {
	order   []string
	panels  map[string]Widget
	visible map[string]bool
}

func NewPanelDeck() *PanelDeck {
	return &PanelDeck{
		panels:  map[string]Widget{},
		visible: map[string]bool{},
	}
}

// Add registers a panel under key. Registration order is render order when
// several panels are visible at once.
func (d *PanelDeck) Add(key string, w Widget) {
	if _, ok := d.panels[key]; !ok {
		d.order = append(d.order, key)
	}
	d.panels[key] = w
}

// Replace swaps the widget behind key, keeping its visibility.
func (d *PanelDeck) Replace(key string, w Widget) {
	if _, ok := d.panels[key]; ok {
		d.panels[key] = w
	}
}

// SetPanelVisible flips panel key's visibility. Unknown keys are ignored so
// a policy may carry more keys than the deck holds.
func (d *PanelDeck) SetPanelVisible(key string, visible bool) {
	if _, ok := d.panels[key]; !ok {
		return
	}
	d.visible[key] = visible
}

func (d *PanelDeck) IsVisible(key string) bool {
	return d.visible[key]
}

// VisibleKeys returns the showing panels in registration order.
func (d *PanelDeck) VisibleKeys() []string {
	out := make([]string, 0, len(d.order))
	for _, key := range d.order {
		if d.visible[key] {
			out = append(out, key)
		}
	}
	return out
}

// Render stacks the visible panels top to bottom across the full height.
func (d *PanelDeck) Render(width, height int) string {
	keys := d.VisibleKeys()
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(keys) == 0 {
		return strings.Repeat("\n", max(0, height-1))
	}
	stack := VStack{Widgets: make([]Widget, 0, len(keys))}
	for _, key := range keys {
		stack.Widgets = append(stack.Widgets, d.panels[key])
	}
	return stack.Render(width, height)
}

// SegmentedGroup couples a pill row with its panel deck behind the single
// adapter surface the engine mutates.
type SegmentedGroup struct {
	*SegmentedView
	Deck *PanelDeck
}

func NewSegmentedGroup(labels []string, motion bool) SegmentedGroup {
	return SegmentedGroup{
		SegmentedView: NewSegmentedView(labels, motion),
		Deck:          NewPanelDeck(),
	}
}

func (g SegmentedGroup) SetPanelVisible(key string, visible bool) {
	g.Deck.SetPanelVisible(key, visible)
}
