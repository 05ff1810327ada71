package core

import "slices"

// Item is one selectable entry (a pill) in a segmented control. Index order
// is the order items are passed at construction and is stable for the
// control's lifetime. Active marks the initially selected item in the source
// content; after construction the control owns the flag.
type Item struct {
	Label  string
	Active bool
}

// ViewAdapter receives the control's state mutations. The control never
// renders anything itself; it tells the adapter what changed and the adapter
// owns the visual result. Tests substitute a recording fake.
type ViewAdapter interface {
	// SetItemActive mirrors the active flag onto item index. The active item
	// is also the control's only tab stop; inactive items are skipped.
	SetItemActive(index int, active bool)
	// SetPanelVisible shows or hides the panel registered under key.
	SetPanelVisible(key string, visible bool)
	// SetIndicatorGeometry places the indicator at offset cells from the
	// container's left edge, width cells wide.
	SetIndicatorGeometry(offset, width int)
	// FocusItem moves keyboard focus to item index after a key navigation.
	FocusItem(index int)
}

// GeometrySource answers layout queries. The control reads it, never writes.
// Bounds reflect whatever the measure layer reports at call time; callers
// must not assume a mutation elsewhere in the same update has already been
// laid out.
type GeometrySource interface {
	// ItemBounds returns item index's offset and width in cells, relative to
	// the container's content origin. A zero width means the item is not
	// currently laid out.
	ItemBounds(index int) (offset, width int)
	// ContentOrigin returns the container's left padding in cells.
	ContentOrigin() int
	// ScrollOffset returns the container's horizontal scroll in cells.
	ScrollOffset() int
}

// SegmentedControl owns the active index of a pill group and keeps the
// adapter's item markers, panel visibility and indicator geometry consistent
// with it. One implementation serves both the N-way tab group and the
// two-way toggle; panel coupling is injected as a PanelPolicy.
//
// A nil *SegmentedControl is valid and inert: every method is a no-op. The
// constructor returns nil when the host markup is incomplete, so a missing
// section simply disables itself without failing the page.
type SegmentedControl struct {
	items   []Item
	active  int
	preview int // -1 when no hover preview is showing
	adapter ViewAdapter
	geo     GeometrySource
	policy  PanelPolicy
}

// NewSegmentedControl builds a control over items. Returns nil if items is
// empty or either collaborator is missing. policy may be nil, in which case
// the control manages only the active index and indicator.
//
// The initial active index is the first item carrying the Active marker,
// or 0 if none is marked. SetActive runs once during construction so the
// adapter starts consistent.
func NewSegmentedControl(items []Item, adapter ViewAdapter, geo GeometrySource, policy PanelPolicy) *SegmentedControl {
	if len(items) == 0 || adapter == nil || geo == nil {
		return nil
	}
	c := &SegmentedControl{
		items:   slices.Clone(items),
		preview: -1,
		adapter: adapter,
		geo:     geo,
		policy:  policy,
	}
	active := 0
	for i, it := range c.items {
		if it.Active {
			active = i
			break
		}
	}
	c.SetActive(active)
	return c
}

// Len returns the item count, 0 for a nil control.
func (c *SegmentedControl) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// ActiveIndex returns the current active index, 0 for a nil control.
func (c *SegmentedControl) ActiveIndex() int {
	if c == nil {
		return 0
	}
	return c.active
}

// Items returns a copy of the item list.
func (c *SegmentedControl) Items() []Item {
	if c == nil {
		return nil
	}
	return slices.Clone(c.items)
}

// Previewing reports the hover-preview index, if one is showing.
func (c *SegmentedControl) Previewing() (int, bool) {
	if c == nil || c.preview < 0 {
		return 0, false
	}
	return c.preview, true
}

// SetActive makes index the single active item: every item's flag becomes
// (i == index) and is mirrored to the adapter, the panel policy is applied,
// and the indicator is recomputed against the new active item. Any hover
// preview in effect ends here, so the indicator always lands on the item
// that just became active. Idempotent.
//
// Precondition: 0 <= index < Len(). Out-of-range calls are rejected as a
// no-op rather than clamped; key navigation keeps itself in range with
// modulo arithmetic, so a bad index can only come from host code.
func (c *SegmentedControl) SetActive(index int) {
	if c == nil || index < 0 || index >= len(c.items) {
		return
	}
	c.active = index
	for i := range c.items {
		on := i == index
		c.items[i].Active = on
		c.adapter.SetItemActive(i, on)
	}
	if c.policy != nil {
		c.policy.Apply(index, c.adapter)
	}
	c.preview = -1
	c.RecomputeGeometry()
}

// Next activates the item after the current one, wrapping at the end, and
// moves focus to it.
func (c *SegmentedControl) Next() {
	if c == nil || len(c.items) == 0 {
		return
	}
	c.SetActive((c.active + 1) % len(c.items))
	c.adapter.FocusItem(c.active)
}

// Prev activates the item before the current one, wrapping at the start,
// and moves focus to it.
func (c *SegmentedControl) Prev() {
	if c == nil || len(c.items) == 0 {
		return
	}
	c.SetActive((c.active - 1 + len(c.items)) % len(c.items))
	c.adapter.FocusItem(c.active)
}

// HandleKey maps a registry action onto the control. Only the two navigation
// actions are handled; anything else returns false untouched.
func (c *SegmentedControl) HandleKey(action string) bool {
	if c == nil {
		return false
	}
	switch action {
	case ActionSegmentNext:
		c.Next()
		return true
	case ActionSegmentPrev:
		c.Prev()
		return true
	}
	return false
}

// PreviewIndicator slides the indicator to item index without changing the
// active index or panel visibility. Pure visual feedback for hover; cleared
// by ClearPreview when the pointer leaves the pill row. Out-of-range
// indexes are ignored.
func (c *SegmentedControl) PreviewIndicator(index int) {
	if c == nil || index < 0 || index >= len(c.items) {
		return
	}
	c.preview = index
	c.RecomputeGeometry()
}

// ClearPreview snaps the indicator back to the true active item.
func (c *SegmentedControl) ClearPreview() {
	if c == nil || c.preview < 0 {
		return
	}
	c.preview = -1
	c.RecomputeGeometry()
}

// RecomputeGeometry re-reads the previewed (or active) item's bounds and
// rewrites the indicator. Call after construction and whenever layout may
// have changed, e.g. on terminal resize. An item that is not laid out yet
// reports zero width and the indicator collapses to zero width at its
// offset; degraded output, not an error.
func (c *SegmentedControl) RecomputeGeometry() {
	if c == nil {
		return
	}
	idx := c.active
	if c.preview >= 0 {
		idx = c.preview
	}
	off, w := c.geo.ItemBounds(idx)
	c.adapter.SetIndicatorGeometry(c.geo.ContentOrigin()+off-c.geo.ScrollOffset(), w)
}
