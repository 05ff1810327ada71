package core

// PanelVisibility is the slice of ViewAdapter a policy needs.
type PanelVisibility interface {
	SetPanelVisible(key string, visible bool)
}

// PanelPolicy couples panel visibility to the active index. Injected into
// SegmentedControl so the same engine serves both panel-coupling schemes.
type PanelPolicy interface {
	Apply(activeIndex int, v PanelVisibility)
}

// IndexedPanels shows Keys[i] exactly when item i is active: N items,
// N panels. Extra keys beyond the item count are simply always hidden.
type IndexedPanels struct {
	Keys []string
}

func (p IndexedPanels) Apply(activeIndex int, v PanelVisibility) {
	for i, key := range p.Keys {
		v.SetPanelVisible(key, i == activeIndex)
	}
}

// BinaryPanels is a two-way switch: Primary is visible exactly when index 0
// is active, Secondary otherwise.
//
// The policy assumes exactly two logical states. Attached to a control with
// an item count other than two it still switches on zero versus non-zero —
// a documented constraint violation, not inferred behavior.
type BinaryPanels struct {
	Primary   string
	Secondary string
}

func (p BinaryPanels) Apply(activeIndex int, v PanelVisibility) {
	v.SetPanelVisible(p.Primary, activeIndex == 0)
	v.SetPanelVisible(p.Secondary, activeIndex != 0)
}
