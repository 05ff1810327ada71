package core

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/showdeck/widgets"
)

type stubSection struct {
	id       string
	title    string
	height   int
	revealed int
}

func (s *stubSection) ID() string                           { return s.id }
func (s *stubSection) Title() string                        { return s.title }
func (s *stubSection) Update(m *Model, msg tea.Msg) tea.Cmd { return nil }
func (s *stubSection) Height(width int) int                 { return s.height }
func (s *stubSection) Build(m *Model, width int) widgets.Widget {
	return widgets.Text{Lines: []string{s.id}}
}
func (s *stubSection) Reveal() tea.Cmd {
	s.revealed++
	return nil
}

type segSection struct {
	stubSection
	control *SegmentedControl
}

func (s *segSection) Control() *SegmentedControl { return s.control }

type countingGeometry struct {
	calls *int
}

func (g countingGeometry) ItemBounds(int) (int, int) { *g.calls++; return 0, 5 }
func (g countingGeometry) ContentOrigin() int        { return 0 }
func (g countingGeometry) ScrollOffset() int         { return 0 }

type nopAdapter struct{}

func (nopAdapter) SetItemActive(int, bool)       {}
func (nopAdapter) SetPanelVisible(string, bool)  {}
func (nopAdapter) SetIndicatorGeometry(int, int) {}
func (nopAdapter) FocusItem(int)                 {}

func testModel(sections ...Section) Model {
	return NewModel("showdeck", sections, NewKeyRegistry(DefaultKeyBindings()), nil)
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestResizeCoalescesIntoOneFrame(t *testing.T) {
	calls := 0
	seg := &segSection{stubSection: stubSection{id: "caps", title: "Caps", height: 6}}
	seg.control = NewSegmentedControl(
		[]Item{{Label: "A"}, {Label: "B"}},
		nopAdapter{}, countingGeometry{calls: &calls}, nil,
	)
	m := testModel(seg)

	m, cmd1 := step(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if cmd1 == nil {
		t.Fatalf("resize should schedule a frame")
	}
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 81, Height: 24})
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 82, Height: 24})

	before := calls
	m, _ = step(t, m, FrameMsg{At: time.Now()})
	if calls != before+1 {
		t.Fatalf("geometry recomputed %d times for one frame, want 1", calls-before)
	}

	// a stale second frame has nothing pending and must not recompute
	_, _ = step(t, m, FrameMsg{At: time.Now()})
	if calls != before+1 {
		t.Fatalf("stale frame recomputed geometry")
	}
}

func TestSegmentKeyRoutesToFocusedSection(t *testing.T) {
	seg := &segSection{stubSection: stubSection{id: "caps", title: "Caps", height: 6}}
	calls := 0
	seg.control = NewSegmentedControl(
		[]Item{{Label: "A"}, {Label: "B"}, {Label: "C"}},
		nopAdapter{}, countingGeometry{calls: &calls}, nil,
	)
	m := testModel(seg)

	m, _ = step(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := seg.control.ActiveIndex(); got != 1 {
		t.Fatalf("active = %d after right, want 1", got)
	}
	_, _ = step(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := seg.control.ActiveIndex(); got != 0 {
		t.Fatalf("active = %d after left, want 0", got)
	}
}

func TestScrollToSectionFocuses(t *testing.T) {
	a := &stubSection{id: "a", title: "A", height: 40}
	b := &stubSection{id: "b", title: "B", height: 10}
	m := testModel(a, b)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})

	m, _ = step(t, m, ScrollToSectionMsg{ID: "b"})
	if got := m.FocusedSection().ID(); got != "b" {
		t.Fatalf("focused = %q, want b", got)
	}

	_, cmd := step(t, m, ScrollToSectionMsg{ID: "missing"})
	if cmd == nil {
		t.Fatalf("unknown section should report via status")
	}
	if msg, ok := cmd().(StatusMsg); !ok || msg.Text == "" {
		t.Fatalf("unknown section status = %#v", msg)
	}
}

func TestRevealFiresOnce(t *testing.T) {
	a := &stubSection{id: "a", title: "A", height: 4}
	b := &stubSection{id: "b", title: "B", height: 200}
	c := &stubSection{id: "c", title: "C", height: 4}
	m := testModel(a, b, c)
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})

	if a.revealed != 1 || b.revealed != 1 {
		t.Fatalf("visible sections revealed (%d,%d), want once each", a.revealed, b.revealed)
	}
	if c.revealed != 0 {
		t.Fatalf("offscreen section revealed early")
	}

	m, _ = step(t, m, ScrollToSectionMsg{ID: "c"})
	if c.revealed != 1 {
		t.Fatalf("scrolled-to section revealed %d times, want 1", c.revealed)
	}
	_, _ = step(t, m, ScrollToSectionMsg{ID: "a"})
	if a.revealed != 1 {
		t.Fatalf("revisiting a section re-fired its reveal")
	}
}

func TestToastExpiryIsIdentityKeyed(t *testing.T) {
	m := testModel(&stubSection{id: "a", title: "A", height: 4})
	m, cmd := step(t, m, ToastMsg{Text: "first"})
	if cmd == nil {
		t.Fatalf("toast should arm an expiry timer")
	}
	first, ok := m.newestToast()
	if !ok || first.text != "first" {
		t.Fatalf("newest toast = %+v", first)
	}
	m, _ = step(t, m, ToastMsg{Text: "second"})

	// the first toast's expiry must not dismiss the second
	m, _ = step(t, m, ToastExpiredMsg{ID: first.id})
	newest, ok := m.newestToast()
	if !ok || newest.text != "second" {
		t.Fatalf("after first expiry newest = %+v, want second", newest)
	}
	m, _ = step(t, m, ToastExpiredMsg{ID: newest.id})
	if _, ok := m.newestToast(); ok {
		t.Fatalf("all toasts expired but one remains")
	}
}

func TestNilKeyRegistryDefaultsToEmpty(t *testing.T) {
	m := NewModel("showdeck", []Section{&stubSection{id: "a", title: "A", height: 4}}, nil, nil)
	if m.Keys() == nil {
		t.Fatalf("nil registry should default to an empty one")
	}
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	// nothing is bound, so a key press falls through without effect
	m, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd != nil {
		t.Fatalf("unbound key should not produce a command")
	}
	if m.View() == "" {
		t.Fatalf("view should still render")
	}
}

func TestQuitKey(t *testing.T) {
	m := testModel(&stubSection{id: "a", title: "A", height: 4})
	_, cmd := step(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("q should quit")
	}
}

func TestViewRendersAllChrome(t *testing.T) {
	m := testModel(&stubSection{id: "a", title: "Alpha", height: 4})
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	out := m.View()
	if out == "" {
		t.Fatalf("empty view")
	}
	lines := len(strings.Split(out, "\n"))
	if lines != 24 {
		t.Fatalf("view height = %d lines, want 24", lines)
	}
}
