package core

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jask/showdeck/widgets"
)

// Section is one block of the page, stacked vertically inside the scroll
// viewport. Sections render to a fixed height for a given width so the page
// can compute scroll geometry without rendering.
type Section interface {
	ID() string
	Title() string
	Update(m *Model, msg tea.Msg) tea.Cmd
	Build(m *Model, width int) widgets.Widget
	Height(width int) int
}

// SegmentHolder is implemented by sections backed by a segmented control;
// the model routes segment key actions and resize recomputes through it.
type SegmentHolder interface {
	Control() *SegmentedControl
}

// MouseTarget receives mouse events in section-local coordinates. ClearHover
// is called when the pointer moves off the section entirely.
type MouseTarget interface {
	HandleMouse(m *Model, x, y int, msg tea.MouseMsg) (bool, tea.Cmd)
	ClearHover()
}

// Animator sections advance visual state on animation ticks. The model only
// schedules ticks while at least one section reports Animating.
type Animator interface {
	Animating() bool
	Tick(at time.Time)
}

// Revealable sections are told once when they first scroll into view.
type Revealable interface {
	Reveal() tea.Cmd
}

const (
	sectionGap    = 1
	toastDuration = 3 * time.Second
	animInterval  = time.Second / 30
	compactWidth  = 72
)

type toast struct {
	id   uuid.UUID
	text string
}

type Model struct {
	width    int
	height   int
	sections []Section
	focused  int
	tops     []int // content line each section starts at
	total    int   // content height

	viewport viewport.Model
	progress progress.Model
	frames   FrameScheduler

	keys    *KeyRegistry
	screens ScreenStack

	status      string
	statusErr   bool
	toasts      []toast
	revealed    map[string]bool
	lastHover   int
	animPending bool
	quitting    bool

	Product string
	Motion  bool
	logger  *zap.Logger

	// Host hooks, wired by the app package.
	OpenPalette func(m *Model) Screen
	CopyInstall func(m *Model) tea.Cmd
}

func NewModel(product string, sections []Section, keys *KeyRegistry, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	if keys == nil {
		keys = NewKeyRegistry(nil)
	}
	vp := viewport.New(100, 28)
	pb := progress.New(progress.WithoutPercentage(), progress.WithGradient(string(colorAccent), string(colorSuccess)))
	m := Model{
		width:     100,
		height:    32,
		sections:  sections,
		viewport:  vp,
		progress:  pb,
		keys:      keys,
		status:    "Ready",
		revealed:  map[string]bool{},
		lastHover: -1,
		Motion:    true,
		logger:    logger,
	}
	m.recomputeTops()
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.revealVisible()}
	if cmd := (&m).scheduleAnim(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if len(m.sections) == 0 {
		return "page"
	}
	return "section:" + m.sections[m.focused].ID()
}

func (m Model) FocusedSection() Section {
	if len(m.sections) == 0 {
		return nil
	}
	return m.sections[m.focused]
}

func (m Model) Sections() []Section {
	return m.sections
}

func (m Model) Keys() *KeyRegistry {
	return m.keys
}

func (m Model) Logger() *zap.Logger {
	return m.logger
}

func (m Model) Revealed(id string) bool {
	return m.revealed[id]
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

// recomputeTops rebuilds the section offset table from declared heights.
func (m *Model) recomputeTops() {
	m.tops = m.tops[:0]
	line := 0
	for i, s := range m.sections {
		m.tops = append(m.tops, line)
		line += max(1, s.Height(m.contentWidth()))
		if i < len(m.sections)-1 {
			line += sectionGap
		}
	}
	m.total = line
}

// sectionAt returns the index of the section containing content line y,
// -1 for the gap lines between sections.
func (m Model) sectionAt(y int) int {
	for i := len(m.sections) - 1; i >= 0; i-- {
		top := m.tops[i]
		if y < top {
			continue
		}
		if y < top+m.sections[i].Height(m.contentWidth()) {
			return i
		}
		return -1
	}
	return -1
}

func (m Model) contentWidth() int {
	return max(20, m.width)
}

// bodyTop is the screen row the viewport starts at: header bar, progress
// rail, status bar.
func (m Model) bodyTop() int { return 3 }

func (m Model) bodyHeight() int {
	return max(1, m.height-m.bodyTop()-1)
}

// focusFromScroll keeps the focused section in step with the viewport so
// segment keys always address what the reader is looking at.
func (m *Model) focusFromScroll() {
	anchor := m.viewport.YOffset + 1
	if idx := m.sectionAt(anchor); idx >= 0 {
		m.focused = idx
		return
	}
	// Anchor landed on a gap line; focus the next section down.
	for i, top := range m.tops {
		if top >= anchor {
			m.focused = i
			return
		}
	}
	if n := len(m.sections); n > 0 {
		m.focused = n - 1
	}
}

// revealVisible marks sections that have entered the viewport and fires
// their Reveal hooks once.
func (m *Model) revealVisible() tea.Cmd {
	var cmds []tea.Cmd
	limit := m.viewport.YOffset + m.viewport.Height
	for i, s := range m.sections {
		if m.revealed[s.ID()] || m.tops[i] >= limit {
			continue
		}
		m.revealed[s.ID()] = true
		if r, ok := s.(Revealable); ok {
			if cmd := r.Reveal(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		m.logger.Debug("section revealed", zap.String("section", s.ID()))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// scheduleAnim starts the animation tick loop if anything is animating and
// no tick is already in flight.
func (m *Model) scheduleAnim() tea.Cmd {
	if m.animPending || !m.anythingAnimating() {
		return nil
	}
	m.animPending = true
	return tea.Tick(animInterval, func(t time.Time) tea.Msg {
		return AnimTickMsg{At: t}
	})
}

func (m *Model) anythingAnimating() bool {
	for _, s := range m.sections {
		if a, ok := s.(Animator); ok && a.Animating() {
			return true
		}
	}
	return false
}

func (m *Model) addToast(text string) tea.Cmd {
	id := uuid.New()
	m.toasts = append(m.toasts, toast{id: id, text: text})
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

func (m *Model) expireToast(id uuid.UUID) {
	for i, t := range m.toasts {
		if t.id == id {
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			return
		}
	}
}

func (m Model) newestToast() (toast, bool) {
	if len(m.toasts) == 0 {
		return toast{}, false
	}
	return m.toasts[len(m.toasts)-1], true
}
