package core

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = m.contentWidth()
		m.viewport.Height = m.bodyHeight()
		m.progress.Width = max(1, m.width)
		m.recomputeTops()
		m.viewport.SetContent(m.buildContent())
		m.focusFromScroll()
		// Layout changed under every control; recompute on the next frame,
		// coalescing a continuous resize into one paint.
		return m, tea.Batch(m.frames.Schedule(), m.revealVisible())

	case FrameMsg:
		if !m.frames.Flush() {
			return m, nil
		}
		for _, s := range m.sections {
			if h, ok := s.(SegmentHolder); ok {
				h.Control().RecomputeGeometry()
			}
		}
		return m, (&m).scheduleAnim()

	case AnimTickMsg:
		m.animPending = false
		for _, s := range m.sections {
			if a, ok := s.(Animator); ok && a.Animating() {
				a.Tick(msg.At)
			}
		}
		return m, (&m).scheduleAnim()

	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil

	case ToastMsg:
		return m, (&m).addToast(msg.Text)

	case ToastExpiredMsg:
		(&m).expireToast(msg.ID)
		return m, nil

	case ScrollToSectionMsg:
		return m, (&m).scrollToSection(msg.ID)

	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil

	case PopScreenMsg:
		m.screens.Pop()
		return m, nil

	case tea.MouseMsg:
		return m, (&m).handleMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		if top := m.screens.Top(); top != nil {
			next, cmd, pop := top.Update(msg)
			if pop {
				m.screens.Pop()
				return m, cmd
			}
			if next != nil {
				m.screens.items[len(m.screens.items)-1] = next
			}
			return m, cmd
		}

		scope := m.ActiveScope()
		action := m.keys.ActionFor(msg, scope)
		switch action {
		case ActionQuit:
			m.quitting = true
			return m, tea.Quit
		case ActionJump:
			if m.OpenPalette != nil {
				m.screens.Push(m.OpenPalette(&m))
			}
			return m, nil
		case ActionCopyInstall:
			if m.CopyInstall != nil {
				return m, m.CopyInstall(&m)
			}
			return m, nil
		case ActionSegmentNext, ActionSegmentPrev:
			if h, ok := m.FocusedSection().(SegmentHolder); ok {
				if h.Control().HandleKey(action) {
					m.logger.Debug("segment key",
						zap.String("section", m.FocusedSection().ID()),
						zap.String("action", action),
						zap.Int("active", h.Control().ActiveIndex()))
					return m, (&m).scheduleAnim()
				}
			}
			return m, nil
		case ActionScrollDown:
			m.viewport.LineDown(1)
			return m, (&m).afterScroll()
		case ActionScrollUp:
			m.viewport.LineUp(1)
			return m, (&m).afterScroll()
		case ActionPageDown:
			m.viewport.HalfViewDown()
			return m, (&m).afterScroll()
		case ActionPageUp:
			m.viewport.HalfViewUp()
			return m, (&m).afterScroll()
		case ActionTop:
			m.viewport.GotoTop()
			return m, (&m).afterScroll()
		case ActionBottom:
			m.viewport.GotoBottom()
			return m, (&m).afterScroll()
		}

		if sec := m.FocusedSection(); sec != nil {
			return m, sec.Update(&m, msg)
		}
		return m, nil
	}

	if top := m.screens.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			m.screens.Pop()
			return m, cmd
		}
		if next != nil {
			m.screens.items[len(m.screens.items)-1] = next
		}
		return m, cmd
	}
	if sec := m.FocusedSection(); sec != nil {
		return m, sec.Update(&m, msg)
	}
	return m, nil
}

func (m *Model) afterScroll() tea.Cmd {
	m.focusFromScroll()
	return m.revealVisible()
}

func (m *Model) scrollToSection(id string) tea.Cmd {
	for i, s := range m.sections {
		if s.ID() == id {
			m.viewport.SetContent(m.buildContent())
			m.viewport.SetYOffset(m.tops[i])
			m.focused = i
			m.SetStatus("Jumped to " + s.Title())
			return m.revealVisible()
		}
	}
	return StatusCmd("No section " + id)
}

// handleMouse translates screen coordinates into section-local ones and
// dispatches. Wheel events scroll the page wherever the pointer is.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.screens.Top() != nil {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.viewport.LineUp(3)
		return m.afterScroll()
	case tea.MouseButtonWheelDown:
		m.viewport.LineDown(3)
		return m.afterScroll()
	}

	y := msg.Y - m.bodyTop()
	if y < 0 || y >= m.viewport.Height {
		m.clearHover()
		return nil
	}
	contentY := y + m.viewport.YOffset
	idx := m.sectionAt(contentY)
	if idx < 0 {
		m.clearHover()
		return nil
	}
	if m.lastHover >= 0 && m.lastHover != idx {
		m.clearHover()
	}
	m.lastHover = idx
	if mt, ok := m.sections[idx].(MouseTarget); ok {
		handled, cmd := mt.HandleMouse(m, msg.X, contentY-m.tops[idx], msg)
		if handled {
			return tea.Batch(cmd, m.scheduleAnim())
		}
		return cmd
	}
	return nil
}

// clearHover tells the section the pointer left that any hover preview must
// snap back to the true active item.
func (m *Model) clearHover() {
	if m.lastHover < 0 || m.lastHover >= len(m.sections) {
		m.lastHover = -1
		return
	}
	if mt, ok := m.sections[m.lastHover].(MouseTarget); ok {
		mt.ClearHover()
	}
	m.lastHover = -1
}
