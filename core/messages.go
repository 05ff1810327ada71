package core

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

type StatusMsg struct {
	Text  string
	IsErr bool
}

// ScrollToSectionMsg asks the page to bring a section to the top of the
// viewport, e.g. after a palette selection.
type ScrollToSectionMsg struct {
	ID string
}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

// AnimTickMsg paces content animation (typewriter, count-up). Scheduled only
// while something is still animating.
type AnimTickMsg struct {
	At time.Time
}

// ToastMsg raises a transient notice, e.g. clipboard feedback.
type ToastMsg struct {
	Text string
}

// ToastExpiredMsg removes the toast with the given ID. Identity matters:
// expiry of an older toast must not dismiss a newer one.
type ToastExpiredMsg struct {
	ID uuid.UUID
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

func ToastCmd(text string) tea.Cmd {
	return func() tea.Msg { return ToastMsg{Text: text} }
}

func ScrollToSectionCmd(id string) tea.Cmd {
	return func() tea.Msg { return ScrollToSectionMsg{ID: id} }
}
