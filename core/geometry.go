package core

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameInterval paces geometry repaints and indicator animation.
const frameInterval = time.Second / 60

// FrameMsg fires when a scheduled visual frame is due.
type FrameMsg struct {
	At time.Time
}

// FrameScheduler coalesces geometry recomputes: at most one frame is pending
// at a time, so a burst of state-changing events (fast key repeat,
// continuous resize, hover churn) paints once. Plain pending-flag pattern;
// single event loop, no locking.
type FrameScheduler struct {
	pending bool
}

// Schedule requests a frame. Returns nil when one is already in flight.
func (s *FrameScheduler) Schedule() tea.Cmd {
	if s == nil || s.pending {
		return nil
	}
	s.pending = true
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg{At: t}
	})
}

// Flush marks the pending frame as delivered and reports whether one was
// actually in flight. Stale FrameMsgs (delivered after Flush) are dropped
// by the caller when this returns false.
func (s *FrameScheduler) Flush() bool {
	if s == nil || !s.pending {
		return false
	}
	s.pending = false
	return true
}

// Pending reports whether a frame is in flight.
func (s *FrameScheduler) Pending() bool {
	return s != nil && s.pending
}
