package widgets

import "github.com/charmbracelet/harmonica"

type Spring = harmonica.Spring

// NewSlideSpring is the shared motion curve for sliding chrome. Slightly
// underdamped so the rail overshoots a hair and settles.
func NewSlideSpring() Spring {
	return harmonica.NewSpring(harmonica.FPS(30), 7.0, 0.85)
}
