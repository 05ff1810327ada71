package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var popupCardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(1, 2)

// RenderPopup draws popup in a rounded card centered over base. Rows outside
// the card are the base's, untouched; within a card row the base shows
// through on both sides. A card larger than the box is clipped to it.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	card := strings.Split(popupCardStyle.Render(popup), "\n")
	if len(card) > height {
		card = card[:height]
	}
	cardW := 0
	for _, line := range card {
		cardW = max(cardW, ansi.StringWidth(line))
	}
	cardW = min(cardW, width)
	x := (width - cardW) / 2
	y := (height - len(card)) / 2

	out := strings.Split(FitHeight(base, height), "\n")
	for i, line := range card {
		row := padRight(out[y+i], width)
		out[y+i] = ansi.Truncate(row, x, "") + padRight(line, cardW) + cutLeft(row, x+cardW)
	}
	return strings.Join(out, "\n")
}
