package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Widget interface {
	Render(width, height int) string
}

// RenderFunc adapts a plain function to the Widget interface.
type RenderFunc func(width, height int) string

func (f RenderFunc) Render(width, height int) string { return f(width, height) }

// Text is a fixed block of pre-styled lines, clipped to the given box.
type Text struct {
	Lines []string
	Style lipgloss.Style
}

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := t.Lines
	if len(lines) > height {
		lines = lines[:height]
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = t.Style.Render(padRight(line, width))
	}
	return strings.Join(out, "\n")
}

// Card wraps content in the rounded panel chrome used for tab panels.
type Card struct {
	Title   string
	Content string
	Accent  lipgloss.TerminalColor
}

func (c Card) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c.Accent).
		Padding(0, 1).
		Width(max(1, width-2)).
		Height(max(1, height-2))
	body := c.Content
	if c.Title != "" {
		body = lipgloss.NewStyle().Bold(true).Foreground(c.Accent).Render(c.Title) + "\n" + body
	}
	return style.Render(body)
}

// BulletList renders titled bullet items, one per row.
type BulletList struct {
	Title  string
	Bullet string
	Items  []string
	Style  lipgloss.Style
}

func (l BulletList) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	bullet := l.Bullet
	if bullet == "" {
		bullet = "-"
	}
	rows := make([]string, 0, len(l.Items)+1)
	if l.Title != "" {
		rows = append(rows, lipgloss.NewStyle().Bold(true).Render(l.Title))
	}
	for _, item := range l.Items {
		rows = append(rows, l.Style.Render(bullet+" "+item))
	}
	if len(rows) > height {
		rows = rows[:height]
	}
	return strings.Join(rows, "\n")
}
