package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/showdeck/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := renderHeader(m)
	rail := m.progress.ViewAs(m.viewport.ScrollPercent())
	status := RenderStatusBar(m)
	footer := RenderFooter(m)

	m.viewport.SetContent(m.buildContent())
	body := m.viewport.View()
	if top := m.screens.Top(); top != nil {
		body = widgets.RenderPopup(body, top.View(max(24, m.width-12), max(8, m.height-8)), m.contentWidth(), m.bodyHeight())
	}
	body = widgets.FitHeight(body, m.bodyHeight())

	view := strings.Join([]string{header, rail, status, body, footer}, "\n")
	view = widgets.FitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

// buildContent stacks the sections at their declared heights so the offset
// table stays truthful for scrolling and mouse hit-testing.
func (m Model) buildContent() string {
	width := m.contentWidth()
	parts := make([]string, 0, len(m.sections)*2)
	for i, s := range m.sections {
		h := max(1, s.Height(width))
		parts = append(parts, widgets.FitHeight(s.Build(&m, width).Render(width, h), h))
		if i < len(m.sections)-1 {
			for g := 0; g < sectionGap; g++ {
				parts = append(parts, "")
			}
		}
	}
	return strings.Join(parts, "\n")
}

// renderHeader puts the product name left and section nav right; narrow
// terminals collapse the nav to the focused section only.
func renderHeader(m Model) string {
	left := headerAppStyle.Render(m.Product)
	var right string
	if m.width < compactWidth {
		if sec := m.FocusedSection(); sec != nil {
			right = headerNavOnStyle.Render("≡ " + sec.Title())
		}
	} else {
		navs := make([]string, 0, len(m.sections))
		for i, s := range m.sections {
			if i == m.focused {
				navs = append(navs, headerNavOnStyle.Render(s.Title()))
			} else {
				navs = append(navs, headerNavStyle.Render(s.Title()))
			}
		}
		right = strings.Join(navs, navSepStyle.Render(" · "))
	}
	right = ansi.Truncate(right, max(1, m.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderHeaderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right)
}

func renderHeaderBar(style lipgloss.Style, width int, line string) string {
	line = ansi.Truncate(strings.ReplaceAll(line, "\n", " "), width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}
