package core

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)
	headerNavStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Background(colorMantle)
	headerNavOnStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Background(colorMantle).
				Bold(true)
	navSepStyle = lipgloss.NewStyle().
			Foreground(colorBorder).
			Background(colorMantle)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	toastStyle = lipgloss.NewStyle().
			Foreground(colorMantle).
			Background(colorAccent).
			Padding(0, 1)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)
)
