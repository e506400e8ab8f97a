package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/openclaw/qrgen/theme"
)

var errorColor = lipgloss.Color("#EF4444")

// styles is the set of lipgloss styles for one theme mode.
type styles struct {
	page   lipgloss.Style
	title  lipgloss.Style
	button lipgloss.Style
	error  lipgloss.Style
	notice lipgloss.Style
	help   lipgloss.Style
	modal  lipgloss.Style
	qr     lipgloss.Style
}

func stylesFor(mode theme.Mode) styles {
	p := mode.Palette()
	bg := lipgloss.Color(p.Background)
	fg := lipgloss.Color(p.Foreground)

	return styles{
		page: lipgloss.NewStyle().
			Background(bg).
			Foreground(fg).
			Padding(1, 2),
		title: lipgloss.NewStyle().
			Foreground(fg).
			Bold(true).
			PaddingBottom(1),
		button: lipgloss.NewStyle().
			Background(lipgloss.Color(p.ButtonBackground)).
			Foreground(lipgloss.Color(p.ButtonForeground)).
			Bold(true).
			Padding(0, 2),
		error: lipgloss.NewStyle().
			Foreground(errorColor),
		notice: lipgloss.NewStyle().
			Foreground(fg).
			Italic(true),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			PaddingTop(1),
		modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(fg).
			Padding(1, 2),
		qr: lipgloss.NewStyle().
			Foreground(fg),
	}
}
