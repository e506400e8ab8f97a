package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/openclaw/qrgen/workflow"
)

// View implements tea.Model.
func (m Model) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.title.Render("QR Code Generator"))
	b.WriteString("\n")
	b.WriteString(s.button.Render(m.snap.Theme.ToggleLabel()) + " ctrl+t")
	b.WriteString("\n\n")

	switch {
	case m.snap.Phase == workflow.PhaseInput:
		b.WriteString(m.url.View())
		b.WriteString("\n")
		if m.snap.Error != "" {
			b.WriteString(s.error.Render(m.snap.Error))
			b.WriteString("\n")
		}
		if m.saved != "" {
			b.WriteString(s.notice.Render("Saved " + m.saved))
			b.WriteString("\n")
		}
		b.WriteString(s.help.Render("enter generate • esc quit"))
	case m.snap.Prompting:
		modal := lipgloss.JoinVertical(lipgloss.Left,
			s.title.Render("Enter a file name for your QR Code"),
			m.filename.View(),
		)
		b.WriteString(s.modal.Render(modal))
		b.WriteString("\n")
		b.WriteString(s.help.Render("enter download • esc cancel"))
	default:
		b.WriteString(s.qr.Render(m.qr))
		b.WriteString("\n")
		b.WriteString(m.snap.Address)
		b.WriteString("\n\n")
		b.WriteString(s.button.Render("Download QR Code") + " d   " + s.button.Render("Reset") + " r")
		b.WriteString("\n")
		b.WriteString(s.help.Render("q quit"))
	}

	return s.page.Render(b.String())
}
