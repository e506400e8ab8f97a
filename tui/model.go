// Package tui is a terminal front end for the QR workflow.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/openclaw/qrgen/qr"
	"github.com/openclaw/qrgen/theme"
	"github.com/openclaw/qrgen/workflow"
)

// Model is the bubbletea model. It keeps no workflow state of its own: every
// key that matters becomes a workflow event and the view is redrawn from the
// resulting snapshot.
type Model struct {
	ctrl *workflow.Controller
	snap workflow.Snapshot

	url      textinput.Model
	filename textinput.Model

	qr     string
	saved  string
	styles styles
}

// NewModel returns a Model driving ctrl.
func NewModel(ctrl *workflow.Controller) Model {
	url := textinput.New()
	url.Placeholder = "E.g. www.linkedin.com"
	url.CharLimit = 2048
	url.Width = 50
	url.Focus()

	filename := textinput.New()
	filename.Placeholder = "E.g. Linkedin_qrcode"
	filename.CharLimit = 100
	filename.Width = 40

	snap := ctrl.Snapshot()
	return Model{
		ctrl:     ctrl,
		snap:     snap,
		url:      url,
		filename: filename,
		styles:   stylesFor(snap.Theme),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+t":
		return m.dispatch(workflow.ToggleTheme{}), nil
	}

	switch {
	case m.snap.Prompting:
		return m.handlePromptKey(key)
	case m.snap.Phase == workflow.PhaseGenerated:
		return m.handleGeneratedKey(key)
	default:
		return m.handleInputKey(key)
	}
}

func (m Model) handleInputKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		return m.dispatch(workflow.Submit{Text: m.url.Value()}), nil
	}

	var cmd tea.Cmd
	m.url, cmd = m.url.Update(key)
	m.saved = ""
	return m.dispatch(workflow.EditURL{Text: m.url.Value()}), cmd
}

func (m Model) handleGeneratedKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "q", "esc":
		return m, tea.Quit
	case "d":
		return m.dispatch(workflow.RequestDownload{}), nil
	case "r":
		return m.dispatch(workflow.Reset{}), nil
	}
	return m, nil
}

func (m Model) handlePromptKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		return m.dispatch(workflow.CancelDownload{}), nil
	case tea.KeyEnter:
		return m.dispatch(workflow.ConfirmDownload{}), nil
	}

	var cmd tea.Cmd
	m.filename, cmd = m.filename.Update(key)
	return m.dispatch(workflow.EditFilename{Raw: m.filename.Value()}), cmd
}

// dispatch sends ev to the controller and syncs the inputs with the result.
func (m Model) dispatch(ev workflow.Event) Model {
	prev := m.snap
	snap, cmds := m.ctrl.Dispatch(context.Background(), ev)
	m.snap = snap

	for _, cmd := range cmds {
		if save, ok := cmd.(workflow.SaveFile); ok {
			m.saved = save.Filename
		}
	}

	if snap.Theme != prev.Theme {
		m.styles = stylesFor(snap.Theme)
	}

	if snap.HasArtifact && (!prev.HasArtifact || snap.Theme != prev.Theme) {
		if art := m.ctrl.Artifact(); art != nil {
			m.qr = qr.Text(art.Modules, snap.Theme == theme.Dark)
		}
	}
	if !snap.HasArtifact {
		m.qr = ""
	}

	if m.url.Value() != snap.URL {
		m.url.SetValue(snap.URL)
	}
	if m.filename.Value() != snap.Filename {
		m.filename.SetValue(snap.Filename)
	}

	switch {
	case snap.Prompting:
		m.url.Blur()
		m.filename.Focus()
	case snap.Phase == workflow.PhaseInput:
		m.filename.Blur()
		m.url.Focus()
	default:
		m.url.Blur()
		m.filename.Blur()
	}
	return m
}

// Snapshot exposes the last rendered workflow view.
func (m Model) Snapshot() workflow.Snapshot {
	return m.snap
}

// Run starts the terminal UI on ctrl and blocks until the user quits.
func Run(ctrl *workflow.Controller) error {
	p := tea.NewProgram(NewModel(ctrl), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
