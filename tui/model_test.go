package tui

import (
	"context"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclaw/qrgen/qr"
	"github.com/openclaw/qrgen/theme"
	"github.com/openclaw/qrgen/workflow"
)

type recordingSaver struct{ names []string }

func (r *recordingSaver) Save(_ context.Context, _ *workflow.Artifact, filename string) error {
	r.names = append(r.names, filename)
	return nil
}

func newTestModel(t *testing.T) (Model, *recordingSaver, *theme.Controller) {
	t.Helper()
	m, saver, themes, _ := newTestModelAt(t, qrcode.Medium)
	return m, saver, themes
}

func newTestModelAt(t *testing.T, level qrcode.RecoveryLevel) (Model, *recordingSaver, *theme.Controller, *workflow.Controller) {
	t.Helper()
	saver := &recordingSaver{}
	themes := theme.NewController(theme.Light)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctrl := workflow.NewController(qr.NewEncoder(128, level), themes, log, saver)
	return NewModel(ctrl), saver, themes, ctrl
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(k)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	ctrlT = tea.KeyMsg{Type: tea.KeyCtrlT}
)

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestInvalidSubmitShowsError(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = typeText(t, m, "example")
	assert.Equal(t, "example", m.Snapshot().URL)

	m = press(t, m, enter)
	assert.Equal(t, workflow.PhaseInput, m.Snapshot().Phase)
	assert.Equal(t, workflow.InvalidURLMessage, m.Snapshot().Error)
	assert.Contains(t, m.View(), workflow.InvalidURLMessage)
}

func TestGenerateAndDownload(t *testing.T) {
	m, saver, _ := newTestModel(t)

	m = typeText(t, m, "www.example.com")
	m = press(t, m, enter)
	require.Equal(t, workflow.PhaseGenerated, m.Snapshot().Phase)
	assert.NotEmpty(t, m.qr)
	assert.Contains(t, m.View(), "Download QR Code")

	m = press(t, m, key('d'))
	require.True(t, m.Snapshot().Prompting)

	m = typeText(t, m, "my logo!")
	assert.Equal(t, "mylogo", m.Snapshot().Filename)
	assert.Equal(t, "mylogo", m.filename.Value())

	m = press(t, m, enter)
	assert.Equal(t, []string{"mylogo.png"}, saver.names)
	assert.Equal(t, workflow.PhaseInput, m.Snapshot().Phase)
	assert.False(t, m.Snapshot().HasArtifact)
	assert.Empty(t, m.qr)
	assert.Empty(t, m.url.Value())
	assert.Contains(t, m.View(), "Saved mylogo.png")
}

func TestPromptEmptyConfirmAndCancel(t *testing.T) {
	m, saver, _ := newTestModel(t)

	m = typeText(t, m, "https://go.dev")
	m = press(t, m, enter, key('d'))
	m = typeText(t, m, "!!")
	m = press(t, m, enter)

	assert.Empty(t, saver.names)
	assert.True(t, m.Snapshot().Prompting)

	m = press(t, m, esc)
	assert.False(t, m.Snapshot().Prompting)
	assert.True(t, m.Snapshot().HasArtifact)

	m = press(t, m, key('r'))
	assert.Equal(t, workflow.PhaseInput, m.Snapshot().Phase)
}

func TestToggleThemeKeepsPrompt(t *testing.T) {
	m, _, themes := newTestModel(t)

	m = typeText(t, m, "https://go.dev")
	m = press(t, m, enter, key('d'))
	m = typeText(t, m, "part")

	m = press(t, m, ctrlT)
	assert.Equal(t, theme.Dark, themes.Current())
	assert.Equal(t, theme.Dark, m.Snapshot().Theme)
	assert.True(t, m.Snapshot().Prompting)
	assert.Equal(t, "part", m.Snapshot().Filename)
	assert.Contains(t, m.View(), "Switch to Light Mode")
}

func TestShowsEncodedArtifact(t *testing.T) {
	m, _, _, ctrl := newTestModelAt(t, qrcode.Highest)

	m = typeText(t, m, "https://go.dev")
	m = press(t, m, enter)
	art := ctrl.Artifact()
	require.NotNil(t, art)
	assert.Equal(t, qr.Text(art.Modules, false), m.qr)

	medium, err := qrcode.New("https://go.dev", qrcode.Medium)
	require.NoError(t, err)
	assert.NotEqual(t, qr.Text(medium.Bitmap(), false), m.qr)

	m = press(t, m, ctrlT)
	assert.Equal(t, qr.Text(art.Modules, true), m.qr)
	assert.Same(t, art, ctrl.Artifact())
}

func TestQuitKeys(t *testing.T) {
	m, _, _ := newTestModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
