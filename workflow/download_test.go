package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Linked In!123", want: "LinkedIn123"},
		{in: "my_qr-code", want: "my_qr-code"},
		{in: "../../etc/passwd", want: "etcpasswd"},
		{in: "café.png", want: "cafpng"},
		{in: "   ", want: ""},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Sanitize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Sanitize(got), "idempotent")
			assert.Regexp(t, `^[A-Za-z0-9_-]*$`, got)
		})
	}
}

func TestRequestDownloadOpensPrompt(t *testing.T) {
	s, cmds := Step(generated(t), RequestDownload{})
	assert.Empty(t, cmds)
	assert.True(t, s.Prompting)
	assert.Empty(t, s.Filename)
	assert.Same(t, testArtifact, s.Artifact)
}

func TestRequestDownloadNeedsArtifact(t *testing.T) {
	s, cmds := Step(State{}, RequestDownload{})
	assert.Empty(t, cmds)
	assert.False(t, s.Prompting)
}

func TestEditFilenameSanitizes(t *testing.T) {
	s := prompting(t, "")
	s, cmds := Step(s, EditFilename{Raw: "Linked In!123"})
	assert.Empty(t, cmds)
	assert.Equal(t, "LinkedIn123", s.Filename)

	// Ignored outside the prompt.
	g := generated(t)
	next, _ := Step(g, EditFilename{Raw: "logo"})
	assert.Empty(t, next.Filename)
}

func TestConfirmDownloadEmptyIsHeld(t *testing.T) {
	s := prompting(t, "!!!")
	next, cmds := Step(s, ConfirmDownload{})

	assert.Empty(t, cmds)
	assert.True(t, next.Prompting)
	assert.Same(t, testArtifact, next.Artifact)
	assert.Equal(t, PhaseGenerated, next.Phase)
}

func TestConfirmDownloadCommits(t *testing.T) {
	s := prompting(t, "logo")
	s, cmds := Step(s, ConfirmDownload{})

	assert.Equal(t, []Command{SaveFile{Filename: "logo.png", Artifact: testArtifact}}, cmds)
	assert.Equal(t, PhaseInput, s.Phase)
	assert.Nil(t, s.Artifact)
	assert.False(t, s.Prompting)
	assert.Empty(t, s.Filename)
}

func TestRequestDownloadWithChosenFilenameCommits(t *testing.T) {
	s := prompting(t, "logo")
	s, cmds := Step(s, RequestDownload{})

	assert.Equal(t, []Command{SaveFile{Filename: "logo.png", Artifact: testArtifact}}, cmds)
	assert.Equal(t, PhaseInput, s.Phase)
	assert.Nil(t, s.Artifact)
}

func TestCancelDownload(t *testing.T) {
	s := prompting(t, "half")
	s, cmds := Step(s, CancelDownload{})

	assert.Empty(t, cmds)
	assert.False(t, s.Prompting)
	assert.Empty(t, s.Filename)
	assert.Same(t, testArtifact, s.Artifact)
	assert.Equal(t, PhaseGenerated, s.Phase)

	// Cancelled filename is not reused by the next request.
	s, cmds = Step(s, RequestDownload{})
	assert.Empty(t, cmds)
	assert.True(t, s.Prompting)
}

func TestConfirmAndCancelIgnoredWithoutPrompt(t *testing.T) {
	g := generated(t)

	next, cmds := Step(g, ConfirmDownload{})
	assert.Empty(t, cmds)
	assert.Equal(t, g, next)

	next, cmds = Step(g, CancelDownload{})
	assert.Empty(t, cmds)
	assert.Equal(t, g, next)
}
