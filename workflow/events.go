package workflow

import "github.com/openclaw/qrgen/theme"

// Event is a user action or a settled side effect.
type Event interface {
	event()
}

// EditURL replaces the address text while in PhaseInput.
type EditURL struct{ Text string }

// Submit validates Text and, if valid, asks for an artifact.
type Submit struct{ Text string }

// Encoded settles a pending Encode command.
type Encoded struct {
	Artifact *Artifact
	Err      error
}

// Reset discards the artifact and returns to PhaseInput.
type Reset struct{}

// RequestDownload commits with a known filename or opens the prompt.
type RequestDownload struct{}

// EditFilename replaces the prompt's filename with a sanitized Raw.
type EditFilename struct{ Raw string }

// ConfirmDownload commits the prompt when the filename is non-empty.
type ConfirmDownload struct{}

// CancelDownload closes the prompt and drops the filename.
type CancelDownload struct{}

// ToggleTheme flips the presentation mode.
type ToggleTheme struct{}

func (EditURL) event()         {}
func (Submit) event()          {}
func (Encoded) event()         {}
func (Reset) event()           {}
func (RequestDownload) event() {}
func (EditFilename) event()    {}
func (ConfirmDownload) event() {}
func (CancelDownload) event()  {}
func (ToggleTheme) event()     {}

// Command is a side effect requested by Step.
type Command interface {
	command()
}

// Encode asks the encoder for an artifact of Address.
type Encode struct{ Address string }

// SaveFile asks the host to save Artifact under Filename.
type SaveFile struct {
	Filename string
	Artifact *Artifact
}

// SetTheme asks the host to apply Mode to the process-wide theme.
type SetTheme struct{ Mode theme.Mode }

func (Encode) command()   {}
func (SaveFile) command() {}
func (SetTheme) command() {}
