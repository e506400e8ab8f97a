// Package workflow implements the generate/download/reset state machine.
//
// Step is a pure transition function: given the current State and an Event it
// returns the next State and the ordered Commands the host must carry out.
// Controller is the runtime that serialises events and executes commands.
package workflow

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/openclaw/qrgen/theme"
)

// EncodeFailedMessage is shown when a valid address could not be encoded.
const EncodeFailedMessage = "Could not generate a QR code for this url. Please try again."

// Phase is the top-level workflow state.
type Phase int

const (
	PhaseInput Phase = iota
	PhaseGenerated
)

// String returns the JSON name of the phase.
func (p Phase) String() string {
	if p == PhaseGenerated {
		return "generated"
	}
	return "input"
}

// MarshalText implements encoding.TextMarshaler.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Phase) UnmarshalText(b []byte) error {
	switch string(b) {
	case "input":
		*p = PhaseInput
	case "generated":
		*p = PhaseGenerated
	default:
		return fmt.Errorf("unknown phase %q", b)
	}
	return nil
}

// Artifact is a generated QR image. The workflow never looks inside it.
type Artifact struct {
	Address string
	PNG     []byte

	// Modules is the symbol the PNG was drawn from, quiet zone included,
	// true for dark modules. Text hosts render it instead of encoding again.
	Modules [][]bool
}

// DataURL returns the image as a data: URL usable in an img src attribute.
func (a *Artifact) DataURL() string {
	if a == nil {
		return ""
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(a.PNG)
}

// Encoder turns a validated address into an artifact.
type Encoder interface {
	Encode(ctx context.Context, address string) (*Artifact, error)
}

// Saver delivers a committed download. Save is fire-and-forget from the
// workflow's point of view: errors are logged, never fed back into state.
type Saver interface {
	Save(ctx context.Context, artifact *Artifact, filename string) error
}

// State is the complete workflow state.
type State struct {
	Phase Phase

	// URL is the raw address text. Meaningful only in PhaseInput.
	URL   string
	Error string

	// Encoding is true between a valid Submit and its Encoded result.
	Encoding bool

	// Artifact is non-nil iff Phase is PhaseGenerated.
	Artifact *Artifact

	// Prompting and Filename form the download sub-state of PhaseGenerated.
	Prompting bool
	Filename  string

	Theme theme.Mode
}

// Snapshot is the read-only view handed to rendering layers.
type Snapshot struct {
	Phase       Phase      `json:"phase"`
	URL         string     `json:"url"`
	Error       string     `json:"error"`
	Encoding    bool       `json:"encoding"`
	HasArtifact bool       `json:"has_artifact"`
	Address     string     `json:"address,omitempty"`
	Image       string     `json:"image,omitempty"`
	Prompting   bool       `json:"prompting"`
	Filename    string     `json:"filename"`
	Theme       theme.Mode `json:"theme"`
}

// Snapshot renders s for a host.
func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:     s.Phase,
		URL:       s.URL,
		Error:     s.Error,
		Encoding:  s.Encoding,
		Prompting: s.Prompting,
		Filename:  s.Filename,
		Theme:     s.Theme,
	}
	if s.Artifact != nil {
		snap.HasArtifact = true
		snap.Address = s.Artifact.Address
		snap.Image = s.Artifact.DataURL()
	}
	return snap
}

// FormVisible reports whether the address form should be shown.
func (s State) FormVisible() bool {
	return s.Phase == PhaseInput
}
