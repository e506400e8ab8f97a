package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/openclaw/qrgen/theme"
)

// Controller owns the single workflow state and runs the commands Step emits.
// Dispatch calls are serialised, so each user action is one atomic step.
type Controller struct {
	mu      sync.Mutex
	state   State
	encoder Encoder
	theme   *theme.Controller
	savers  []Saver
	log     *slog.Logger
}

// NewController returns a Controller in PhaseInput. Saves are handed to every
// saver in order.
func NewController(encoder Encoder, themes *theme.Controller, log *slog.Logger, savers ...Saver) *Controller {
	if themes == nil {
		themes = theme.Global
	}
	return &Controller{
		state:   State{Phase: PhaseInput, Theme: themes.Current()},
		encoder: encoder,
		theme:   themes,
		savers:  savers,
		log:     log,
	}
}

// Snapshot returns the current view.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Theme = c.theme.Current()
	return c.state.Snapshot()
}

// Artifact returns the current artifact, or nil outside PhaseGenerated.
func (c *Controller) Artifact() *Artifact {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Artifact
}

// Dispatch applies ev and every event its commands settle, and returns the
// resulting snapshot together with all commands that were executed.
func (c *Controller) Dispatch(ctx context.Context, ev Event) (Snapshot, []Command) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Another host may have toggled the process-wide theme.
	c.state.Theme = c.theme.Current()

	var executed []Command
	queue := []Event{ev}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		var cmds []Command
		c.state, cmds = Step(c.state, next)
		for _, cmd := range cmds {
			executed = append(executed, cmd)
			if settled := c.run(ctx, cmd); settled != nil {
				queue = append(queue, settled)
			}
		}
	}

	c.log.Debug("workflow event handled", "event", fmt.Sprintf("%T", ev), "phase", c.state.Phase, "commands", len(executed))
	return c.state.Snapshot(), executed
}

// run executes cmd and returns the event that settles it, if any.
func (c *Controller) run(ctx context.Context, cmd Command) Event {
	switch cmd := cmd.(type) {
	case Encode:
		// A dispatched submit is not abandonable.
		art, err := c.encoder.Encode(context.WithoutCancel(ctx), cmd.Address)
		if err != nil {
			c.log.Warn("encode failed", "address", cmd.Address, "error", err)
		}
		return Encoded{Artifact: art, Err: err}
	case SaveFile:
		for _, s := range c.savers {
			if err := s.Save(ctx, cmd.Artifact, cmd.Filename); err != nil {
				c.log.Error("save failed", "filename", cmd.Filename, "error", err)
			}
		}
		c.log.Info("qr code saved", "filename", cmd.Filename, "address", cmd.Artifact.Address)
	case SetTheme:
		// The flag may be shared with other controllers. If one of them flipped
		// it since Dispatch read it, flip again so no toggle is lost.
		if !c.theme.CompareAndSwap(cmd.Mode.Toggle(), cmd.Mode) {
			c.state.Theme = c.theme.Toggle()
		}
		c.log.Debug("theme changed", "theme", c.state.Theme)
	}
	return nil
}
