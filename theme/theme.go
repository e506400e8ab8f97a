// Package theme holds the process-wide light/dark presentation flag.
package theme

import (
	"fmt"
	"strings"
	"sync"
)

// Mode is the presentation mode consumed by the rendering layers.
type Mode int

const (
	Light Mode = iota
	Dark
)

// String returns the lower-case mode name used in config and JSON.
func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Toggle returns the opposite mode.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	parsed, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMode parses "light" or "dark" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "light":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return Light, fmt.Errorf("unknown theme %q", s)
}

// Palette is the set of colours a host paints with for a given mode.
type Palette struct {
	Background       string `json:"background"`
	Foreground       string `json:"foreground"`
	ButtonBackground string `json:"button_background"`
	ButtonForeground string `json:"button_foreground"`
}

// Palette returns the colours for m.
func (m Mode) Palette() Palette {
	if m == Dark {
		return Palette{
			Background:       "#121212",
			Foreground:       "#ffffff",
			ButtonBackground: "#ffffff",
			ButtonForeground: "#01056F",
		}
	}
	return Palette{
		Background:       "#ffffff",
		Foreground:       "#01056F",
		ButtonBackground: "#01056F",
		ButtonForeground: "#ffffff",
	}
}

// ToggleLabel is the caption of the button that switches away from m.
func (m Mode) ToggleLabel() string {
	if m == Dark {
		return "Switch to Light Mode"
	}
	return "Switch to Dark Mode"
}

// Controller guards a single Mode. It is safe for concurrent use.
type Controller struct {
	mu   sync.RWMutex
	mode Mode
}

// Global is the process-wide theme. It is initialised once and never torn down.
var Global = NewController(Light)

// NewController returns a Controller starting in mode.
func NewController(mode Mode) *Controller {
	return &Controller{mode: mode}
}

// Current returns the active mode.
func (c *Controller) Current() Mode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// Set replaces the active mode.
func (c *Controller) Set(mode Mode) {
	c.mu.Lock()
	c.mode = mode
	c.mu.Unlock()
}

// Toggle flips the active mode and returns the new one.
func (c *Controller) Toggle() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = c.mode.Toggle()
	return c.mode
}

// CompareAndSwap sets the mode to next only if it is still old, and reports
// whether it did.
func (c *Controller) CompareAndSwap(old, next Mode) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != old {
		return false
	}
	c.mode = next
	return true
}
