// Package qr renders QR codes with go-qrcode.
package qr

import (
	"context"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"

	"github.com/openclaw/qrgen/workflow"
)

// DefaultSize is the PNG edge length in pixels used when none is configured.
const DefaultSize = 256

// ParseLevel maps a config name to a recovery level.
func ParseLevel(s string) (qrcode.RecoveryLevel, error) {
	switch strings.ToLower(s) {
	case "low":
		return qrcode.Low, nil
	case "", "medium":
		return qrcode.Medium, nil
	case "high":
		return qrcode.High, nil
	case "highest":
		return qrcode.Highest, nil
	}
	return qrcode.Medium, fmt.Errorf("unknown recovery level %q", s)
}

// Encoder produces PNG artifacts. It implements workflow.Encoder.
type Encoder struct {
	Size  int
	Level qrcode.RecoveryLevel
}

// NewEncoder returns an Encoder; a non-positive size falls back to DefaultSize.
func NewEncoder(size int, level qrcode.RecoveryLevel) *Encoder {
	if size <= 0 {
		size = DefaultSize
	}
	return &Encoder{Size: size, Level: level}
}

// Encode renders address as a PNG and keeps the module bitmap alongside it.
func (e *Encoder) Encode(_ context.Context, address string) (*workflow.Artifact, error) {
	q, err := qrcode.New(address, e.Level)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	png, err := q.PNG(e.Size)
	if err != nil {
		return nil, fmt.Errorf("render png: %w", err)
	}
	return &workflow.Artifact{Address: address, PNG: png, Modules: q.Bitmap()}, nil
}

// Text draws modules with half-block characters, two rows per line. Dark
// modules print as blank cells unless inverse is set, which suits a light
// foreground on a dark terminal.
func Text(modules [][]bool, inverse bool) string {
	var b strings.Builder
	for y := 0; y < len(modules); y += 2 {
		for x := range modules[y] {
			topBlank := modules[y][x] != inverse
			bottomBlank := true
			if y+1 < len(modules) {
				bottomBlank = modules[y+1][x] != inverse
			}
			switch {
			case topBlank && bottomBlank:
				b.WriteString(" ")
			case topBlank:
				b.WriteString("▄")
			case bottomBlank:
				b.WriteString("▀")
			default:
				b.WriteString("█")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
