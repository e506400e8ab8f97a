package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openclaw/qrgen/workflow"
)

// Files writes saved PNGs into Dir. It implements workflow.Saver.
type Files struct {
	Dir string
}

// Save writes the artifact to Dir/filename, replacing any existing file.
func (f Files) Save(_ context.Context, artifact *workflow.Artifact, filename string) error {
	if filepath.Base(filename) != filename {
		return fmt.Errorf("save file: %q is not a plain file name", filename)
	}
	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir %s: %w", f.Dir, err)
	}
	path := filepath.Join(f.Dir, filename)
	if err := os.WriteFile(path, artifact.PNG, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
