package fs

import (
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/plugkit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Verifier = (*Verifier)(nil)

// Verifier provides functionality to verify the existence and freshness of files.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// VerifyOutputs checks if all output files exist in the given root directory.
// Absolute outputs ignore root.
func (v *Verifier) VerifyOutputs(root string, outputs []string) (bool, error) {
	for _, output := range outputs {
		path := resolve(root, output)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return false, nil
			}
			return false, zerr.With(zerr.Wrap(err, "failed to stat output"), "path", path)
		}
	}
	return true, nil
}

// Stale reports whether any output is missing or older than the newest input.
// A command without outputs is always stale.
func (v *Verifier) Stale(inputs, outputs []string) (bool, error) {
	if len(outputs) == 0 {
		return true, nil
	}

	var oldestOutput time.Time
	for i, output := range outputs {
		info, err := os.Stat(output)
		if err != nil {
			if os.IsNotExist(err) {
				return true, nil
			}
			return false, zerr.With(zerr.Wrap(err, "failed to stat output"), "path", output)
		}
		if i == 0 || info.ModTime().Before(oldestOutput) {
			oldestOutput = info.ModTime()
		}
	}

	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			// A vanished input cannot be compared; rerun.
			return true, nil //nolint:nilerr // missing inputs force a rerun
		}
		if info.ModTime().After(oldestOutput) {
			return true, nil
		}
	}
	return false, nil
}

func resolve(root, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}
