package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"

	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/plugkit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProcessRunner = (*Runner)(nil)

// Runner runs processes to completion, capturing both output streams.
type Runner struct{}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run starts the process, waits for it and returns its standard output.
func (r *Runner) Run(ctx context.Context, req domain.ProcessRequest) (string, error) {
	cmd := exec.CommandContext(ctx, req.Executable, req.Arguments...) //nolint:gosec // caller-resolved executable
	cmd.Env = req.Environment
	cmd.Dir = req.WorkingDirectory

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &domain.NonzeroExitError{
				ExitStatus:  exitErr.ExitCode(),
				Stdout:      stdout.String(),
				Stderr:      stderr.String(),
				CommandLine: req.CommandLine(),
			}
		}
		return "", zerr.With(zerr.Wrap(domain.ErrProcessStart, err.Error()), "executable", req.Executable)
	}

	return stdout.String(), nil
}
