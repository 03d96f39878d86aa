// Package shell runs child processes: captured runs for executable lookup and
// streamed runs for emitted build commands.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"sort"
	"strings"

	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/plugkit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
	env    domain.Environment
}

// NewExecutor creates a new Executor whose children start from env.
func NewExecutor(logger ports.Logger, env domain.Environment) *Executor {
	return &Executor{
		logger: logger,
		env:    env,
	}
}

// Execute runs cmd with the environment snapshot overlaid by the command's
// own variables. Output goes to the logger line by line and to the writers.
func (e *Executor) Execute(ctx context.Context, cmd *domain.NativeCommand, stdout, stderr io.Writer) error {
	if cmd.Executable == "" {
		return zerr.With(zerr.Wrap(domain.ErrEmptyCommandName, "invalid command"), "command", cmd.DisplayName)
	}

	c := exec.CommandContext(ctx, cmd.Executable, cmd.Arguments...) //nolint:gosec // emitted command
	c.Env = resolveEnvironment(e.env.Entries(), cmd.Environment)

	stdoutLog := &logWriter{logger: e.logger, level: "info"}
	stderrLog := &logWriter{logger: e.logger, level: "error"}
	c.Stdout = io.MultiWriter(stdoutLog, orDiscard(stdout))
	c.Stderr = io.MultiWriter(stderrLog, orDiscard(stderr))

	err := c.Run()
	_ = stdoutLog.Close()
	_ = stderrLog.Close()

	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		failed := zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
		return zerr.With(failed, "command_line", cmd.CommandLine())
	}
	return nil
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

// logWriter forwards complete lines to the logger, buffering partial ones.
type logWriter struct {
	logger ports.Logger
	level  string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a trailing partial line.
func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")

	if w.level == "info" {
		w.logger.Info(msg)
	} else {
		w.logger.Error(zerr.New(msg))
	}
}

// resolveEnvironment overlays overrides on the system environment and
// returns the entries sorted by key.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range overrides {
		envMap[k] = v
	}

	keys := make([]string, 0, len(envMap))
	for k := range envMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	result := make([]string, 0, len(keys))
	for _, k := range keys {
		result = append(result, k+"="+envMap[k])
	}
	return result
}
