// Package locator finds the executables build commands run.
package locator

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/plugkit/internal/core/ports"
	"go.trai.ch/zerr"
)

// windowsPathVariable is the spelling of the search path variable handed to where.exe.
const windowsPathVariable = "Path"

var _ ports.ExecutableLocator = (*Locator)(nil)

// Locator resolves command names against a search path and the toolchain.
type Locator struct {
	platform ports.Platform
	env      domain.Environment
	runner   ports.ProcessRunner
	scratch  ports.ScratchSpace
	logger   ports.Logger
}

// New creates a Locator for the process environment env.
func New(
	platform ports.Platform,
	env domain.Environment,
	runner ports.ProcessRunner,
	scratch ports.ScratchSpace,
	logger ports.Logger,
) *Locator {
	return &Locator{
		platform: platform,
		env:      env,
		runner:   runner,
		scratch:  scratch,
		logger:   logger,
	}
}

// SearchPath returns the process executable search path.
func (l *Locator) SearchPath() domain.SearchPath {
	return l.env.SearchPath(l.platform.ListSeparator())
}

// FirstExecutable returns the first executable named name in searchPath.
// The current directory is searched only if searchPath lists it.
func (l *Locator) FirstExecutable(searchPath domain.SearchPath, name string) (string, bool) {
	candidate := name
	if suffix := l.platform.ExecutableSuffix(); suffix != "" && !strings.HasSuffix(strings.ToLower(name), suffix) {
		candidate += suffix
	}

	for _, dir := range searchPath {
		path := filepath.Join(dir, candidate)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if l.platform.IsExecutable(info) {
			return path, true
		}
	}
	return "", false
}

// Locate returns the program that would run as command with searchPath as
// the executable search path. Where the platform requires it, the lookup is
// delegated to the system where utility running in an empty scratch
// directory below workDir.
func (l *Locator) Locate(ctx context.Context, workDir, command string, searchPath domain.SearchPath) (string, error) {
	where, indirect := l.platform.WhereUtility(l.env)
	if !indirect {
		if path, ok := l.FirstExecutable(searchPath, command); ok {
			return path, nil
		}
		return "", notFound(command, searchPath)
	}

	dir, err := l.scratch.Make(workDir)
	if err != nil {
		return "", err
	}
	defer l.scratch.Remove(dir)

	out, err := l.runner.Run(ctx, domain.ProcessRequest{
		Executable:       where,
		Arguments:        []string{command},
		Environment:      l.env.With(windowsPathVariable, searchPath.Join(";")),
		WorkingDirectory: dir,
	})
	if err != nil {
		var exitErr *domain.NonzeroExitError
		if errors.As(err, &exitErr) {
			return "", zerr.With(notFound(command, searchPath), "where_stderr", strings.TrimSpace(exitErr.Stderr))
		}
		return "", zerr.With(zerr.Wrap(err, "where lookup failed"), "command", command)
	}

	first, _, _ := strings.Cut(out, "\n")
	first = strings.TrimRight(first, "\r")
	if first == "" {
		return "", notFound(command, searchPath)
	}
	return first, nil
}

// ToolchainBinDirectory returns the bin directory of the toolchain whose
// plugin support directory is on the search path.
func (l *Locator) ToolchainBinDirectory() (string, bool) {
	for _, entry := range l.SearchPath() {
		if root, ok := trimPathSuffix(entry, domain.PluginSupportPathSuffix); ok {
			return filepath.Join(root, "bin"), true
		}
	}
	return "", false
}

// ToolchainExecutable returns the toolchain program invoked as command. It
// tries the toolchain bin directory, then the whole search path, then the
// tools the host provides, warning before each fallback.
func (l *Locator) ToolchainExecutable(ctx context.Context, host ports.Host, command string) (string, error) {
	if bin, ok := l.ToolchainBinDirectory(); ok {
		if path, ok := l.FirstExecutable(domain.SearchPath{bin}, command); ok {
			return path, nil
		}
		l.logger.Warn(command + " not found in toolchain directory " + bin + "; searching PATH")
	} else {
		l.logger.Warn("no toolchain directory on PATH; searching PATH for " + command)
	}

	path, err := l.Locate(ctx, host.WorkDirectory(), command, l.SearchPath())
	if err == nil {
		return path, nil
	}

	l.logger.Warn(command + " not found on PATH; asking the host")
	if path, hostErr := host.ToolPath(ctx, command); hostErr == nil {
		return path, nil
	}

	return "", zerr.With(zerr.Wrap(domain.ErrToolNotFound, err.Error()), "command", command)
}

func notFound(command string, searchPath domain.SearchPath) error {
	err := zerr.Wrap(domain.ErrExecutableNotFound, "no executable invoked as "+command)
	err = zerr.With(err, "command", command)
	return zerr.With(err, "search_path", []string(searchPath))
}

// trimPathSuffix removes the trailing components suffix from path. It
// reports false when path does not end with them.
func trimPathSuffix(path string, suffix []string) (string, bool) {
	root := filepath.Clean(path)
	for i := len(suffix) - 1; i >= 0; i-- {
		if filepath.Base(root) != suffix[i] {
			return "", false
		}
		root = filepath.Dir(root)
	}
	return root, true
}
