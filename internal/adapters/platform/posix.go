package platform

import (
	"io/fs"
	"path/filepath"

	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/zerr"
)

// Posix implements ports.Platform for Linux, macOS and other Unix systems.
type Posix struct {
	goos string
}

// OS implements ports.Platform.
func (p *Posix) OS() string { return p.goos }

// ListSeparator implements ports.Platform.
func (p *Posix) ListSeparator() string { return ":" }

// ExecutableSuffix implements ports.Platform.
func (p *Posix) ExecutableSuffix() string { return "" }

// CaseInsensitiveEnv implements ports.Platform.
func (p *Posix) CaseInsensitiveEnv() bool { return false }

// RepairPath makes path absolute and clean. POSIX paths need no other repair.
// File URLs are accepted in place of a path.
func (p *Posix) RepairPath(path string) (string, error) {
	if path == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrPathResolution, "empty path"), "path", path)
	}
	plain, err := unwrapURL(path)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(plain)
	if err != nil {
		return "", pathError(err, path)
	}
	return abs, nil
}

// IsExecutable reports a regular file with any execute bit set.
func (p *Posix) IsExecutable(info fs.FileInfo) bool {
	m := info.Mode()
	return m.IsRegular() && m&0o111 != 0
}

// WhereUtility implements ports.Platform. POSIX scans directories directly.
func (p *Posix) WhereUtility(domain.Environment) (string, bool) { return "", false }

// SupportsToolDependencies implements ports.Platform.
func (p *Posix) SupportsToolDependencies() bool { return true }

// ShellLookup finds bash on the search path.
func (p *Posix) ShellLookup() (string, func(string) string) {
	return "bash", func(found string) string { return found }
}

// ScriptCompiler implements ports.Platform.
func (p *Posix) ScriptCompiler() []string {
	if p.goos == Darwin {
		return []string{"xcrun", "swiftc"}
	}
	return []string{"swiftc"}
}

// IsTrackableDependency implements ports.Platform. Every path is trackable.
func (p *Posix) IsTrackableDependency(string) bool { return true }
