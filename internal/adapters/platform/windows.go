package platform

import (
	"io/fs"
	"os"
	"strings"

	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/zerr"
)

const defaultWindowsDir = `C:\Windows`

// Win implements ports.Platform for Windows. It compiles on every OS so its
// behaviour can be exercised anywhere; only full-path resolution needs the
// Windows API.
type Win struct{}

// OS implements ports.Platform.
func (w *Win) OS() string { return Windows }

// ListSeparator implements ports.Platform.
func (w *Win) ListSeparator() string { return ";" }

// ExecutableSuffix implements ports.Platform.
func (w *Win) ExecutableSuffix() string { return ".exe" }

// CaseInsensitiveEnv implements ports.Platform.
func (w *Win) CaseInsensitiveEnv() bool { return true }

// RepairPath converts the host's slash-separated, drive-prefixed form into a
// long-form absolute Windows path.
func (w *Win) RepairPath(path string) (string, error) {
	if path == "" {
		return "", zerr.With(zerr.Wrap(domain.ErrPathResolution, "empty path"), "path", path)
	}
	plain, err := unwrapURL(path)
	if err != nil {
		return "", err
	}
	full, err := fullPathName(trimDriveSlash(plain))
	if err != nil {
		return "", pathError(err, path)
	}
	return full, nil
}

// IsExecutable reports any regular file; Windows has no execute bit.
func (w *Win) IsExecutable(info fs.FileInfo) bool {
	return info.Mode().IsRegular()
}

// WhereUtility returns %WINDIR%\System32\where.exe.
func (w *Win) WhereUtility(env domain.Environment) (string, bool) {
	dir := env.Lookup("WINDIR")
	if dir == "" {
		dir = defaultWindowsDir
	}
	return strings.TrimRight(dir, `\/`) + `\System32\where.exe`, true
}

// SupportsToolDependencies implements ports.Platform. The host cannot depend
// on package-built tools here.
func (w *Win) SupportsToolDependencies() bool { return false }

// ShellLookup finds git and derives the bash that ships beside it.
func (w *Win) ShellLookup() (string, func(string) string) {
	return "git", func(found string) string {
		root := parentDir(parentDir(found))
		return root + `\bin\bash.exe`
	}
}

// ScriptCompiler implements ports.Platform.
func (w *Win) ScriptCompiler() []string { return []string{"swiftc"} }

// IsTrackableDependency rejects zero-byte placeholders, which the host
// reports as missing.
func (w *Win) IsTrackableDependency(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Size() != 0
}

func parentDir(p string) string {
	p = strings.TrimRight(p, `\/`)
	if i := strings.LastIndexAny(p, `\/`); i >= 0 {
		return p[:i]
	}
	return p
}
