package ports

import (
	"io/fs"

	"go.trai.ch/plugkit/internal/core/domain"
)

// Platform captures everything that differs between operating system families
// when resolving executables and paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=platform.go -destination=mocks/mock_platform.go -package=mocks
type Platform interface {
	// OS returns the GOOS value the platform models.
	OS() string

	// ListSeparator separates search path entries.
	ListSeparator() string

	// ExecutableSuffix is appended to command names when searching, if missing.
	ExecutableSuffix() string

	// CaseInsensitiveEnv reports whether environment keys ignore case.
	CaseInsensitiveEnv() bool

	// RepairPath returns the canonical absolute form of path. It is idempotent.
	RepairPath(path string) (string, error)

	// IsExecutable reports whether a file with the given info may be run.
	IsExecutable(info fs.FileInfo) bool

	// WhereUtility returns the system command lookup utility when executables
	// must be located through it rather than by scanning directories.
	WhereUtility(env domain.Environment) (string, bool)

	// SupportsToolDependencies reports whether the host can depend on tools
	// built from the package itself.
	SupportsToolDependencies() bool

	// ShellLookup returns the command to search for and a mapping from its
	// location to the POSIX shell used to run compiled scripts.
	ShellLookup() (command string, shell func(found string) string)

	// ScriptCompiler returns the compiler command line for scripts.
	ScriptCompiler() []string

	// IsTrackableDependency reports whether path may be declared as a command input.
	IsTrackableDependency(path string) bool
}
