package domain

import "go.trai.ch/zerr"

var (
	// ErrExecutableNotFound is returned when a command cannot be found in any search path directory.
	ErrExecutableNotFound = zerr.New("no executable found")

	// ErrToolNotFound is returned when a toolchain command cannot be found by any lookup strategy.
	ErrToolNotFound = zerr.New("toolchain command not found")

	// ErrTargetNotFound is returned when a target is not part of the package graph.
	ErrTargetNotFound = zerr.New("target not found")

	// ErrUnknownExecutable is returned for an executable description the planner cannot resolve.
	ErrUnknownExecutable = zerr.New("unknown executable kind")

	// ErrUnknownBuildCommand is returned for a build command description the emitter cannot translate.
	ErrUnknownBuildCommand = zerr.New("unknown build command kind")

	// ErrPathResolution is returned when the platform cannot produce a canonical form of a path.
	ErrPathResolution = zerr.New("failed to resolve path")

	// ErrScratchDirExhausted is returned when no fresh scratch directory could be created.
	ErrScratchDirExhausted = zerr.New("couldn't create scratch directory")

	// ErrNonzeroExit is the sentinel wrapped by NonzeroExitError.
	ErrNonzeroExit = zerr.New("process exited with nonzero status")

	// ErrProcessStart is returned when a child process cannot be launched.
	ErrProcessStart = zerr.New("failed to start process")

	// ErrToolchainNotFound is returned when no toolchain directory is advertised on the search path.
	ErrToolchainNotFound = zerr.New("toolchain directory not found on search path")

	// ErrEmptyCommandName is returned when an executable is described with an empty name or path.
	ErrEmptyCommandName = zerr.New("empty executable name")

	// ErrDuplicateTarget is returned when a package declares two targets with the same name.
	ErrDuplicateTarget = zerr.New("target already exists")

	// ErrCycleDetected is returned when target dependencies form a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrPluginNotFound is returned when a target applies a plugin that is not declared or registered.
	ErrPluginNotFound = zerr.New("plugin not found")

	// ErrCommandFailed is returned when a build command fails during execution.
	ErrCommandFailed = zerr.New("build command failed")

	// ErrOutputsMissing is returned when a command finished without producing its declared outputs.
	ErrOutputsMissing = zerr.New("declared outputs missing after command ran")

	// ErrConfigReadFailed is returned when the project file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read project file")

	// ErrConfigParseFailed is returned when the project file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse project file")

	// ErrConfigInvalid is returned when the project file is structurally invalid.
	ErrConfigInvalid = zerr.New("invalid project file")

	// ErrUnsupportedVersion is returned when the project file declares an unknown schema version.
	ErrUnsupportedVersion = zerr.New("unsupported project file version")

	// ErrManifestReadFailed is returned when the command manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read command manifest")

	// ErrManifestWriteFailed is returned when the command manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write command manifest")

	// ErrInputNotFound is returned when a declared source pattern matches no file.
	ErrInputNotFound = zerr.New("input not found")

	// ErrInvalidArguments is returned by the downstream tools on malformed command lines.
	ErrInvalidArguments = zerr.New("invalid arguments")
)
