package domain

const (
	// DirPerm is the default permission for directories the tool creates.
	DirPerm = 0o750

	// FilePerm is the default permission for files the tool writes.
	FilePerm = 0o644

	// ExecPerm is the permission for generated executables and scripts.
	ExecPerm = 0o755

	// ScratchAttempts bounds the attempts at creating a fresh scratch directory.
	ScratchAttempts = 10

	// DefaultConfigFile is the project file read by the CLI.
	DefaultConfigFile = "plugkit.yaml"

	// StateDirName is the directory, relative to the package, holding tool state.
	StateDirName = ".plugkit"

	// ManifestFileName is the command manifest inside StateDirName.
	ManifestFileName = "commands.json"

	// DefaultWorkDirName is the plugin work directory inside StateDirName.
	DefaultWorkDirName = "work"

	// DefaultBuildTool is the host build tool invoked for reentrant target builds.
	DefaultBuildTool = "swift"

	// SharedBuildDirEnvVar, when truthy, makes reentrant builds reuse the host's
	// build directory instead of a private scratch directory.
	SharedBuildDirEnvVar = "PLUGKIT_SHARED_BUILD_DIR"

	// ModuleCacheDirName is the compiler module cache created next to a compiled script.
	ModuleCacheDirName = "module-cache"

	// ScriptRunnerName is the executable a compiled script is written to.
	ScriptRunnerName = "runner"
)

// PluginSupportPathSuffix is the trailing directory sequence of the search path
// entry the host injects for plugins. Removing it yields the toolchain root.
var PluginSupportPathSuffix = []string{"lib", "plugkit", "PluginAPI"}
