package domain

// Project is a loaded project file: the package graph plus the host settings
// the plugins run against.
type Project struct {
	// Path is the project file the project was loaded from.
	Path          string
	Package       *Package
	WorkDirectory string
	BuildTool     string
	// Tools maps tool names to executables the host has already built.
	Tools   map[string]string
	Plugins map[string]PluginSpec
}

// PluginSpec declares a plugin usable by targets of the project.
type PluginSpec struct {
	Name string
	// Uses names the registered plugin implementation.
	Uses            string
	SourceDirectory string
	// Commands is consumed by the declarative implementation only.
	Commands []CommandSpec
}

// CommandSpec is a declarative build command. String fields may reference
// PACKAGE_DIR, TARGET_DIR, TARGET_NAME and WORK_DIR.
type CommandSpec struct {
	Kind            CommandKind
	DisplayName     string
	Executable      Executable
	Arguments       []string
	Environment     map[string]string
	Inputs          []string
	Outputs         []string
	OutputDirectory string
}
