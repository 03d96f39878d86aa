package config

// Plugfile represents the structure of the plugkit.yaml project file.
type Plugfile struct {
	Version       string                `yaml:"version"`
	Package       PackageDTO            `yaml:"package"`
	WorkDirectory string                `yaml:"workDirectory"`
	Toolchain     ToolchainDTO          `yaml:"toolchain"`
	Tools         map[string]string     `yaml:"tools"`
	Targets       map[string]*TargetDTO `yaml:"targets"`
	Plugins       map[string]*PluginDTO `yaml:"plugins"`
}

// PackageDTO names the package and the directories of the packages it depends on.
type PackageDTO struct {
	Name         string   `yaml:"name"`
	Dependencies []string `yaml:"dependencies"`
}

// ToolchainDTO configures the host toolchain.
type ToolchainDTO struct {
	BuildTool string `yaml:"buildTool"`
}

// TargetDTO represents a target definition in the project file.
type TargetDTO struct {
	Kind      string   `yaml:"kind"`
	Path      string   `yaml:"path"`
	Sources   []string `yaml:"sources"`
	DependsOn []string `yaml:"dependsOn"`
	Plugins   []string `yaml:"plugins"`
}

// PluginDTO represents a plugin declaration.
type PluginDTO struct {
	Uses     string       `yaml:"uses"`
	Source   string       `yaml:"source"`
	Commands []CommandDTO `yaml:"commands"`
}

// CommandDTO is a declarative build command.
type CommandDTO struct {
	Kind            string            `yaml:"kind"`
	DisplayName     string            `yaml:"displayName"`
	Executable      ExecutableDTO     `yaml:"executable"`
	Arguments       []string          `yaml:"arguments"`
	Environment     map[string]string `yaml:"environment"`
	Inputs          []string          `yaml:"inputs"`
	Outputs         []string          `yaml:"outputs"`
	OutputDirectory string            `yaml:"outputDirectory"`
}

// ExecutableDTO selects exactly one executable variant.
type ExecutableDTO struct {
	Target    string `yaml:"target"`
	File      string `yaml:"file"`
	Command   string `yaml:"command"`
	Script    string `yaml:"script"`
	Toolchain string `yaml:"toolchain"`
}
