package domain

// BuildCommand is the uniform, platform-neutral description of a build step.
//
// Variants are OnDemand and Unconditional.
type BuildCommand interface {
	// Name returns the display name of the command.
	Name() string
	buildCommand()
}

// OnDemand runs only when one of its inputs is newer than its outputs.
// Output paths must be derivable from input paths alone.
type OnDemand struct {
	DisplayName string
	Executable  Executable
	Arguments   []string
	Environment map[string]string
	InputFiles  []string
	OutputFiles []string
}

// Unconditional runs before every build. Its outputs are whatever files exist
// in OutputFilesDirectory after it finishes.
type Unconditional struct {
	DisplayName          string
	Executable           Executable
	Arguments            []string
	Environment          map[string]string
	OutputFilesDirectory string
}

func (OnDemand) buildCommand()      {}
func (Unconditional) buildCommand() {}

// Name implements BuildCommand.
func (c OnDemand) Name() string { return c.DisplayName }

// Name implements BuildCommand.
func (c Unconditional) Name() string { return c.DisplayName }

// CommandKind tags a NativeCommand with the host's scheduling semantics.
type CommandKind string

const (
	// KindBuild runs on demand when inputs are newer than outputs.
	KindBuild CommandKind = "build"
	// KindPrebuild runs before every build.
	KindPrebuild CommandKind = "prebuild"
)

// NativeCommand is the command value handed to the host build system.
type NativeCommand struct {
	Kind                 CommandKind       `json:"kind"`
	DisplayName          string            `json:"displayName"`
	Executable           string            `json:"executable"`
	Arguments            []string          `json:"arguments,omitempty"`
	Environment          map[string]string `json:"environment,omitempty"`
	InputFiles           []string          `json:"inputFiles,omitempty"`
	OutputFiles          []string          `json:"outputFiles,omitempty"`
	OutputFilesDirectory string            `json:"outputFilesDirectory,omitempty"`
	PluginFingerprint    string            `json:"pluginFingerprint,omitempty"`
}

// CommandLine returns the executable followed by its arguments.
func (c *NativeCommand) CommandLine() []string {
	return append([]string{c.Executable}, c.Arguments...)
}

// EmittedCommands groups the native commands one plugin produced for one target.
type EmittedCommands struct {
	Plugin   string          `json:"plugin"`
	Target   string          `json:"target"`
	Commands []NativeCommand `json:"commands"`
}

// Key identifies an EmittedCommands entry in the command manifest.
func (e *EmittedCommands) Key() string {
	return e.Target + "/" + e.Plugin
}
