// Package domain contains the core domain models for resolving plugin executables
// and describing build commands.
package domain

// Executable describes the program a build command runs.
//
// The set of variants is closed: TargetInPackage, File, Command, Script and
// ToolchainCommand.
type Executable interface {
	// Describe returns a short human-readable form used in logs and errors.
	Describe() string
	executable()
}

// TargetInPackage names an executable target built from the current package graph.
type TargetInPackage struct {
	Name string
}

// File is a path to an existing program on disk.
type File struct {
	Path string
}

// Command is a program name found by searching the process search path.
type Command struct {
	Name string
}

// Script is a source file compiled on the fly and then run.
type Script struct {
	Path string
}

// ToolchainCommand is a program shipped in the build toolchain's bin directory.
type ToolchainCommand struct {
	Name string
}

func (TargetInPackage) executable()  {}
func (File) executable()             {}
func (Command) executable()          {}
func (Script) executable()           {}
func (ToolchainCommand) executable() {}

// Describe implements Executable.
func (t TargetInPackage) Describe() string { return "target " + t.Name }

// Describe implements Executable.
func (f File) Describe() string { return "file " + f.Path }

// Describe implements Executable.
func (c Command) Describe() string { return "command " + c.Name }

// Describe implements Executable.
func (s Script) Describe() string { return "script " + s.Path }

// Describe implements Executable.
func (t ToolchainCommand) Describe() string { return "toolchain command " + t.Name }

// Invocation is the resolved form of an Executable.
//
// ArgumentPrefix is placed before the caller's own arguments, and every
// AdditionalSources entry becomes an input dependency of the emitted command.
type Invocation struct {
	Executable        string
	ArgumentPrefix    []string
	AdditionalSources []string
}

// Arguments returns the prefix followed by args, or nil when both are empty.
func (i Invocation) Arguments(args ...string) []string {
	if len(i.ArgumentPrefix)+len(args) == 0 {
		return nil
	}
	line := make([]string, 0, len(i.ArgumentPrefix)+len(args))
	line = append(line, i.ArgumentPrefix...)
	return append(line, args...)
}
