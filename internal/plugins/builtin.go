package plugins

import (
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/plugkit/internal/core/ports"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/syntax"
)

const (
	// DemoScriptsDir holds the scripts the demo plugins run, relative to the package.
	DemoScriptsDir = "DemoScripts"
	// GeneratedResourcesDir receives generated resources inside the work directory.
	GeneratedResourcesDir = "GeneratedResources"
	// GeneratorInputsDir holds local-target inputs inside the target directory.
	GeneratorInputsDir = "BuildToolPluginInputs"
	// ResourceGenerator is the executable target that converts .in files.
	ResourceGenerator = "GenRsrc"
)

// CommandPlugin writes a source file by running echo through the system shell.
type CommandPlugin struct {
	GOOS string
}

// BuildCommands implements ports.BuildToolPlugin.
func (p *CommandPlugin) BuildCommands(_ context.Context, host ports.Host, _ *domain.Target) ([]domain.BuildCommand, error) {
	output := filepath.Join(host.WorkDirectory(), "CommandOutput.swift")

	shell, flag, target := "sh", "-c", ""
	if p.GOOS == "windows" {
		shell, flag, target = "cmd", "/c", `"`+output+`"`
	} else {
		quoted, err := syntax.Quote(output, syntax.LangPOSIX)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to quote output path"), "path", output)
		}
		target = quoted
	}

	return []domain.BuildCommand{
		domain.OnDemand{
			DisplayName: "Running Command",
			Executable:  domain.Command{Name: shell},
			Arguments:   []string{flag, "echo let commandOutput = 1 > " + target},
			OutputFiles: []string{output},
		},
	}, nil
}

// ExecutableFilePlugin runs a script shipped in the package by its path.
type ExecutableFilePlugin struct {
	GOOS string
}

// BuildCommands implements ports.BuildToolPlugin.
func (p *ExecutableFilePlugin) BuildCommands(_ context.Context, host ports.Host, _ *domain.Target) ([]domain.BuildCommand, error) {
	name := "Echo1Into2"
	if p.GOOS == "windows" {
		name += ".cmd"
	}
	output := filepath.Join(host.WorkDirectory(), "ExecutableOutput.swift")

	return []domain.BuildCommand{
		domain.OnDemand{
			DisplayName: "Running Echo1Into2",
			Executable:  domain.File{Path: filepath.Join(host.PackageDirectory(), DemoScriptsDir, name)},
			Arguments:   []string{"let executableOutput = 1", output},
			OutputFiles: []string{output},
		},
	}, nil
}

// LocalTargetPlugin converts every file below the target's inputs directory
// with the resource generator built from the package.
type LocalTargetPlugin struct {
	Walker ports.Walker
}

// BuildCommands implements ports.BuildToolPlugin.
func (p *LocalTargetPlugin) BuildCommands(_ context.Context, host ports.Host, target *domain.Target) ([]domain.BuildCommand, error) {
	var inputs []string
	for path := range p.Walker.WalkFiles(filepath.Join(target.Directory, GeneratorInputsDir), nil) {
		inputs = append(inputs, path)
	}
	return generateResources(host, "Running GenerateResource", inputs), nil
}

// ResourceGeneratorPlugin converts the target's .in sources with the resource
// generator built from the package.
type ResourceGeneratorPlugin struct{}

// BuildCommands implements ports.BuildToolPlugin.
func (p *ResourceGeneratorPlugin) BuildCommands(_ context.Context, host ports.Host, target *domain.Target) ([]domain.BuildCommand, error) {
	var inputs []string
	for _, src := range target.SourceFiles {
		if strings.HasSuffix(src, ".in") {
			inputs = append(inputs, src)
		}
	}
	if len(inputs) == 0 {
		return nil, nil
	}
	return generateResources(host, "Running converter", inputs), nil
}

// generateResources maps each x.in input to GeneratedResources/x.out.
func generateResources(host ports.Host, displayName string, inputs []string) []domain.BuildCommand {
	outDir := filepath.Join(host.WorkDirectory(), GeneratedResourcesDir)
	outputs := make([]string, len(inputs))
	for i, in := range inputs {
		base := strings.TrimSuffix(filepath.Base(in), ".in")
		outputs[i] = filepath.Join(outDir, base+".out")
	}

	return []domain.BuildCommand{
		domain.OnDemand{
			DisplayName: displayName,
			Executable:  domain.TargetInPackage{Name: ResourceGenerator},
			Arguments:   append(append([]string{}, inputs...), outDir),
			InputFiles:  inputs,
			OutputFiles: outputs,
		},
	}
}

// ScriptPlugin compiles and runs a script shipped in the package.
type ScriptPlugin struct{}

// BuildCommands implements ports.BuildToolPlugin.
func (p *ScriptPlugin) BuildCommands(_ context.Context, host ports.Host, _ *domain.Target) ([]domain.BuildCommand, error) {
	output := filepath.Join(host.WorkDirectory(), "SwiftScriptOutput.swift")

	return []domain.BuildCommand{
		domain.OnDemand{
			DisplayName: "Running Echo1Into2.swift",
			Executable:  domain.Script{Path: filepath.Join(host.PackageDirectory(), DemoScriptsDir, "Echo1Into2.swift")},
			Arguments:   []string{"let swiftScriptOutput = 1", output},
			OutputFiles: []string{output},
		},
	}, nil
}

// ToolchainPlugin preprocesses a C file with the toolchain's clang.
type ToolchainPlugin struct{}

// BuildCommands implements ports.BuildToolPlugin.
func (p *ToolchainPlugin) BuildCommands(_ context.Context, host ports.Host, _ *domain.Target) ([]domain.BuildCommand, error) {
	source := filepath.Join(host.PackageDirectory(), DemoScriptsDir, "Dummy.c")
	output := filepath.Join(host.WorkDirectory(), "Dummy.pp")

	return []domain.BuildCommand{
		domain.OnDemand{
			DisplayName: "Generating preprocessed C as resource",
			Executable:  domain.ToolchainCommand{Name: "clang"},
			Arguments:   []string{"-E", source, "-o", output},
			InputFiles:  []string{source},
			OutputFiles: []string{output},
		},
	}, nil
}
