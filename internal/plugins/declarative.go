package plugins

import (
	"context"
	"maps"
	"path/filepath"

	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/plugkit/internal/core/ports"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/shell"
)

// Variables available to declarative command strings.
const (
	VarPackageDir = "PACKAGE_DIR"
	VarTargetDir  = "TARGET_DIR"
	VarTargetName = "TARGET_NAME"
	VarWorkDir    = "WORK_DIR"
)

// DeclarativePlugin emits the commands written in the project file.
//
// Relative inputs and executable paths are resolved against the package
// directory; relative outputs against the plugin work directory.
type DeclarativePlugin struct {
	Commands []domain.CommandSpec
}

// BuildCommands implements ports.BuildToolPlugin.
func (p *DeclarativePlugin) BuildCommands(_ context.Context, host ports.Host, target *domain.Target) ([]domain.BuildCommand, error) {
	x := &expander{
		vars: map[string]string{
			VarPackageDir: host.PackageDirectory(),
			VarTargetDir:  target.Directory,
			VarTargetName: target.Name,
			VarWorkDir:    host.WorkDirectory(),
		},
		pkgDir:  host.PackageDirectory(),
		workDir: host.WorkDirectory(),
	}

	cmds := make([]domain.BuildCommand, 0, len(p.Commands))
	for _, spec := range p.Commands {
		cmd, err := x.command(spec)
		if err != nil {
			return nil, zerr.With(err, "command", spec.DisplayName)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

type expander struct {
	vars    map[string]string
	pkgDir  string
	workDir string
	err     error
}

func (x *expander) command(spec domain.CommandSpec) (domain.BuildCommand, error) {
	name := x.expand(spec.DisplayName)
	exe := x.executable(spec.Executable)
	args := x.expandAll(spec.Arguments, "")

	var env map[string]string
	if len(spec.Environment) > 0 {
		env = maps.Clone(spec.Environment)
		for k, v := range env {
			env[k] = x.expand(v)
		}
	}

	if spec.Kind == domain.KindPrebuild {
		cmd := domain.Unconditional{
			DisplayName:          name,
			Executable:           exe,
			Arguments:            args,
			Environment:          env,
			OutputFilesDirectory: x.path(spec.OutputDirectory, x.workDir),
		}
		return cmd, x.err
	}

	cmd := domain.OnDemand{
		DisplayName: name,
		Executable:  exe,
		Arguments:   args,
		Environment: env,
		InputFiles:  x.expandAll(spec.Inputs, x.pkgDir),
		OutputFiles: x.expandAll(spec.Outputs, x.workDir),
	}
	return cmd, x.err
}

func (x *expander) executable(exe domain.Executable) domain.Executable {
	switch e := exe.(type) {
	case domain.File:
		return domain.File{Path: x.path(e.Path, x.pkgDir)}
	case domain.Script:
		return domain.Script{Path: x.path(e.Path, x.pkgDir)}
	case domain.Command:
		return domain.Command{Name: x.expand(e.Name)}
	case domain.ToolchainCommand:
		return domain.ToolchainCommand{Name: x.expand(e.Name)}
	case domain.TargetInPackage:
		return domain.TargetInPackage{Name: x.expand(e.Name)}
	default:
		return exe
	}
}

// expand substitutes variables as the shell would inside double quotes.
// The first failure is kept and later calls become no-ops.
func (x *expander) expand(s string) string {
	if x.err != nil || s == "" {
		return s
	}
	out, err := shell.Expand(s, func(name string) string { return x.vars[name] })
	if err != nil {
		x.err = zerr.With(zerr.Wrap(domain.ErrConfigInvalid, err.Error()), "value", s)
		return s
	}
	return out
}

// path expands p and anchors it at base when relative. An empty base leaves
// relative paths alone.
func (x *expander) path(p, base string) string {
	p = x.expand(p)
	if p == "" || base == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

func (x *expander) expandAll(values []string, base string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = x.path(v, base)
	}
	return out
}
