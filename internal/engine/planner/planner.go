// Package planner turns executable descriptions into concrete invocations.
package planner

import (
	"context"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/google/uuid"
	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/plugkit/internal/core/ports"
	"go.trai.ch/plugkit/internal/engine/locator"
	"go.trai.ch/zerr"
)

var _ ports.Planner = (*Planner)(nil)

// Planner resolves domain.Executable values for a host.
type Planner struct {
	platform ports.Platform
	env      domain.Environment
	locator  *locator.Locator
	scratch  ports.ScratchSpace
	logger   ports.Logger
	newName  func() string
}

// New creates a Planner.
func New(
	platform ports.Platform,
	env domain.Environment,
	loc *locator.Locator,
	scratch ports.ScratchSpace,
	logger ports.Logger,
) *Planner {
	return &Planner{
		platform: platform,
		env:      env,
		locator:  loc,
		scratch:  scratch,
		logger:   logger,
		newName:  uuid.NewString,
	}
}

// Plan resolves exe to the program to run, the arguments that must precede
// the caller's own, and the extra files the command depends on.
func (p *Planner) Plan(ctx context.Context, host ports.Host, exe domain.Executable) (domain.Invocation, error) {
	switch e := exe.(type) {
	case domain.File:
		return p.planFile(e)
	case domain.Command:
		return p.planCommand(ctx, host, e)
	case domain.ToolchainCommand:
		if e.Name == "" {
			return domain.Invocation{}, emptyName(e)
		}
		path, err := p.locator.ToolchainExecutable(ctx, host, e.Name)
		if err != nil {
			return domain.Invocation{}, err
		}
		return domain.Invocation{Executable: path}, nil
	case domain.TargetInPackage:
		return p.planTarget(ctx, host, e)
	case domain.Script:
		return p.planScript(ctx, host, e)
	default:
		return domain.Invocation{}, zerr.With(zerr.Wrap(domain.ErrUnknownExecutable, "cannot plan executable"), "type", typeName(exe))
	}
}

func (p *Planner) planFile(f domain.File) (domain.Invocation, error) {
	if f.Path == "" {
		return domain.Invocation{}, emptyName(f)
	}
	path, err := p.platform.RepairPath(f.Path)
	if err != nil {
		return domain.Invocation{}, err
	}
	return domain.Invocation{Executable: path}, nil
}

func (p *Planner) planCommand(ctx context.Context, host ports.Host, c domain.Command) (domain.Invocation, error) {
	if c.Name == "" {
		return domain.Invocation{}, emptyName(c)
	}
	path, err := p.locator.Locate(ctx, host.WorkDirectory(), c.Name, p.locator.SearchPath())
	if err != nil {
		return domain.Invocation{}, err
	}
	return domain.Invocation{Executable: path}, nil
}

// planTarget uses the host-built tool when the platform allows depending on
// it, and otherwise runs the build tool reentrantly. Either way every source
// the target is built from becomes an input.
func (p *Planner) planTarget(ctx context.Context, host ports.Host, t domain.TargetInPackage) (domain.Invocation, error) {
	if t.Name == "" {
		return domain.Invocation{}, emptyName(t)
	}

	sources, err := targetSources(host, t.Name)
	if err != nil {
		return domain.Invocation{}, err
	}

	if p.platform.SupportsToolDependencies() {
		path, err := host.ToolPath(ctx, t.Name)
		if err == nil {
			return domain.Invocation{Executable: path, AdditionalSources: sources}, nil
		}
		p.logger.Warn("host cannot provide " + t.Name + "; building it with " + host.BuildTool())
	}

	buildTool, err := p.buildToolPath(ctx, host)
	if err != nil {
		return domain.Invocation{}, err
	}

	prefix := []string{"run", "--disable-sandbox", "--package-path", host.PackageDirectory()}
	if p.sharedBuildDirectory() {
		prefix = append(prefix, "--skip-build")
	} else {
		scratch, err := p.scratch.Make(host.WorkDirectory())
		if err != nil {
			return domain.Invocation{}, err
		}
		prefix = append(prefix, "--scratch-path", scratch)
	}
	prefix = append(prefix, t.Name)

	return domain.Invocation{
		Executable:        buildTool,
		ArgumentPrefix:    prefix,
		AdditionalSources: sources,
	}, nil
}

// buildToolPath finds the host build tool in the toolchain directory, or on
// the search path when no toolchain directory is advertised.
func (p *Planner) buildToolPath(ctx context.Context, host ports.Host) (string, error) {
	name := host.BuildTool()
	if bin, ok := p.locator.ToolchainBinDirectory(); ok {
		if path, ok := p.locator.FirstExecutable(domain.SearchPath{bin}, name); ok {
			return path, nil
		}
	}
	return p.locator.Locate(ctx, host.WorkDirectory(), name, p.locator.SearchPath())
}

func (p *Planner) sharedBuildDirectory() bool {
	shared, err := strconv.ParseBool(p.env.Lookup(domain.SharedBuildDirEnvVar))
	return err == nil && shared
}

func (p *Planner) planScript(ctx context.Context, host ports.Host, s domain.Script) (domain.Invocation, error) {
	if s.Path == "" {
		return domain.Invocation{}, emptyName(s)
	}

	script, err := p.platform.RepairPath(s.Path)
	if err != nil {
		return domain.Invocation{}, err
	}

	command, shellFor := p.platform.ShellLookup()
	found, err := p.locator.Locate(ctx, host.WorkDirectory(), command, p.locator.SearchPath())
	if err != nil {
		return domain.Invocation{}, zerr.With(err, "script", s.Path)
	}

	scratch, err := p.platform.RepairPath(filepath.Join(host.WorkDirectory(), p.newName()))
	if err != nil {
		return domain.Invocation{}, err
	}

	return domain.Invocation{
		Executable:        shellFor(found),
		ArgumentPrefix:    scriptPrefix(p.platform.ScriptCompiler(), scratch, script),
		AdditionalSources: []string{script},
	}, nil
}

// targetSources returns the sorted sources of name and of every target it
// transitively depends on.
func targetSources(host ports.Host, name string) ([]string, error) {
	if _, err := host.Target(name); err != nil {
		return nil, err
	}
	deps, err := host.TargetDependencies(name)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var sources []string
	for _, target := range append([]string{name}, deps...) {
		files, err := host.TargetSources(target)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			if _, dup := seen[f]; dup {
				continue
			}
			seen[f] = struct{}{}
			sources = append(sources, f)
		}
	}
	slices.Sort(sources)
	return sources, nil
}

func emptyName(exe domain.Executable) error {
	return zerr.With(zerr.Wrap(domain.ErrEmptyCommandName, "cannot plan executable"), "type", typeName(exe))
}

func typeName(exe domain.Executable) string {
	switch exe.(type) {
	case domain.File:
		return "file"
	case domain.Command:
		return "command"
	case domain.ToolchainCommand:
		return "toolchain"
	case domain.TargetInPackage:
		return "target"
	case domain.Script:
		return "script"
	case nil:
		return "nil"
	default:
		return "unknown"
	}
}
