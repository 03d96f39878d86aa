// Package emitter translates plugin build commands into the commands the host
// build system schedules.
package emitter

import (
	"context"
	"maps"
	"slices"

	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/plugkit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CommandEmitter = (*Emitter)(nil)

// Emitter turns domain.BuildCommand values into domain.NativeCommand values.
type Emitter struct {
	platform ports.Platform
	planner  ports.Planner
	walker   ports.Walker
	hasher   ports.Hasher
}

// New creates an Emitter.
func New(platform ports.Platform, planner ports.Planner, walker ports.Walker, hasher ports.Hasher) *Emitter {
	return &Emitter{
		platform: platform,
		planner:  planner,
		walker:   walker,
		hasher:   hasher,
	}
}

// pluginScan is the plugin source directory as seen by every command the
// plugin emits.
type pluginScan struct {
	files       []string
	fingerprint string
}

// Emit plans cmd's executable and builds the native command. Files below
// pluginSourceDir become inputs of on-demand commands.
func (e *Emitter) Emit(
	ctx context.Context,
	host ports.Host,
	cmd domain.BuildCommand,
	pluginSourceDir string,
) (domain.NativeCommand, error) {
	scan, err := e.scanPlugin(pluginSourceDir)
	if err != nil {
		return domain.NativeCommand{}, err
	}
	return e.emit(ctx, host, cmd, scan)
}

// EmitAll emits cmds in order and stops at the first failure.
func (e *Emitter) EmitAll(
	ctx context.Context,
	host ports.Host,
	cmds []domain.BuildCommand,
	pluginSourceDir string,
) ([]domain.NativeCommand, error) {
	scan, err := e.scanPlugin(pluginSourceDir)
	if err != nil {
		return nil, err
	}

	out := make([]domain.NativeCommand, 0, len(cmds))
	for _, cmd := range cmds {
		native, err := e.emit(ctx, host, cmd, scan)
		if err != nil {
			name := "<nil>"
			if cmd != nil {
				name = cmd.Name()
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to emit command"), "command", name)
		}
		out = append(out, native)
	}
	return out, nil
}

func (e *Emitter) emit(ctx context.Context, host ports.Host, cmd domain.BuildCommand, scan pluginScan) (domain.NativeCommand, error) {
	switch c := cmd.(type) {
	case domain.OnDemand:
		inv, err := e.plan(ctx, host, c.Executable)
		if err != nil {
			return domain.NativeCommand{}, err
		}
		inputs, err := e.inputFiles(c.InputFiles, scan.files, inv)
		if err != nil {
			return domain.NativeCommand{}, err
		}
		outputs, err := e.repairAll(c.OutputFiles)
		if err != nil {
			return domain.NativeCommand{}, err
		}
		return domain.NativeCommand{
			Kind:              domain.KindBuild,
			DisplayName:       c.DisplayName,
			Executable:        inv.Executable,
			Arguments:         inv.Arguments(c.Arguments...),
			Environment:       maps.Clone(c.Environment),
			InputFiles:        inputs,
			OutputFiles:       outputs,
			PluginFingerprint: scan.fingerprint,
		}, nil

	case domain.Unconditional:
		inv, err := e.plan(ctx, host, c.Executable)
		if err != nil {
			return domain.NativeCommand{}, err
		}
		dir, err := e.platform.RepairPath(c.OutputFilesDirectory)
		if err != nil {
			return domain.NativeCommand{}, err
		}
		return domain.NativeCommand{
			Kind:                 domain.KindPrebuild,
			DisplayName:          c.DisplayName,
			Executable:           inv.Executable,
			Arguments:            inv.Arguments(c.Arguments...),
			Environment:          maps.Clone(c.Environment),
			OutputFilesDirectory: dir,
			PluginFingerprint:    scan.fingerprint,
		}, nil

	default:
		return domain.NativeCommand{}, zerr.Wrap(domain.ErrUnknownBuildCommand, "cannot emit command")
	}
}

// plan resolves exe and normalises the program path the same way every other
// emitted path is.
func (e *Emitter) plan(ctx context.Context, host ports.Host, exe domain.Executable) (domain.Invocation, error) {
	inv, err := e.planner.Plan(ctx, host, exe)
	if err != nil {
		return domain.Invocation{}, err
	}
	repaired, err := e.platform.RepairPath(inv.Executable)
	if err != nil {
		return domain.Invocation{}, err
	}
	inv.Executable = repaired
	return inv, nil
}

// inputFiles orders caller inputs, plugin sources, planner sources and the
// executable itself, keeping the first occurrence of each path.
func (e *Emitter) inputFiles(declared, pluginFiles []string, inv domain.Invocation) ([]string, error) {
	candidates := slices.Concat(declared, pluginFiles, inv.AdditionalSources)
	if e.platform.IsTrackableDependency(inv.Executable) {
		candidates = append(candidates, inv.Executable)
	}

	seen := make(map[string]struct{}, len(candidates))
	inputs := make([]string, 0, len(candidates))
	for _, c := range candidates {
		path, err := e.platform.RepairPath(c)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		inputs = append(inputs, path)
	}
	return inputs, nil
}

func (e *Emitter) repairAll(paths []string) ([]string, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		repaired, err := e.platform.RepairPath(p)
		if err != nil {
			return nil, err
		}
		out[i] = repaired
	}
	return out, nil
}

func (e *Emitter) scanPlugin(dir string) (pluginScan, error) {
	if dir == "" {
		return pluginScan{}, nil
	}

	var files []string
	for path := range e.walker.WalkFiles(dir, nil) {
		files = append(files, path)
	}
	if len(files) == 0 {
		return pluginScan{}, nil
	}

	fingerprint, err := e.hasher.ComputeFilesHash(files)
	if err != nil {
		return pluginScan{}, zerr.With(zerr.Wrap(err, "failed to fingerprint plugin sources"), "plugin_dir", dir)
	}
	return pluginScan{files: files, fingerprint: fingerprint}, nil
}
