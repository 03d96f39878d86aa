package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ExecOptions configures Exec.
type ExecOptions struct {
	// Force runs on-demand commands even when their outputs are up to date.
	Force bool
	// NoEmit runs the commands already in the manifest instead of re-emitting.
	NoEmit bool
}

// Status is the outcome of one command.
type Status string

const (
	// StatusRan means the command ran and succeeded.
	StatusRan Status = "ran"
	// StatusCached means the command was skipped because its outputs were up to date.
	StatusCached Status = "cached"
	// StatusFailed means the command failed or left outputs missing.
	StatusFailed Status = "failed"
)

// CommandResult records what happened to one native command.
type CommandResult struct {
	Name   string
	Kind   domain.CommandKind
	Status Status
	// Outputs lists the files the command produced. For prebuild commands
	// this is every regular file in the output directory after the run.
	Outputs []string
	// OutputDirectory is the directory a prebuild command writes into.
	OutputDirectory string
}

// Exec runs the emitted commands the way a host build system would: prebuild
// commands one after another, then on-demand commands concurrently.
func (a *App) Exec(ctx context.Context, configPath string, opts ExecOptions) ([]CommandResult, error) {
	entries, err := a.commands(ctx, configPath, opts.NoEmit)
	if err != nil {
		return nil, err
	}

	var prebuild, build []domain.NativeCommand
	for _, entry := range entries {
		for _, cmd := range entry.Commands {
			if cmd.Kind == domain.KindPrebuild {
				prebuild = append(prebuild, cmd)
			} else {
				build = append(build, cmd)
			}
		}
	}

	var results []CommandResult
	for i := range prebuild {
		res, err := a.runPrebuild(ctx, &prebuild[i])
		results = append(results, res)
		if err != nil {
			a.report(results)
			return results, err
		}
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range build {
		cmd := &build[i]
		g.Go(func() error {
			res, err := a.runBuild(gctx, cmd, opts.Force)
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return err
		})
	}
	err = g.Wait()

	a.report(results)
	return results, err
}

func (a *App) commands(ctx context.Context, configPath string, noEmit bool) ([]domain.EmittedCommands, error) {
	if !noEmit {
		return a.Emit(ctx, configPath)
	}

	project, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	store, err := a.openStore(project.Package.Directory)
	if err != nil {
		return nil, err
	}
	return store.All()
}

func (a *App) runPrebuild(ctx context.Context, cmd *domain.NativeCommand) (CommandResult, error) {
	res := CommandResult{Name: cmd.DisplayName, Kind: cmd.Kind, Status: StatusFailed, OutputDirectory: cmd.OutputFilesDirectory}

	if err := os.MkdirAll(cmd.OutputFilesDirectory, domain.DirPerm); err != nil {
		return res, commandError(zerr.Wrap(err, "failed to create output directory"), cmd)
	}
	if err := a.execute(ctx, cmd); err != nil {
		return res, err
	}

	for path := range a.walker.WalkFiles(cmd.OutputFilesDirectory, nil) {
		res.Outputs = append(res.Outputs, path)
	}
	res.Status = StatusRan
	return res, nil
}

func (a *App) runBuild(ctx context.Context, cmd *domain.NativeCommand, force bool) (CommandResult, error) {
	res := CommandResult{Name: cmd.DisplayName, Kind: cmd.Kind, Status: StatusFailed, Outputs: cmd.OutputFiles}

	if !force {
		stale, err := a.verifier.Stale(cmd.InputFiles, cmd.OutputFiles)
		if err != nil {
			return res, commandError(err, cmd)
		}
		if !stale {
			_, vertex := a.telemetry.Record(ctx, cmd.DisplayName)
			vertex.Cached()
			vertex.Complete(nil)
			res.Status = StatusCached
			return res, nil
		}
	}

	for _, output := range cmd.OutputFiles {
		if err := os.MkdirAll(filepath.Dir(output), domain.DirPerm); err != nil {
			return res, commandError(zerr.Wrap(err, "failed to create output directory"), cmd)
		}
	}
	if err := a.execute(ctx, cmd); err != nil {
		return res, err
	}

	ok, err := a.verifier.VerifyOutputs("", cmd.OutputFiles)
	if err != nil {
		return res, commandError(err, cmd)
	}
	if !ok {
		return res, commandError(zerr.With(zerr.Wrap(domain.ErrOutputsMissing, "outputs missing"), "outputs", cmd.OutputFiles), cmd)
	}

	res.Status = StatusRan
	return res, nil
}

// execute runs cmd inside its own telemetry vertex.
func (a *App) execute(ctx context.Context, cmd *domain.NativeCommand) error {
	ctx, vertex := a.telemetry.Record(ctx, cmd.DisplayName)
	err := a.executor.Execute(ctx, cmd, vertex.Stdout(), vertex.Stderr())
	vertex.Complete(err)
	if err != nil {
		return commandError(errors.Join(domain.ErrCommandFailed, err), cmd)
	}
	return nil
}

func commandError(err error, cmd *domain.NativeCommand) error {
	return zerr.With(err, "command", cmd.DisplayName)
}
