// Package app implements the application layer for plugkit.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/plugkit/internal/adapters/host" //nolint:depguard // Host is built per project in the app layer
	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/plugkit/internal/core/ports"
	"go.trai.ch/zerr"
)

// StoreOpener opens the command manifest of the package rooted at dir.
type StoreOpener func(dir string) (ports.CommandStore, error)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	plugins      ports.PluginResolver
	emitter      ports.CommandEmitter
	openStore    StoreOpener
	executor     ports.Executor
	verifier     ports.Verifier
	walker       ports.Walker
	locator      ports.ExecutableLocator
	telemetry    ports.Telemetry
	watcher      ports.Watcher
	logger       ports.Logger
	out          io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	plugins ports.PluginResolver,
	emitter ports.CommandEmitter,
	openStore StoreOpener,
	executor ports.Executor,
	verifier ports.Verifier,
	walker ports.Walker,
	locator ports.ExecutableLocator,
	telemetry ports.Telemetry,
	watcher ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		plugins:      plugins,
		emitter:      emitter,
		openStore:    openStore,
		executor:     executor,
		verifier:     verifier,
		walker:       walker,
		locator:      locator,
		telemetry:    telemetry,
		watcher:      watcher,
		logger:       log,
		out:          os.Stdout,
	}
}

// WithOutput sets the writer command reports are printed to.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Emit runs every plugin applied to every target of the project and replaces
// the command manifest with the commands they produced. The manifest is only
// written once every plugin has succeeded.
func (a *App) Emit(ctx context.Context, configPath string) ([]domain.EmittedCommands, error) {
	project, err := a.configLoader.Load(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	base := host.New(project)
	var emitted []domain.EmittedCommands
	for target := range project.Package.Targets() {
		for _, name := range target.Plugins {
			entry, err := a.emitPlugin(ctx, base, project, target, name)
			if err != nil {
				return nil, err
			}
			emitted = append(emitted, entry)
		}
	}

	store, err := a.openStore(project.Package.Directory)
	if err != nil {
		return nil, err
	}
	if err := store.Replace(emitted); err != nil {
		return nil, err
	}

	for _, entry := range emitted {
		a.logger.Info(fmt.Sprintf("%s: %d command(s) from plugin %s", entry.Target, len(entry.Commands), entry.Plugin))
	}
	return emitted, nil
}

func (a *App) emitPlugin(
	ctx context.Context,
	base *host.Host,
	project *domain.Project,
	target *domain.Target,
	name string,
) (domain.EmittedCommands, error) {
	spec, ok := project.Plugins[name]
	if !ok {
		return domain.EmittedCommands{}, zerr.With(zerr.With(zerr.Wrap(domain.ErrPluginNotFound, "failed to emit commands"), "plugin", name), "target", target.Name)
	}

	plugin, err := a.plugins.Resolve(spec)
	if err != nil {
		return domain.EmittedCommands{}, err
	}

	scoped := base.Scoped(target.Name, name)
	cmds, err := plugin.BuildCommands(ctx, scoped, target)
	if err != nil {
		return domain.EmittedCommands{}, zerr.With(zerr.With(zerr.Wrap(err, "plugin failed"), "plugin", name), "target", target.Name)
	}

	natives, err := a.emitter.EmitAll(ctx, scoped, cmds, spec.SourceDirectory)
	if err != nil {
		return domain.EmittedCommands{}, zerr.With(zerr.With(err, "plugin", name), "target", target.Name)
	}

	return domain.EmittedCommands{Plugin: name, Target: target.Name, Commands: natives}, nil
}

// Which returns the program a command name resolves to on the search path.
func (a *App) Which(ctx context.Context, command string) (string, error) {
	return a.locator.Locate(ctx, os.TempDir(), command, a.locator.SearchPath())
}

// Toolchain returns the toolchain program invoked as command for the project.
func (a *App) Toolchain(ctx context.Context, configPath, command string) (string, error) {
	project, err := a.configLoader.Load(configPath)
	if err != nil {
		return "", zerr.Wrap(err, "failed to load configuration")
	}
	return a.locator.ToolchainExecutable(ctx, host.New(project), command)
}

// Close ends the telemetry session.
func (a *App) Close() error {
	return a.telemetry.Close()
}
