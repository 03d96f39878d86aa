package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plugkit/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/plugkit/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/plugkit/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/plugkit/internal/adapters/manifest"           //nolint:depguard // Wired in app layer
	"go.trai.ch/plugkit/internal/adapters/shell"              //nolint:depguard // Wired in app layer
	"go.trai.ch/plugkit/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/plugkit/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/plugkit/internal/core/ports"
	"go.trai.ch/plugkit/internal/engine/emitter"
	"go.trai.ch/plugkit/internal/engine/locator"
	"go.trai.ch/plugkit/internal/plugins"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			plugins.NodeID,
			emitter.NodeID,
			manifest.NodeID,
			shell.NodeID,
			fs.VerifierNodeID,
			fs.WalkerNodeID,
			locator.NodeID,
			progrock.NodeID,
			watcher.WatcherNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.PluginResolver](ctx)
	if err != nil {
		return nil, err
	}

	em, err := graft.Dep[*emitter.Emitter](ctx)
	if err != nil {
		return nil, err
	}

	opener, err := graft.Dep[manifest.Opener](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	verifier, err := graft.Dep[*fs.Verifier](ctx)
	if err != nil {
		return nil, err
	}

	walker, err := graft.Dep[ports.Walker](ctx)
	if err != nil {
		return nil, err
	}

	loc, err := graft.Dep[*locator.Locator](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	w, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, resolver, em, StoreOpener(opener), executor, verifier, walker, loc, telemetry, w, log), nil
}
