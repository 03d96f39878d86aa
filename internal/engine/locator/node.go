package locator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plugkit/internal/adapters/fs"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/plugkit/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/plugkit/internal/adapters/platform" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/plugkit/internal/adapters/shell"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/plugkit/internal/core/ports"
)

// NodeID is the unique identifier for the locator Graft node.
const NodeID graft.ID = "engine.locator"

func init() {
	graft.Register(graft.Node[*Locator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			platform.NodeID,
			platform.EnvironmentNodeID,
			shell.RunnerNodeID,
			fs.ScratchNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Locator, error) {
			p, err := graft.Dep[ports.Platform](ctx)
			if err != nil {
				return nil, err
			}

			env, err := graft.Dep[domain.Environment](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[ports.ProcessRunner](ctx)
			if err != nil {
				return nil, err
			}

			scratch, err := graft.Dep[ports.ScratchSpace](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(p, env, runner, scratch, log), nil
		},
	})
}
