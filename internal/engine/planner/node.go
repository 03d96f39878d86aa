package planner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plugkit/internal/adapters/fs"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/plugkit/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/plugkit/internal/adapters/platform" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/plugkit/internal/core/ports"
	"go.trai.ch/plugkit/internal/engine/locator"
)

// NodeID is the unique identifier for the planner Graft node.
const NodeID graft.ID = "engine.planner"

func init() {
	graft.Register(graft.Node[*Planner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			platform.NodeID,
			platform.EnvironmentNodeID,
			locator.NodeID,
			fs.ScratchNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Planner, error) {
			p, err := graft.Dep[ports.Platform](ctx)
			if err != nil {
				return nil, err
			}

			env, err := graft.Dep[domain.Environment](ctx)
			if err != nil {
				return nil, err
			}

			loc, err := graft.Dep[*locator.Locator](ctx)
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

			return New(p, env, loc, scratch, log), nil
		},
	})
}
