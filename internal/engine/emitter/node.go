package emitter

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plugkit/internal/adapters/fs"       //nolint:depguard // Wired in engine wiring
	"go.trai.ch/plugkit/internal/adapters/platform" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/plugkit/internal/core/ports"
	"go.trai.ch/plugkit/internal/engine/planner"
)

// NodeID is the unique identifier for the emitter Graft node.
const NodeID graft.ID = "engine.emitter"

func init() {
	graft.Register(graft.Node[*Emitter]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			platform.NodeID,
			planner.NodeID,
			fs.WalkerNodeID,
			fs.HasherNodeID,
		},
		Run: func(ctx context.Context) (*Emitter, error) {
			p, err := graft.Dep[ports.Platform](ctx)
			if err != nil {
				return nil, err
			}

			pl, err := graft.Dep[*planner.Planner](ctx)
			if err != nil {
				return nil, err
			}

			walker, err := graft.Dep[ports.Walker](ctx)
			if err != nil {
				return nil, err
			}

			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			return New(p, pl, walker, hasher), nil
		},
	})
}
