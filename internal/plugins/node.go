package plugins

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plugkit/internal/adapters/fs"       //nolint:depguard // Wired in plugin wiring
	"go.trai.ch/plugkit/internal/adapters/platform" //nolint:depguard // Wired in plugin wiring
	"go.trai.ch/plugkit/internal/core/ports"
)

// NodeID is the unique identifier for the plugin registry Graft node.
const NodeID graft.ID = "plugins.registry"

func init() {
	graft.Register(graft.Node[ports.PluginResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{platform.NodeID, fs.WalkerNodeID},
		Run: func(ctx context.Context) (ports.PluginResolver, error) {
			p, err := graft.Dep[ports.Platform](ctx)
			if err != nil {
				return nil, err
			}

			walker, err := graft.Dep[ports.Walker](ctx)
			if err != nil {
				return nil, err
			}

			return NewRegistry(p.OS(), walker), nil
		},
	})
}
