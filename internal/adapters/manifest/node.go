package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plugkit/internal/core/ports"
)

// NodeID is the unique identifier for the manifest opener Graft node.
const NodeID graft.ID = "adapter.command_store"

// Opener opens the command manifest of the package rooted at dir.
type Opener func(dir string) (ports.CommandStore, error)

func init() {
	graft.Register(graft.Node[Opener]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (Opener, error) {
			return func(dir string) (ports.CommandStore, error) {
				return NewStore(PathFor(dir))
			}, nil
		},
	})
}
