package platform

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/plugkit/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the platform Graft node.
	NodeID graft.ID = "adapter.platform"
	// EnvironmentNodeID is the unique identifier for the process environment snapshot.
	EnvironmentNodeID graft.ID = "adapter.environment"
)

func init() {
	graft.Register(graft.Node[ports.Platform]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Platform, error) {
			return Detect(), nil
		},
	})

	graft.Register(graft.Node[domain.Environment]{
		ID:        EnvironmentNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (domain.Environment, error) {
			p, err := graft.Dep[ports.Platform](ctx)
			if err != nil {
				return domain.Environment{}, err
			}
			return domain.NewEnvironment(os.Environ(), p.CaseInsensitiveEnv()), nil
		},
	})
}
