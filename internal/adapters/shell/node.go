package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/plugkit/internal/adapters/logger"
	"go.trai.ch/plugkit/internal/adapters/platform"
	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/plugkit/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the executor Graft node.
	NodeID graft.ID = "adapter.executor"
	// RunnerNodeID is the unique identifier for the process runner Graft node.
	RunnerNodeID graft.ID = "adapter.process_runner"
)

func init() {
	graft.Register(graft.Node[ports.Executor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, platform.EnvironmentNodeID},
		Run: func(ctx context.Context) (ports.Executor, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			env, err := graft.Dep[domain.Environment](ctx)
			if err != nil {
				return nil, err
			}
			return NewExecutor(log, env), nil
		},
	})

	graft.Register(graft.Node[ports.ProcessRunner]{
		ID:        RunnerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProcessRunner, error) {
			return NewRunner(), nil
		},
	})
}
