package ports

import (
	"context"

	"go.trai.ch/plugkit/internal/core/domain"
)

// BuildToolPlugin computes the build commands for a target.
//
//go:generate go run go.uber.org/mock/mockgen -source=plugin.go -destination=mocks/mock_plugin.go -package=mocks
type BuildToolPlugin interface {
	BuildCommands(ctx context.Context, host Host, target *domain.Target) ([]domain.BuildCommand, error)
}

// PluginResolver maps a declared plugin to its implementation.
type PluginResolver interface {
	Resolve(spec domain.PluginSpec) (BuildToolPlugin, error)
}
