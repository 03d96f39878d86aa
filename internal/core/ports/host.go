package ports

import (
	"context"

	"go.trai.ch/plugkit/internal/core/domain"
)

// Host is the build system a plugin runs inside.
//
//go:generate go run go.uber.org/mock/mockgen -source=host.go -destination=mocks/mock_host.go -package=mocks
type Host interface {
	// WorkDirectory is the plugin's private writable directory.
	WorkDirectory() string

	// PackageDirectory is the root directory of the package being built.
	PackageDirectory() string

	// BuildTool is the host build tool command run for reentrant builds.
	BuildTool() string

	// ToolPath returns the location of an executable the host can build or provide.
	ToolPath(ctx context.Context, name string) (string, error)

	// Target returns the named target of the package graph.
	Target(name string) (*domain.Target, error)

	// TargetSources returns the source files of the named target.
	TargetSources(name string) ([]string, error)

	// TargetDependencies returns the names of every target the named target
	// transitively depends on, each once.
	TargetDependencies(name string) ([]string, error)
}
