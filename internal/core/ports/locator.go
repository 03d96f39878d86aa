package ports

import (
	"context"

	"go.trai.ch/plugkit/internal/core/domain"
)

// ExecutableLocator finds programs on the search path and in the toolchain.
//
//go:generate go run go.uber.org/mock/mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type ExecutableLocator interface {
	// SearchPath returns the process search path.
	SearchPath() domain.SearchPath

	// Locate returns the program invoked as command. Lookups that need
	// scratch space create it under workDir.
	Locate(ctx context.Context, workDir, command string, searchPath domain.SearchPath) (string, error)

	// ToolchainExecutable returns the toolchain program invoked as command,
	// falling back to the search path and then to the host.
	ToolchainExecutable(ctx context.Context, host Host, command string) (string, error)
}
