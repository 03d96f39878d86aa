package ports

import (
	"context"

	"go.trai.ch/plugkit/internal/core/domain"
)

// ProcessRunner runs a child process to completion and captures its output.
//
//go:generate go run go.uber.org/mock/mockgen -source=process.go -destination=mocks/mock_process.go -package=mocks
type ProcessRunner interface {
	// Run returns the process's standard output. A nonzero exit yields a
	// *domain.NonzeroExitError carrying both streams.
	Run(ctx context.Context, req domain.ProcessRequest) (string, error)
}

// ScratchSpace hands out fresh, empty temporary directories.
type ScratchSpace interface {
	// Make creates a new uniquely named directory under root.
	Make(root string) (string, error)

	// Remove deletes a scratch directory, ignoring failures.
	Remove(path string)
}
