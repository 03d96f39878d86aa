// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/plugkit/internal/core/domain"
)

// Executor defines the interface for running emitted native commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command to completion, streaming its output to the
	// given writers in addition to the logger.
	Execute(ctx context.Context, cmd *domain.NativeCommand, stdout, stderr io.Writer) error
}
