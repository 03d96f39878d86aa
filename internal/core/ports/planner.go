package ports

import (
	"context"

	"go.trai.ch/plugkit/internal/core/domain"
)

// Planner resolves executable descriptions into invocations.
//
//go:generate go run go.uber.org/mock/mockgen -source=planner.go -destination=mocks/mock_planner.go -package=mocks
type Planner interface {
	// Plan returns the program, argument prefix and extra inputs for exe.
	Plan(ctx context.Context, host Host, exe domain.Executable) (domain.Invocation, error)
}
