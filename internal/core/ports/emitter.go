package ports

import (
	"context"

	"go.trai.ch/plugkit/internal/core/domain"
)

// CommandEmitter translates the commands a plugin returns into native commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=emitter.go -destination=mocks/mock_emitter.go -package=mocks
type CommandEmitter interface {
	// EmitAll emits cmds in order. Files below pluginSourceDir become inputs
	// of every on-demand command.
	EmitAll(ctx context.Context, host Host, cmds []domain.BuildCommand, pluginSourceDir string) ([]domain.NativeCommand, error)
}
