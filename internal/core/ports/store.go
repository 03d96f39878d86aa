package ports

import "go.trai.ch/plugkit/internal/core/domain"

// CommandStore persists the native commands emitted for each target and plugin.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CommandStore interface {
	// All returns every entry ordered by key.
	All() ([]domain.EmittedCommands, error)

	// Replace swaps the stored entries for entries in one write. On failure
	// the previous contents are kept.
	Replace(entries []domain.EmittedCommands) error
}
