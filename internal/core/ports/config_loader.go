package ports

import "go.trai.ch/plugkit/internal/core/domain"

// ConfigLoader defines the interface for loading the project file.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the project file at path and returns the project it describes.
	Load(path string) (*domain.Project, error)
}
