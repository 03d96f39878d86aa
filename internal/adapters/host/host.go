// Package host serves the plugin host capability from a loaded project file.
package host

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/plugkit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Host = (*Host)(nil)

// buildProductsDir is where the host build tool leaves debug products.
var buildProductsDir = filepath.Join(".build", "debug")

// Host implements ports.Host for a project described by plugkit.yaml.
type Host struct {
	project *domain.Project
	workDir string
}

// New creates a Host rooted at the project's work directory.
func New(project *domain.Project) *Host {
	return &Host{
		project: project,
		workDir: project.WorkDirectory,
	}
}

// Scoped returns a Host whose work directory is private to one plugin
// applied to one target.
func (h *Host) Scoped(target, plugin string) *Host {
	return &Host{
		project: h.project,
		workDir: filepath.Join(h.project.WorkDirectory, target, plugin),
	}
}

// WorkDirectory implements ports.Host.
func (h *Host) WorkDirectory() string {
	return h.workDir
}

// PackageDirectory implements ports.Host.
func (h *Host) PackageDirectory() string {
	return h.project.Package.Directory
}

// BuildTool implements ports.Host.
func (h *Host) BuildTool() string {
	return h.project.BuildTool
}

// ToolPath returns the executable registered for name in the project file,
// or the product the build tool leaves in its debug directory.
func (h *Host) ToolPath(_ context.Context, name string) (string, error) {
	candidates := make([]string, 0, 2)
	if path, ok := h.project.Tools[name]; ok {
		candidates = append(candidates, path)
	}
	candidates = append(candidates, filepath.Join(h.project.Package.Directory, buildProductsDir, name))

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, nil
		}
	}

	err := zerr.With(zerr.Wrap(domain.ErrToolNotFound, "host cannot provide tool"), "tool", name)
	return "", zerr.With(err, "candidates", candidates)
}

// Target implements ports.Host.
func (h *Host) Target(name string) (*domain.Target, error) {
	target, ok := h.project.Package.Target(name)
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrTargetNotFound, "host lookup failed"), "target", name)
	}
	return target, nil
}

// TargetSources implements ports.Host.
func (h *Host) TargetSources(name string) ([]string, error) {
	target, err := h.Target(name)
	if err != nil {
		return nil, err
	}
	return target.SourceFiles, nil
}

// TargetDependencies implements ports.Host.
func (h *Host) TargetDependencies(name string) ([]string, error) {
	deps, err := h.project.Package.TransitiveDependencies(name)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(deps))
	for _, dep := range deps {
		names = append(names, dep.Name)
	}
	return names, nil
}
