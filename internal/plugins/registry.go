// Package plugins holds the build tool plugins shipped with plugkit and the
// registry the project file selects them from.
package plugins

import (
	"slices"

	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/plugkit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Declarative is the name of the plugin driven by commands in the project file.
const Declarative = "declarative"

var _ ports.PluginResolver = (*Registry)(nil)

// Registry resolves plugin declarations to implementations.
type Registry struct {
	plugins map[string]ports.BuildToolPlugin
}

// NewRegistry creates a Registry holding the built-in plugins for goos.
func NewRegistry(goos string, walker ports.Walker) *Registry {
	r := &Registry{plugins: make(map[string]ports.BuildToolPlugin)}
	r.Register("command", &CommandPlugin{GOOS: goos})
	r.Register("executable-file", &ExecutableFilePlugin{GOOS: goos})
	r.Register("local-target", &LocalTargetPlugin{Walker: walker})
	r.Register("resource-generator", &ResourceGeneratorPlugin{})
	r.Register("script", &ScriptPlugin{})
	r.Register("toolchain", &ToolchainPlugin{})
	return r
}

// Register adds or replaces the plugin known as name.
func (r *Registry) Register(name string, plugin ports.BuildToolPlugin) {
	r.plugins[name] = plugin
}

// Names returns the registered plugin names in order, including Declarative.
func (r *Registry) Names() []string {
	names := []string{Declarative}
	for name := range r.plugins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Resolve returns the implementation spec uses.
func (r *Registry) Resolve(spec domain.PluginSpec) (ports.BuildToolPlugin, error) {
	uses := spec.Uses
	if uses == "" {
		uses = spec.Name
	}
	if uses == Declarative {
		return &DeclarativePlugin{Commands: spec.Commands}, nil
	}
	plugin, ok := r.plugins[uses]
	if !ok {
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrPluginNotFound, "failed to resolve plugin"), "plugin", spec.Name), "uses", uses)
	}
	return plugin, nil
}
