package plugins_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plugkit/internal/adapters/fs"
	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/plugkit/internal/plugins"
)

func TestRegistry_Resolve(t *testing.T) {
	r := plugins.NewRegistry("linux", fs.NewWalker())

	tests := []struct {
		spec domain.PluginSpec
		want any
	}{
		{domain.PluginSpec{Name: "c", Uses: "command"}, &plugins.CommandPlugin{}},
		{domain.PluginSpec{Name: "executable-file"}, &plugins.ExecutableFilePlugin{}},
		{domain.PluginSpec{Name: "l", Uses: "local-target"}, &plugins.LocalTargetPlugin{}},
		{domain.PluginSpec{Name: "r", Uses: "resource-generator"}, &plugins.ResourceGeneratorPlugin{}},
		{domain.PluginSpec{Name: "s", Uses: "script"}, &plugins.ScriptPlugin{}},
		{domain.PluginSpec{Name: "t", Uses: "toolchain"}, &plugins.ToolchainPlugin{}},
	}
	for _, tt := range tests {
		t.Run(tt.spec.Name, func(t *testing.T) {
			got, err := r.Resolve(tt.spec)
			require.NoError(t, err)
			assert.IsType(t, tt.want, got)
		})
	}
}

func TestRegistry_ResolveDeclarative(t *testing.T) {
	r := plugins.NewRegistry("linux", fs.NewWalker())
	commands := []domain.CommandSpec{{DisplayName: "one"}}

	got, err := r.Resolve(domain.PluginSpec{Name: "echo", Uses: plugins.Declarative, Commands: commands})
	require.NoError(t, err)

	require.IsType(t, &plugins.DeclarativePlugin{}, got)
	assert.Equal(t, commands, got.(*plugins.DeclarativePlugin).Commands)
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	r := plugins.NewRegistry("linux", fs.NewWalker())

	_, err := r.Resolve(domain.PluginSpec{Name: "ghost"})
	require.ErrorIs(t, err, domain.ErrPluginNotFound)
}

func TestRegistry_RegisterOverrides(t *testing.T) {
	r := plugins.NewRegistry("linux", fs.NewWalker())
	custom := &plugins.ScriptPlugin{}
	r.Register("custom", custom)

	got, err := r.Resolve(domain.PluginSpec{Name: "custom"})
	require.NoError(t, err)
	assert.Same(t, custom, got)

	assert.Equal(t, []string{
		"command", "custom", "declarative", "executable-file", "local-target",
		"resource-generator", "script", "toolchain",
	}, r.Names())
}
