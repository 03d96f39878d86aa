package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/plugkit/internal/core/domain"
)

func TestExecutable_Describe(t *testing.T) {
	tests := []struct {
		exe  domain.Executable
		want string
	}{
		{domain.TargetInPackage{Name: "GenRsrc"}, "target GenRsrc"},
		{domain.File{Path: "/bin/tool"}, "file /bin/tool"},
		{domain.Command{Name: "sh"}, "command sh"},
		{domain.Script{Path: "/s/run.swift"}, "script /s/run.swift"},
		{domain.ToolchainCommand{Name: "clang"}, "toolchain command clang"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.exe.Describe())
	}
}

func TestInvocation_Arguments(t *testing.T) {
	inv := domain.Invocation{Executable: "/bin/bash", ArgumentPrefix: []string{"-eo", "pipefail"}}

	assert.Equal(t, []string{"-eo", "pipefail", "a", "b"}, inv.Arguments("a", "b"))
	assert.Equal(t, []string{"-eo", "pipefail"}, inv.Arguments())
	assert.Nil(t, domain.Invocation{Executable: "/bin/true"}.Arguments())

	args := inv.Arguments("x")
	args[0] = "-x"
	assert.Equal(t, []string{"-eo", "pipefail"}, inv.ArgumentPrefix, "prefix must not be aliased")
}

func TestEmittedCommands_Key(t *testing.T) {
	e := domain.EmittedCommands{Plugin: "gen", Target: "App"}

	assert.Equal(t, "App/gen", e.Key())
}

func TestBuildCommand_Name(t *testing.T) {
	var cmds = []domain.BuildCommand{
		domain.OnDemand{DisplayName: "on demand"},
		domain.Unconditional{DisplayName: "always"},
	}

	assert.Equal(t, "on demand", cmds[0].Name())
	assert.Equal(t, "always", cmds[1].Name())
}
