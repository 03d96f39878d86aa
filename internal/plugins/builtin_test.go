package plugins_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plugkit/internal/adapters/fs"
	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/plugkit/internal/core/ports/mocks"
	"go.trai.ch/plugkit/internal/plugins"
	"go.uber.org/mock/gomock"
)

const (
	pkgDir  = "/pkg"
	workDir = "/pkg/.plugkit/work/Lib/p"
)

func newHost(t *testing.T, pkg, work string) *mocks.MockHost {
	t.Helper()
	host := mocks.NewMockHost(gomock.NewController(t))
	host.EXPECT().PackageDirectory().Return(pkg).AnyTimes()
	host.EXPECT().WorkDirectory().Return(work).AnyTimes()
	return host
}

func TestCommandPlugin_WritesOutputThroughShell(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("runs sh")
	}
	work := filepath.Join(t.TempDir(), "work dir")
	require.NoError(t, os.MkdirAll(work, domain.DirPerm))

	cmds, err := (&plugins.CommandPlugin{GOOS: "linux"}).BuildCommands(context.Background(), newHost(t, pkgDir, work), &domain.Target{Name: "Lib"})
	require.NoError(t, err)
	require.Len(t, cmds, 1)

	cmd := cmds[0].(domain.OnDemand)
	output := filepath.Join(work, "CommandOutput.swift")
	assert.Equal(t, domain.Command{Name: "sh"}, cmd.Executable)
	assert.Equal(t, []string{output}, cmd.OutputFiles)
	require.Len(t, cmd.Arguments, 2)
	assert.Equal(t, "-c", cmd.Arguments[0])
	assert.True(t, strings.HasPrefix(cmd.Arguments[1], "echo let commandOutput = 1 > "))

	require.NoError(t, exec.Command("sh", cmd.Arguments...).Run())
	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "let commandOutput = 1\n", string(content))
}

func TestCommandPlugin_Windows(t *testing.T) {
	cmds, err := (&plugins.CommandPlugin{GOOS: "windows"}).BuildCommands(context.Background(), newHost(t, pkgDir, workDir), &domain.Target{Name: "Lib"})
	require.NoError(t, err)

	cmd := cmds[0].(domain.OnDemand)
	output := filepath.Join(workDir, "CommandOutput.swift")
	assert.Equal(t, domain.Command{Name: "cmd"}, cmd.Executable)
	assert.Equal(t, []string{"/c", `echo let commandOutput = 1 > "` + output + `"`}, cmd.Arguments)
}

func TestExecutableFilePlugin(t *testing.T) {
	for goos, script := range map[string]string{"linux": "Echo1Into2", "windows": "Echo1Into2.cmd"} {
		cmds, err := (&plugins.ExecutableFilePlugin{GOOS: goos}).BuildCommands(context.Background(), newHost(t, pkgDir, workDir), &domain.Target{})
		require.NoError(t, err)

		output := filepath.Join(workDir, "ExecutableOutput.swift")
		assert.Equal(t, []domain.BuildCommand{domain.OnDemand{
			DisplayName: "Running Echo1Into2",
			Executable:  domain.File{Path: filepath.Join(pkgDir, "DemoScripts", script)},
			Arguments:   []string{"let executableOutput = 1", output},
			OutputFiles: []string{output},
		}}, cmds, goos)
	}
}

func TestLocalTargetPlugin(t *testing.T) {
	targetDir := t.TempDir()
	inputsDir := filepath.Join(targetDir, plugins.GeneratorInputsDir)
	require.NoError(t, os.MkdirAll(inputsDir, domain.DirPerm))
	for _, name := range []string{"b.in", "a.in"} {
		require.NoError(t, os.WriteFile(filepath.Join(inputsDir, name), []byte(name), domain.FilePerm))
	}

	p := &plugins.LocalTargetPlugin{Walker: fs.NewWalker()}
	cmds, err := p.BuildCommands(context.Background(), newHost(t, pkgDir, workDir), &domain.Target{Name: "Lib", Directory: targetDir})
	require.NoError(t, err)

	outDir := filepath.Join(workDir, plugins.GeneratedResourcesDir)
	inputs := []string{filepath.Join(inputsDir, "a.in"), filepath.Join(inputsDir, "b.in")}
	assert.Equal(t, []domain.BuildCommand{domain.OnDemand{
		DisplayName: "Running GenerateResource",
		Executable:  domain.TargetInPackage{Name: plugins.ResourceGenerator},
		Arguments:   append(append([]string{}, inputs...), outDir),
		InputFiles:  inputs,
		OutputFiles: []string{filepath.Join(outDir, "a.out"), filepath.Join(outDir, "b.out")},
	}}, cmds)
}

func TestResourceGeneratorPlugin(t *testing.T) {
	p := &plugins.ResourceGeneratorPlugin{}
	host := newHost(t, pkgDir, workDir)

	cmds, err := p.BuildCommands(context.Background(), host, &domain.Target{SourceFiles: []string{"/pkg/Sources/Lib/lib.swift"}})
	require.NoError(t, err)
	assert.Empty(t, cmds)

	cmds, err = p.BuildCommands(context.Background(), host, &domain.Target{
		SourceFiles: []string{"/pkg/Sources/Lib/lib.swift", "/pkg/Sources/Lib/greeting.in"},
	})
	require.NoError(t, err)
	require.Len(t, cmds, 1)

	cmd := cmds[0].(domain.OnDemand)
	assert.Equal(t, "Running converter", cmd.DisplayName)
	assert.Equal(t, []string{"/pkg/Sources/Lib/greeting.in"}, cmd.InputFiles)
	assert.Equal(t, []string{filepath.Join(workDir, "GeneratedResources", "greeting.out")}, cmd.OutputFiles)
}

func TestScriptPlugin(t *testing.T) {
	cmds, err := (&plugins.ScriptPlugin{}).BuildCommands(context.Background(), newHost(t, pkgDir, workDir), &domain.Target{})
	require.NoError(t, err)

	cmd := cmds[0].(domain.OnDemand)
	assert.Equal(t, domain.Script{Path: filepath.Join(pkgDir, "DemoScripts", "Echo1Into2.swift")}, cmd.Executable)
	assert.Equal(t, []string{"let swiftScriptOutput = 1", filepath.Join(workDir, "SwiftScriptOutput.swift")}, cmd.Arguments)
}

func TestToolchainPlugin(t *testing.T) {
	cmds, err := (&plugins.ToolchainPlugin{}).BuildCommands(context.Background(), newHost(t, pkgDir, workDir), &domain.Target{})
	require.NoError(t, err)

	source := filepath.Join(pkgDir, "DemoScripts", "Dummy.c")
	output := filepath.Join(workDir, "Dummy.pp")
	assert.Equal(t, []domain.BuildCommand{domain.OnDemand{
		DisplayName: "Generating preprocessed C as resource",
		Executable:  domain.ToolchainCommand{Name: "clang"},
		Arguments:   []string{"-E", source, "-o", output},
		InputFiles:  []string{source},
		OutputFiles: []string{output},
	}}, cmds)
}
