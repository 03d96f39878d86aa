package planner_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plugkit/internal/adapters/host"
	"go.trai.ch/plugkit/internal/adapters/platform"
	"go.trai.ch/plugkit/internal/core/domain"
	"go.trai.ch/plugkit/internal/core/ports/mocks"
	"go.trai.ch/plugkit/internal/engine/locator"
	"go.trai.ch/plugkit/internal/engine/planner"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	host    *mocks.MockHost
	scratch *mocks.MockScratchSpace
	logger  *mocks.MockLogger
	runner  *mocks.MockProcessRunner
	workDir string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX search paths")
	}
	ctrl := gomock.NewController(t)
	f := &fixture{
		host:    mocks.NewMockHost(ctrl),
		scratch: mocks.NewMockScratchSpace(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		runner:  mocks.NewMockProcessRunner(ctrl),
		workDir: t.TempDir(),
	}
	f.host.EXPECT().WorkDirectory().Return(f.workDir).AnyTimes()
	return f
}

func (f *fixture) planner(env ...string) *planner.Planner {
	p := platform.For(platform.Linux)
	e := domain.NewEnvironment(env, false)
	loc := locator.New(p, e, f.runner, f.scratch, f.logger)
	return planner.New(p, e, loc, f.scratch, f.logger)
}

func writeTool(t *testing.T, dir, name string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), domain.ExecPerm))
	return path
}

// newToolchain lays out <root>/usr/{bin,lib/plugkit/PluginAPI} and returns
// the plugin support directory and the bin directory.
func newToolchain(t *testing.T) (support, bin string) {
	t.Helper()
	root := t.TempDir()
	support = filepath.Join(append([]string{root, "usr"}, domain.PluginSupportPathSuffix...)...)
	require.NoError(t, os.MkdirAll(support, domain.DirPerm))
	bin = filepath.Join(root, "usr", "bin")
	require.NoError(t, os.MkdirAll(bin, domain.DirPerm))
	return support, bin
}

func TestPlan_File(t *testing.T) {
	f := newFixture(t)

	inv, err := f.planner().Plan(context.Background(), f.host, domain.File{Path: "/opt/tools/../tools/gen"})
	require.NoError(t, err)

	assert.Equal(t, domain.Invocation{Executable: "/opt/tools/gen"}, inv)
}

func TestPlan_EmptyNames(t *testing.T) {
	f := newFixture(t)
	p := f.planner()

	for _, exe := range []domain.Executable{
		domain.File{},
		domain.Command{},
		domain.ToolchainCommand{},
		domain.TargetInPackage{},
		domain.Script{},
	} {
		_, err := p.Plan(context.Background(), f.host, exe)
		require.ErrorIs(t, err, domain.ErrEmptyCommandName, "%T", exe)
	}
}

func TestPlan_NilExecutable(t *testing.T) {
	f := newFixture(t)

	_, err := f.planner().Plan(context.Background(), f.host, nil)
	require.ErrorIs(t, err, domain.ErrUnknownExecutable)
}

func TestPlan_Command(t *testing.T) {
	f := newFixture(t)
	dir := t.TempDir()
	want := writeTool(t, dir, "protoc")

	inv, err := f.planner("PATH=/nonexistent:"+dir).Plan(context.Background(), f.host, domain.Command{Name: "protoc"})
	require.NoError(t, err)

	assert.Equal(t, want, inv.Executable)
	assert.Empty(t, inv.ArgumentPrefix)
	assert.Empty(t, inv.AdditionalSources)
}

func TestPlan_CommandNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.planner("PATH=/nonexistent").Plan(context.Background(), f.host, domain.Command{Name: "protoc"})
	require.ErrorIs(t, err, domain.ErrExecutableNotFound)
}

func TestPlan_ToolchainCommand(t *testing.T) {
	f := newFixture(t)
	support, bin := newToolchain(t)
	want := writeTool(t, bin, "clang")

	inv, err := f.planner("PATH="+support).Plan(context.Background(), f.host, domain.ToolchainCommand{Name: "clang"})
	require.NoError(t, err)

	assert.Equal(t, domain.Invocation{Executable: want}, inv)
}

func (f *fixture) expectTargetGraph() {
	f.host.EXPECT().Target("GenRsrc").Return(&domain.Target{Name: "GenRsrc", Kind: domain.TargetExecutable}, nil)
	f.host.EXPECT().TargetDependencies("GenRsrc").Return([]string{"Support"}, nil)
	f.host.EXPECT().TargetSources("GenRsrc").Return([]string{"/pkg/Sources/GenRsrc/main.swift", "/pkg/Sources/Shared/x.swift"}, nil)
	f.host.EXPECT().TargetSources("Support").Return([]string{"/pkg/Sources/Shared/x.swift", "/pkg/Sources/Support/a.swift"}, nil)
}

var wantTargetSources = []string{
	"/pkg/Sources/GenRsrc/main.swift",
	"/pkg/Sources/Shared/x.swift",
	"/pkg/Sources/Support/a.swift",
}

func TestPlan_TargetInPackage_HostTool(t *testing.T) {
	f := newFixture(t)
	f.expectTargetGraph()
	f.host.EXPECT().ToolPath(gomock.Any(), "GenRsrc").Return("/pkg/.build/debug/GenRsrc", nil)

	inv, err := f.planner().Plan(context.Background(), f.host, domain.TargetInPackage{Name: "GenRsrc"})
	require.NoError(t, err)

	assert.Equal(t, domain.Invocation{
		Executable:        "/pkg/.build/debug/GenRsrc",
		AdditionalSources: wantTargetSources,
	}, inv)
}

func TestPlan_TargetInPackage_ProjectGraph(t *testing.T) {
	f := newFixture(t)
	root := t.TempDir()
	tool := writeTool(t, filepath.Join(root, ".build", "debug"), "GenRsrc")
	src := func(parts ...string) string { return filepath.Join(append([]string{root, "Sources"}, parts...)...) }

	pkg := domain.NewPackage("Demo", root)
	for _, target := range []*domain.Target{
		{Name: "GenRsrc", Kind: domain.TargetExecutable, SourceFiles: []string{src("GenRsrc", "main.swift"), src("Shared", "x.swift")}, Dependencies: []string{"Support", "Util"}},
		{Name: "Support", Kind: domain.TargetLibrary, SourceFiles: []string{src("Shared", "x.swift"), src("Support", "a.swift")}, Dependencies: []string{"Util"}},
		{Name: "Util", Kind: domain.TargetLibrary, SourceFiles: []string{src("Util", "u.swift")}},
		{Name: "Unrelated", Kind: domain.TargetLibrary, SourceFiles: []string{src("Unrelated", "z.swift")}},
	} {
		require.NoError(t, pkg.AddTarget(target))
	}
	h := host.New(&domain.Project{Package: pkg, WorkDirectory: f.workDir, BuildTool: "swift"})

	inv, err := f.planner().Plan(context.Background(), h, domain.TargetInPackage{Name: "GenRsrc"})
	require.NoError(t, err)

	assert.Equal(t, domain.Invocation{
		Executable: tool,
		AdditionalSources: []string{
			src("GenRsrc", "main.swift"),
			src("Shared", "x.swift"),
			src("Support", "a.swift"),
			src("Util", "u.swift"),
		},
	}, inv)
}

func TestPlan_TargetInPackage_ReentrantBuild(t *testing.T) {
	f := newFixture(t)
	support, bin := newToolchain(t)
	swift := writeTool(t, bin, "swift")
	scratch := filepath.Join(f.workDir, "scratch-1")

	f.expectTargetGraph()
	f.host.EXPECT().ToolPath(gomock.Any(), "GenRsrc").Return("", domain.ErrToolNotFound)
	f.host.EXPECT().BuildTool().Return("swift").AnyTimes()
	f.host.EXPECT().PackageDirectory().Return("/pkg")
	f.logger.EXPECT().Warn(gomock.Any())
	f.scratch.EXPECT().Make(f.workDir).Return(scratch, nil)

	inv, err := f.planner("PATH="+support).Plan(context.Background(), f.host, domain.TargetInPackage{Name: "GenRsrc"})
	require.NoError(t, err)

	assert.Equal(t, domain.Invocation{
		Executable: swift,
		ArgumentPrefix: []string{
			"run", "--disable-sandbox", "--package-path", "/pkg", "--scratch-path", scratch, "GenRsrc",
		},
		AdditionalSources: wantTargetSources,
	}, inv)
	assert.Equal(t, append(inv.ArgumentPrefix, "in.txt"), inv.Arguments("in.txt"))
}

func TestPlan_TargetInPackage_SharedBuildDirectory(t *testing.T) {
	f := newFixture(t)
	support, bin := newToolchain(t)
	swift := writeTool(t, bin, "swift")

	f.expectTargetGraph()
	f.host.EXPECT().ToolPath(gomock.Any(), "GenRsrc").Return("", domain.ErrToolNotFound)
	f.host.EXPECT().BuildTool().Return("swift").AnyTimes()
	f.host.EXPECT().PackageDirectory().Return("/pkg")
	f.logger.EXPECT().Warn(gomock.Any())

	p := f.planner("PATH="+support, domain.SharedBuildDirEnvVar+"=true")
	inv, err := p.Plan(context.Background(), f.host, domain.TargetInPackage{Name: "GenRsrc"})
	require.NoError(t, err)

	assert.Equal(t, swift, inv.Executable)
	assert.Equal(t, []string{"run", "--disable-sandbox", "--package-path", "/pkg", "--skip-build", "GenRsrc"}, inv.ArgumentPrefix)
}

func TestPlan_TargetInPackage_UnknownTarget(t *testing.T) {
	f := newFixture(t)
	f.host.EXPECT().Target("Ghost").Return(nil, domain.ErrTargetNotFound)

	_, err := f.planner().Plan(context.Background(), f.host, domain.TargetInPackage{Name: "Ghost"})
	require.ErrorIs(t, err, domain.ErrTargetNotFound)
}

func TestPlan_Script(t *testing.T) {
	f := newFixture(t)
	dir := t.TempDir()
	bash := writeTool(t, dir, "bash")
	script := filepath.Join(t.TempDir(), "Echo1Into2.swift")

	p := f.planner("PATH=" + dir)
	p.SetNameGenerator(func() string { return "scratch-id" })

	inv, err := p.Plan(context.Background(), f.host, domain.Script{Path: script})
	require.NoError(t, err)

	assert.Equal(t, bash, inv.Executable)
	assert.Equal(t, []string{
		"-eo", "pipefail", "-c", planner.ScriptPipeline([]string{"swiftc"}),
		"ignored", filepath.Join(f.workDir, "scratch-id"), script,
	}, inv.ArgumentPrefix)
	assert.Equal(t, []string{script}, inv.AdditionalSources)
}

func TestPlan_ScriptWithoutShell(t *testing.T) {
	f := newFixture(t)

	_, err := f.planner("PATH=/nonexistent").Plan(context.Background(), f.host, domain.Script{Path: "/s/run.swift"})
	require.ErrorIs(t, err, domain.ErrExecutableNotFound)
	assert.True(t, strings.Contains(err.Error(), "bash"))
}
