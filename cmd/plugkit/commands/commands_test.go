package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plugkit/cmd/plugkit/commands"
	"go.trai.ch/plugkit/internal/app"
	"go.trai.ch/plugkit/internal/build"
	"go.trai.ch/plugkit/internal/core/domain"
)

type mockApp struct {
	configPath string
	opts       app.ExecOptions
	calls      []string

	emitFunc func() ([]domain.EmittedCommands, error)
	execErr  error
	path     string
}

func (m *mockApp) Emit(_ context.Context, configPath string) ([]domain.EmittedCommands, error) {
	m.configPath = configPath
	m.calls = append(m.calls, "emit")
	if m.emitFunc != nil {
		return m.emitFunc()
	}
	return nil, nil
}

func (m *mockApp) Exec(_ context.Context, configPath string, opts app.ExecOptions) ([]app.CommandResult, error) {
	m.configPath, m.opts = configPath, opts
	m.calls = append(m.calls, "exec")
	return nil, m.execErr
}

func (m *mockApp) Watch(_ context.Context, configPath string, opts app.ExecOptions) error {
	m.configPath, m.opts = configPath, opts
	m.calls = append(m.calls, "watch")
	return nil
}

func (m *mockApp) Which(_ context.Context, command string) (string, error) {
	m.calls = append(m.calls, "which "+command)
	return m.path, nil
}

func (m *mockApp) Toolchain(_ context.Context, configPath, command string) (string, error) {
	m.configPath = configPath
	m.calls = append(m.calls, "toolchain "+command)
	return m.path, nil
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Emit(t *testing.T) {
	t.Run("uses the default project file", func(t *testing.T) {
		mock := &mockApp{}
		out, err := execute(t, mock, "emit")
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultConfigFile, mock.configPath)
		assert.Empty(t, out)
	})

	t.Run("prints JSON", func(t *testing.T) {
		entries := []domain.EmittedCommands{{Plugin: "gen", Target: "Lib", Commands: []domain.NativeCommand{{Kind: domain.KindBuild, DisplayName: "x", Executable: "/bin/x"}}}}
		mock := &mockApp{emitFunc: func() ([]domain.EmittedCommands, error) { return entries, nil }}

		out, err := execute(t, mock, "emit", "--json", "-c", "other.yaml")
		require.NoError(t, err)
		assert.Equal(t, "other.yaml", mock.configPath)

		var got []domain.EmittedCommands
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		assert.Equal(t, entries, got)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{emitFunc: func() ([]domain.EmittedCommands, error) { return nil, errors.New("simulated error") }}
		_, err := execute(t, mock, "emit")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Exec(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		mock := &mockApp{}
		_, err := execute(t, mock, "exec", "--force", "--no-emit", "--config", "p.yaml")
		require.NoError(t, err)
		assert.Equal(t, []string{"exec"}, mock.calls)
		assert.Equal(t, app.ExecOptions{Force: true, NoEmit: true}, mock.opts)
		assert.Equal(t, "p.yaml", mock.configPath)
	})

	t.Run("watch", func(t *testing.T) {
		mock := &mockApp{}
		_, err := execute(t, mock, "exec", "-w")
		require.NoError(t, err)
		assert.Equal(t, []string{"watch"}, mock.calls)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{execErr: domain.ErrCommandFailed}
		_, err := execute(t, mock, "exec")
		require.ErrorIs(t, err, domain.ErrCommandFailed)
	})
}

func TestCommands_Which(t *testing.T) {
	mock := &mockApp{path: "/usr/bin/sh"}
	out, err := execute(t, mock, "which", "sh")
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/sh\n", out)
	assert.Equal(t, []string{"which sh"}, mock.calls)

	_, err = execute(t, &mockApp{}, "which")
	require.Error(t, err)
}

func TestCommands_WhichURL(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX path")
	}
	mock := &mockApp{path: "/opt/my tools/sh"}
	out, err := execute(t, mock, "which", "--url", "sh")
	require.NoError(t, err)
	assert.Equal(t, "file:///opt/my%20tools/sh\n", out)
}

func TestCommands_Toolchain(t *testing.T) {
	mock := &mockApp{path: "/toolchain/usr/bin/clang"}
	out, err := execute(t, mock, "toolchain", "clang")
	require.NoError(t, err)
	assert.Equal(t, "/toolchain/usr/bin/clang\n", out)
	assert.Equal(t, domain.DefaultConfigFile, mock.configPath)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
	assert.Contains(t, out, "plugkit version")
}
