// SPDX-License-Identifier: MPL-2.0

package modhost

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fopconsole/fop/internal/testutil"
)

func TestShellInstaller_InstallAndUninstall(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var stdout bytes.Buffer
	s, err := NewShellInstaller(ShellOptions{
		Dir:              dir,
		InstallCommand:   `echo "install {{.Module}}" >> calls.log`,
		UninstallCommand: `echo "uninstall $FOP_MODULE" >> calls.log; echo done`,
		Stdout:           &stdout,
	})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Uninstall(ctx, "ps_old"))
	require.NoError(t, s.Install(ctx, "ps_new"))

	assert.Equal(t, "uninstall ps_old\ninstall ps_new\n", testutil.MustReadFile(t, filepath.Join(dir, "calls.log")))
	assert.Equal(t, "done\n", stdout.String())
}

func TestShellInstaller_FailingCommand(t *testing.T) {
	t.Parallel()

	s, err := NewShellInstaller(ShellOptions{
		Dir:            t.TempDir(),
		InstallCommand: `echo "module {{.Module}} is broken" >&2; exit 3`,
	})
	require.NoError(t, err)

	err = s.Install(context.Background(), "ps_new")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCommandFailed)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "install", cmdErr.Action)
	assert.Equal(t, "ps_new", cmdErr.Module)
	assert.Equal(t, 3, cmdErr.ExitCode)
	assert.Contains(t, err.Error(), "exit status 3")
	assert.Contains(t, err.Error(), "module ps_new is broken")
}

func TestShellInstaller_SyntaxError(t *testing.T) {
	t.Parallel()

	s, err := NewShellInstaller(ShellOptions{Dir: t.TempDir(), InstallCommand: `if then`})
	require.NoError(t, err)

	err = s.Install(context.Background(), "ps_new")
	assert.ErrorIs(t, err, ErrCommandFailed)
}

func TestShellInstaller_EmptyCommandsAreNoOps(t *testing.T) {
	t.Parallel()

	s, err := NewShellInstaller(ShellOptions{Dir: t.TempDir()})
	require.NoError(t, err)

	ctx := context.Background()
	assert.NoError(t, s.Install(ctx, "ps_new"))
	assert.NoError(t, s.Uninstall(ctx, "ps_old"))

	installed, err := s.IsInstalled(ctx, "ps_old")
	require.NoError(t, err)
	assert.True(t, installed, "no status command means installed")
}

func TestShellInstaller_IsInstalled(t *testing.T) {
	t.Parallel()

	s, err := NewShellInstaller(ShellOptions{
		Dir:           t.TempDir(),
		StatusCommand: `test "{{.Module}}" = ps_present`,
	})
	require.NoError(t, err)

	ctx := context.Background()
	installed, err := s.IsInstalled(ctx, "ps_present")
	require.NoError(t, err)
	assert.True(t, installed)

	installed, err = s.IsInstalled(ctx, "ps_absent")
	require.NoError(t, err)
	assert.False(t, installed)
}

func TestShellInstaller_InvalidTemplate(t *testing.T) {
	t.Parallel()

	_, err := NewShellInstaller(ShellOptions{InstallCommand: "install {{.Module"})
	assert.Error(t, err)

	s, err := NewShellInstaller(ShellOptions{Dir: t.TempDir(), InstallCommand: "install {{.Missing}}"})
	require.NoError(t, err)
	err = s.Install(context.Background(), "ps_new")
	assert.ErrorIs(t, err, ErrCommandFailed)
}

func TestShellInstaller_Canceled(t *testing.T) {
	t.Parallel()

	s, err := NewShellInstaller(ShellOptions{Dir: t.TempDir(), InstallCommand: "echo hi"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = s.Install(ctx, "ps_new")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCommandFailed))
}

func TestShellInstaller_CoreUtils(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, err := NewShellInstaller(ShellOptions{
		Dir:              dir,
		CoreUtils:        true,
		InstallCommand:   `mkdir -p installed && touch installed/{{.Module}}`,
		UninstallCommand: `rm installed/{{.Module}}`,
		StatusCommand:    `cat installed/{{.Module}}`,
	})
	require.NoError(t, err)

	ctx := context.Background()
	installed, err := s.IsInstalled(ctx, "ps_new")
	require.NoError(t, err)
	assert.False(t, installed)

	require.NoError(t, s.Install(ctx, "ps_new"))
	assert.FileExists(t, filepath.Join(dir, "installed", "ps_new"))

	installed, err = s.IsInstalled(ctx, "ps_new")
	require.NoError(t, err)
	assert.True(t, installed)

	require.NoError(t, s.Uninstall(ctx, "ps_new"))
	assert.NoFileExists(t, filepath.Join(dir, "installed", "ps_new"))

	err = s.Uninstall(ctx, "ps_new")
	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, 1, cmdErr.ExitCode)
	assert.Contains(t, cmdErr.Stderr, "rm:")
}
