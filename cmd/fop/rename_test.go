// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fopconsole/fop/internal/testutil"
	"github.com/fopconsole/fop/internal/tui"
	"github.com/fopconsole/fop/pkg/types"
)

// echoCommands records every shop command on stdout instead of running PHP.
const echoCommands = `	install_command: "echo installing {{.Module}}"
	uninstall_command: "echo uninstalling {{.Module}}"
	status_command: "test -d modules/{{.Module}}"`

type answers []bool

func (a *answers) Confirm(context.Context, tui.ConfirmOptions) (bool, error) {
	if len(*a) == 0 {
		return false, errors.New("unexpected prompt")
	}
	answer := (*a)[0]
	*a = (*a)[1:]
	return answer, nil
}

func setupShopRoot(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	testutil.WriteTree(t, filepath.Join(root, "modules", "ps_oldname"), map[string]string{
		"module.cue":     "name: \"ps_oldname\"\nauthor: \"OldAuthor\"\n",
		"ps_oldname.php": "class Ps_Oldname extends Module {\n  $this->name = 'ps_oldname';\n  $this->displayName = 'Old Title';\n}\n",
	})
	return root
}

func TestRename_Yes(t *testing.T) {
	t.Parallel()

	root := setupShopRoot(t)
	cfg := writeConfig(t, root, echoCommands)

	stdout, stderr, err := runFop(t, Dependencies{}, "--config", cfg,
		"rename", "ps_oldname", "ps_newname", "--yes", "--replace", "Old Title,New Title")
	if err != nil {
		t.Fatalf("rename failed: %v\nstderr:\n%s", err, stderr)
	}

	for _, want := range []string{"Occurrence", "uninstalling ps_oldname", "installing ps_newname", "Renamed"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}

	tree := testutil.ReadTree(t, filepath.Join(root, "modules", "ps_newname"))
	php, ok := tree["ps_newname.php"]
	if !ok {
		t.Fatalf("renamed main file missing, got %v", tree)
	}
	if !strings.Contains(php, "'ps_newname'") || !strings.Contains(php, "'New Title'") {
		t.Errorf("main file not rewritten:\n%s", php)
	}
	if strings.Contains(strings.ToLower(php), "oldname") {
		t.Errorf("old name left in main file:\n%s", php)
	}
	if matches, _ := filepath.Glob(filepath.Join(root, "modules", "ps_oldname")); len(matches) != 0 {
		t.Error("old module directory should be removed")
	}
}

func TestRename_DeclineExitsZero(t *testing.T) {
	t.Parallel()

	root := setupShopRoot(t)
	cfg := writeConfig(t, root, echoCommands)
	prompter := &answers{false}

	stdout, _, err := runFop(t, Dependencies{Prompter: prompter}, "--config", cfg,
		"rename", "ps_oldname", "ps_newname")
	if err != nil {
		t.Fatalf("declined rename should succeed, got %v", err)
	}
	if !strings.Contains(stdout, "Stopped before") {
		t.Errorf("stdout should mention the declined step:\n%s", stdout)
	}
	if matches, _ := filepath.Glob(filepath.Join(root, "modules", "ps_newname")); len(matches) != 0 {
		t.Error("nothing should be written after declining the replacements")
	}
}

func TestRename_KeepOldDeclineInstall(t *testing.T) {
	t.Parallel()

	root := setupShopRoot(t)
	cfg := writeConfig(t, root, echoCommands)
	prompter := &answers{true, false}

	stdout, _, err := runFop(t, Dependencies{Prompter: prompter}, "--config", cfg,
		"rename", "ps_oldname", "ps_newname", "--keep-old")
	if err != nil {
		t.Fatalf("rename failed: %v", err)
	}
	if strings.Contains(stdout, "installing") {
		t.Errorf("no shop command should run:\n%s", stdout)
	}
	for _, dir := range []string{"ps_oldname", "ps_newname"} {
		if matches, _ := filepath.Glob(filepath.Join(root, "modules", dir)); len(matches) != 1 {
			t.Errorf("modules/%s should exist", dir)
		}
	}
}

func TestRename_DryRun(t *testing.T) {
	t.Parallel()

	root := setupShopRoot(t)
	cfg := writeConfig(t, root, echoCommands)

	stdout, _, err := runFop(t, Dependencies{}, "--config", cfg,
		"rename", "ps_oldname", "ps_newname", "--dry-run")
	if err != nil {
		t.Fatalf("dry run failed: %v", err)
	}
	for _, want := range []string{"dry run", "ps_oldname.php", "ps_newname.php"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
	if matches, _ := filepath.Glob(filepath.Join(root, "modules", "ps_newname")); len(matches) != 0 {
		t.Error("dry run must not create the new module")
	}
}

func TestRename_ExitCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want types.ExitCode
	}{
		{"invalid old name", []string{"ps-old", "ps_new"}, types.ExitUsage},
		{"invalid extra", []string{"ps_oldname", "ps_new", "--replace", "no-comma"}, types.ExitUsage},
		{"missing module", []string{"ps_missing", "ps_new", "--yes"}, types.ExitFailure},
		{"target exists", []string{"ps_oldname", "ps_oldname", "--yes"}, types.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root := setupShopRoot(t)
			cfg := writeConfig(t, root, echoCommands)

			args := append([]string{"--config", cfg, "rename"}, tt.args...)
			_, stderr, err := runFop(t, Dependencies{}, args...)

			var exitErr *ExitError
			if !errors.As(err, &exitErr) {
				t.Fatalf("err = %v, want *ExitError", err)
			}
			if exitErr.Code != tt.want {
				t.Errorf("exit code = %d, want %d", exitErr.Code, tt.want)
			}
			if !strings.Contains(stderr, "Error") {
				t.Errorf("stderr should report the error:\n%s", stderr)
			}
		})
	}
}

func TestRename_InstallFailure(t *testing.T) {
	t.Parallel()

	root := setupShopRoot(t)
	cfg := writeConfig(t, root, `	install_command: "exit 3"
	uninstall_command: ""`)

	stdout, _, err := runFop(t, Dependencies{}, "--config", cfg,
		"rename", "ps_oldname", "ps_newname", "--yes")

	var exitErr *ExitError
	if !errors.As(err, &exitErr) || exitErr.Code != types.ExitFailure {
		t.Fatalf("err = %v, want ExitError with code 1", err)
	}
	if !strings.Contains(stdout, "Copied") {
		t.Errorf("completed steps should be listed:\n%s", stdout)
	}
}
