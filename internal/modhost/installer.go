// SPDX-License-Identifier: MPL-2.0

package modhost

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// ErrCommandFailed is returned when a module command exits non-zero or cannot run.
var ErrCommandFailed = errors.New("module command failed")

type (
	// Installer manages the install state of modules in a shop.
	Installer interface {
		IsInstalled(ctx context.Context, module string) (bool, error)
		Install(ctx context.Context, module string) error
		Uninstall(ctx context.Context, module string) error
	}

	// ShellOptions configures a ShellInstaller. Commands are text/template
	// strings; {{.Module}} expands to the module directory name.
	ShellOptions struct {
		// Dir is the working directory of every command (the shop root).
		Dir string
		// InstallCommand installs a module. Empty makes Install a no-op.
		InstallCommand string
		// UninstallCommand uninstalls a module. Empty makes Uninstall a no-op.
		UninstallCommand string
		// StatusCommand exits 0 when a module is installed. Empty means every
		// module counts as installed.
		StatusCommand string
		// CoreUtils runs cat, cp, mkdir, mv, rm and touch in-process instead
		// of looking them up on the host.
		CoreUtils bool
		// Stdout and Stderr receive command output (nil discards it).
		Stdout io.Writer
		Stderr io.Writer
		// Logger receives debug output (nil discards it).
		Logger *log.Logger
	}

	// ShellInstaller runs the configured shop commands with mvdan.cc/sh.
	ShellInstaller struct {
		dir       string
		coreUtils bool
		install   *template.Template
		uninstall *template.Template
		status    *template.Template
		stdout    io.Writer
		stderr    io.Writer
		logger    *log.Logger
	}

	// CommandError describes a failed module command.
	// It matches ErrCommandFailed with errors.Is.
	CommandError struct {
		Action   string
		Module   string
		Command  string
		ExitCode int
		Stderr   string
		Err      error
	}

	templateData struct {
		Module string
	}
)

// NewShellInstaller parses the command templates in opts.
func NewShellInstaller(opts ShellOptions) (*ShellInstaller, error) {
	s := &ShellInstaller{
		dir:       opts.Dir,
		coreUtils: opts.CoreUtils,
		stdout:    opts.Stdout,
		stderr:    opts.Stderr,
		logger:    opts.Logger,
	}
	if s.stdout == nil {
		s.stdout = io.Discard
	}
	if s.stderr == nil {
		s.stderr = io.Discard
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	var err error
	if s.install, err = parseCommand("install", opts.InstallCommand); err != nil {
		return nil, err
	}
	if s.uninstall, err = parseCommand("uninstall", opts.UninstallCommand); err != nil {
		return nil, err
	}
	if s.status, err = parseCommand("status", opts.StatusCommand); err != nil {
		return nil, err
	}
	return s, nil
}

func parseCommand(name, text string) (*template.Template, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	t, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse %s command: %w", name, err)
	}
	return t, nil
}

// IsInstalled runs the status command. Exit status 0 means installed, any
// other exit status means not installed.
func (s *ShellInstaller) IsInstalled(ctx context.Context, module string) (bool, error) {
	if s.status == nil {
		return true, nil
	}
	code, err := s.run(ctx, "status", s.status, module)
	if err != nil {
		return false, err
	}
	return code == 0, nil
}

// Install runs the install command for module.
func (s *ShellInstaller) Install(ctx context.Context, module string) error {
	return s.mustSucceed(ctx, "install", s.install, module)
}

// Uninstall runs the uninstall command for module.
func (s *ShellInstaller) Uninstall(ctx context.Context, module string) error {
	return s.mustSucceed(ctx, "uninstall", s.uninstall, module)
}

func (s *ShellInstaller) mustSucceed(ctx context.Context, action string, tmpl *template.Template, module string) error {
	if tmpl == nil {
		s.logger.Debug("no command configured, skipping", "action", action, "module", module)
		return nil
	}
	_, err := s.run(ctx, action, tmpl, module)
	return err
}

// run executes the command and returns its exit status. Non-zero statuses
// are errors except for the status action.
func (s *ShellInstaller) run(ctx context.Context, action string, tmpl *template.Template, module string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, &CommandError{Action: action, Module: module, Err: err}
	}

	var line strings.Builder
	if err := tmpl.Execute(&line, templateData{Module: module}); err != nil {
		return 0, &CommandError{Action: action, Module: module, Err: err}
	}
	cmdline := line.String()

	prog, err := syntax.NewParser().Parse(strings.NewReader(cmdline), action)
	if err != nil {
		return 0, &CommandError{Action: action, Module: module, Command: cmdline, Err: err}
	}

	var stderr bytes.Buffer
	runnerOpts := []interp.RunnerOption{
		interp.Dir(s.dir),
		interp.Env(expand.ListEnviron(append(os.Environ(), "FOP_MODULE="+module)...)),
		interp.StdIO(nil, s.stdout, io.MultiWriter(s.stderr, &stderr)),
	}
	if s.coreUtils {
		runnerOpts = append(runnerOpts, interp.ExecHandlers(coreUtilsHandler))
	}
	runner, err := interp.New(runnerOpts...)
	if err != nil {
		return 0, &CommandError{Action: action, Module: module, Command: cmdline, Err: err}
	}

	s.logger.Debug("running module command", "action", action, "module", module, "command", cmdline, "dir", s.dir)

	err = runner.Run(ctx, prog)
	if err == nil {
		return 0, nil
	}

	var status interp.ExitStatus
	if !errors.As(err, &status) {
		return 0, &CommandError{Action: action, Module: module, Command: cmdline, Stderr: stderr.String(), Err: err}
	}
	if action == "status" {
		return int(status), nil
	}
	return int(status), &CommandError{
		Action:   action,
		Module:   module,
		Command:  cmdline,
		ExitCode: int(status),
		Stderr:   stderr.String(),
		Err:      err,
	}
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", e.Action, e.Module)
	if e.Command != "" {
		fmt.Fprintf(&sb, " (%s)", e.Command)
	}
	if e.ExitCode != 0 {
		fmt.Fprintf(&sb, ": exit status %d", e.ExitCode)
	} else if e.Err != nil {
		fmt.Fprintf(&sb, ": %v", e.Err)
	}
	if msg := strings.TrimSpace(e.Stderr); msg != "" {
		fmt.Fprintf(&sb, ": %s", lastLine(msg))
	}
	return sb.String()
}

// Unwrap exposes both ErrCommandFailed and the underlying cause.
func (e *CommandError) Unwrap() []error {
	return []error{ErrCommandFailed, e.Err}
}

func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
