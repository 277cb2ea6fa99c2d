// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/fopconsole/fop/internal/config"
	"github.com/fopconsole/fop/internal/modhost"
	"github.com/fopconsole/fop/internal/tui"
)

type (
	// App wires CLI services and shared dependencies. Cobra handlers receive an
	// App reference and reach configuration, prompts and the shop through it.
	App struct {
		Config     ConfigProvider
		Prompter   tui.Prompter
		NewInstall InstallerFactory
		stdout     io.Writer
		stderr     io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil fields
	// are replaced with production defaults by NewApp.
	Dependencies struct {
		Config     ConfigProvider
		Prompter   tui.Prompter
		NewInstall InstallerFactory
		Stdout     io.Writer
		Stderr     io.Writer
	}

	// ConfigProvider loads configuration using explicit options and reports
	// the file it read.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
		LoadWithSource(ctx context.Context, opts config.LoadOptions) (*config.Config, string, error)
	}

	// InstallerFactory builds the module installer for a loaded configuration.
	InstallerFactory func(cfg *config.Config, stdout, stderr io.Writer, logger *log.Logger) (modhost.Installer, error)
)

// NewApp creates an App with defaults for omitted dependencies.
func NewApp(deps Dependencies) *App {
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Prompter == nil {
		deps.Prompter = tui.NewPrompter()
	}
	if deps.NewInstall == nil {
		deps.NewInstall = shellInstaller
	}

	return &App{
		Config:     deps.Config,
		Prompter:   deps.Prompter,
		NewInstall: deps.NewInstall,
		stdout:     deps.Stdout,
		stderr:     deps.Stderr,
	}
}

// newLogger returns the stderr logger shared by every service of one command.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "fop",
		ReportTimestamp: false,
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}

// shellInstaller runs the shop commands of cfg from the shop root.
func shellInstaller(cfg *config.Config, stdout, stderr io.Writer, logger *log.Logger) (modhost.Installer, error) {
	installer, err := modhost.NewShellInstaller(modhost.ShellOptions{
		Dir:              cfg.Shop.Root,
		InstallCommand:   cfg.Shop.InstallCommand.String(),
		UninstallCommand: cfg.Shop.UninstallCommand.String(),
		StatusCommand:    cfg.Shop.StatusCommand.String(),
		CoreUtils:        cfg.Shop.CoreUtils,
		Stdout:           stdout,
		Stderr:           stderr,
		Logger:           logger,
	})
	if err != nil {
		return nil, err
	}
	return installer, nil
}
