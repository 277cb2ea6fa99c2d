// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fopconsole/fop/internal/config"
)

// newConfigCommand creates the `fop config` command tree.
func newConfigCommand(app *App, root *rootFlags) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage fop configuration",
		Long: `Manage fop configuration.

Configuration is read from the first file found:
  - the --config flag
  - Linux: $XDG_CONFIG_HOME/fop/config.cue (default ~/.config/fop/config.cue)
  - macOS: ~/Library/Application Support/fop/config.cue
  - Windows: %APPDATA%\fop\config.cue
  - ./config.cue

Environment variables such as FOP_SHOP_ROOT override file values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(cmd, app, root)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, app)
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigPath(cmd, app)
		},
	})

	return cfgCmd
}

func showConfig(cmd *cobra.Command, app *App, root *rootFlags) error {
	sess, err := app.newSession(cmd.Context(), root)
	if err != nil {
		return app.reportError(cmd, nil, err)
	}
	cfg := sess.cfg
	out := app.stdout

	keyStyle := CmdStyle
	valueStyle := SuccessStyle
	none := SubtitleStyle.Render("(none)")
	value := func(s string) string {
		if s == "" {
			return none
		}
		return valueStyle.Render(s)
	}

	fmt.Fprintln(out, TitleStyle.Render("Current Configuration"))
	fmt.Fprintln(out)

	if sess.source != "" {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Config file"), sess.source)
	} else {
		fmt.Fprintf(out, "%s: %s\n", keyStyle.Render("Config file"), SubtitleStyle.Render("(using defaults)"))
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("shop"))
	fmt.Fprintf(out, "  root: %s\n", value(cfg.Shop.Root))
	fmt.Fprintf(out, "  modules_dir: %s (%s)\n", value(cfg.Shop.ModulesDir), cfg.Shop.ModulesPath())
	fmt.Fprintf(out, "  install_command: %s\n", value(cfg.Shop.InstallCommand.String()))
	fmt.Fprintf(out, "  uninstall_command: %s\n", value(cfg.Shop.UninstallCommand.String()))
	fmt.Fprintf(out, "  status_command: %s\n", value(cfg.Shop.StatusCommand.String()))
	fmt.Fprintf(out, "  core_utils: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.Shop.CoreUtils)))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("rename"))
	fmt.Fprintf(out, "  exclude: %s\n", value(strings.Join(cfg.Rename.Exclude, ", ")))

	fmt.Fprintln(out)
	fmt.Fprintf(out, "%s:\n", keyStyle.Render("ui"))
	fmt.Fprintf(out, "  color_scheme: %s\n", value(cfg.UI.ColorScheme.String()))
	fmt.Fprintf(out, "  verbose: %s\n", valueStyle.Render(fmt.Sprintf("%v", cfg.UI.Verbose)))

	return nil
}

func initConfig(cmd *cobra.Command, app *App) error {
	path, created, err := config.CreateDefaultConfig()
	if err != nil {
		return app.reportError(cmd, nil, fmt.Errorf("failed to create config: %w", err))
	}

	if !created {
		fmt.Fprintf(app.stdout, "%s Configuration already exists at %s\n", skipIcon, path)
		return nil
	}
	fmt.Fprintf(app.stdout, "%s Created default configuration at %s\n", successIcon, path)
	return nil
}

func showConfigPath(cmd *cobra.Command, app *App) error {
	cfgDir, err := config.ConfigDir()
	if err != nil {
		return app.reportError(cmd, nil, err)
	}
	path, err := config.ConfigFilePath()
	if err != nil {
		return app.reportError(cmd, nil, err)
	}

	fmt.Fprintf(app.stdout, "Config directory: %s\n", cfgDir)
	fmt.Fprintf(app.stdout, "Config file: %s\n", path)
	return nil
}
