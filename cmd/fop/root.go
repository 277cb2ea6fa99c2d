// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fopconsole/fop/internal/config"
	"github.com/fopconsole/fop/pkg/types"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"
)

type (
	// rootFlags holds the persistent flags shared by every subcommand.
	rootFlags struct {
		verbose    bool
		configPath string
	}

	// session is the per-invocation state built from flags and configuration.
	session struct {
		cfg     *config.Config
		source  string
		verbose bool
		logger  *log.Logger
	}
)

// NewRootCommand builds the fop command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "fop",
		Short: "Rename shop modules and check console command naming",
		Long: TitleStyle.Render("fop") + SubtitleStyle.Render(" - Rename shop modules and check console command naming") + `

fop copies a module under a new name and rewrites every spelling of the
old name (PascalCase, camelCase, snake_case, kebab-case, UPPER_CASE and
more) in file contents and paths. It also checks that a console command's
class, name and service id agree with each other.

` + SubtitleStyle.Render("Examples:") + `
  fop rename ps_oldname ps_newname     Rename a module
  fop rename ps_old ps_new --dry-run   Preview a rename
  fop check 'FOP\Console\Commands\Modules\ModuleHooks' fop:modules:hooks fop.console.modules.module_hooks.command
  fop check --manifest commands.toml   Check every listed command
  fop config show                      Show current configuration`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/fop/config.cue)")

	rootCmd.AddCommand(newRenameCommand(app, flags))
	rootCmd.AddCommand(newCheckCommand(app, flags))
	rootCmd.AddCommand(newConfigCommand(app, flags))

	return rootCmd
}

// getVersionString returns a formatted version string for display.
// Values injected with -ldflags win; go-install builds fall back to the
// module version recorded in the binary.
func getVersionString() string {
	if Version != "dev" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev (built from source)"
}

// Execute runs the fop command line and exits with the resulting status.
// This is called by main.main().
func Execute() {
	app := NewApp(Dependencies{})
	rootCmd := NewRootCommand(app)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		code := exitCodeFor(err)
		if code.Validate() != nil {
			code = types.ExitFailure
		}
		os.Exit(int(code))
	}
}

// newSession loads the configuration named by flags and builds the logger.
// Verbose output is on when either --verbose or ui.verbose asks for it.
func (a *App) newSession(ctx context.Context, flags *rootFlags) (*session, error) {
	opts := config.LoadOptions{ConfigFilePath: flags.configPath}

	cfg, source, err := a.Config.LoadWithSource(ctx, opts)
	if err != nil {
		return nil, err
	}

	verbose := flags.verbose || cfg.UI.Verbose
	return &session{
		cfg:     cfg,
		source:  source,
		verbose: verbose,
		logger:  newLogger(a.stderr, verbose),
	}, nil
}
