// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/fopconsole/fop/internal/checker"
	"github.com/fopconsole/fop/internal/issue"
	"github.com/fopconsole/fop/internal/tui"
	"github.com/fopconsole/fop/internal/watch"
	"github.com/fopconsole/fop/pkg/types"
)

// errChecksFailed marks a run where at least one naming rule failed.
var errChecksFailed = errors.New("naming checks failed")

// checkFlags holds the flags of `fop check`.
type checkFlags struct {
	manifest string
	watch    bool
}

// newCheckCommand creates the `fop check` command.
func newCheckCommand(app *App, root *rootFlags) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check [<class> <command> <service>]",
		Short: "Check that a console command's class, name and service id agree",
		Long: `Check that a console command's class, name and service id agree.

The class is FOP\Console\Commands\<Domain>\<Action>, the command name
fop:<domain>:<action words> and the service id
fop.console.<domain>.<action_words>.command.

With --manifest, every command listed in a TOML file is checked:

  [[command]]
  class = 'FOP\Console\Commands\Modules\ModuleHooks'
  name = "fop:modules:hooks"
  service = "fop.console.modules.module_hooks.command"

The command exits with status 1 when any check fails.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if flags.manifest != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(3)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.watch && flags.manifest == "" {
				return fmt.Errorf("--watch requires --manifest")
			}
			if flags.manifest != "" {
				return runManifestCheck(cmd, app, root, flags)
			}
			results := checker.Validate(args[0], args[1], args[2])
			fmt.Fprintln(app.stdout, renderResults(args[1], results))
			if !results.OK() {
				cmd.SilenceUsage = true
				cmd.SilenceErrors = true
				return &ExitError{Code: types.ExitFailure, Err: errChecksFailed}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.manifest, "manifest", "m", "", "TOML file listing the commands to check")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "re-run the manifest checks whenever the file changes")

	return cmd
}

func runManifestCheck(cmd *cobra.Command, app *App, root *rootFlags, flags *checkFlags) error {
	if !flags.watch {
		ok, err := checkManifest(app.stdout, flags.manifest)
		if err != nil {
			return app.reportError(cmd, nil, err)
		}
		if !ok {
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return &ExitError{Code: types.ExitFailure, Err: errChecksFailed}
		}
		return nil
	}

	sess, err := app.newSession(cmd.Context(), root)
	if err != nil {
		return app.reportError(cmd, nil, err)
	}
	logger := sess.logger

	rerun := func(context.Context, []string) error {
		fmt.Fprintln(app.stdout)
		_, err := checkManifest(app.stdout, flags.manifest)
		return err
	}
	if err := rerun(cmd.Context(), nil); err != nil {
		logger.Error("manifest check failed", "error", err)
	}

	w, err := watch.New(watch.Config{
		Files:    []string{flags.manifest},
		OnChange: rerun,
		Logger:   logger,
	})
	if err != nil {
		return app.reportError(cmd, sess, issue.WrapWithContext(err, "watch command manifest", flags.manifest))
	}
	logger.Debug("manifest watch started", "manifest", flags.manifest, "config", sess.source)
	logger.Info("watching for changes, press Ctrl+C to stop", "manifest", flags.manifest)
	if err := w.Run(cmd.Context()); err != nil {
		return app.reportError(cmd, sess, err)
	}
	return nil
}

// checkManifest validates every command of the manifest at path, prints one
// report per command, and reports whether all of them passed.
func checkManifest(w io.Writer, path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, issue.NewErrorContext().
			WithOperation("read command manifest").
			WithResource(path).
			WithIssue(issue.InvalidManifestId).
			WithSuggestion("Check that the file exists and is readable").
			Wrap(err).
			BuildError()
	}
	defer f.Close()

	manifest, err := checker.LoadManifest(f)
	if err != nil {
		return false, issue.NewErrorContext().
			WithOperation("parse command manifest").
			WithResource(path).
			WithIssue(issue.InvalidManifestId).
			Wrap(err).
			BuildError()
	}

	reports := manifest.CheckAll()
	failed := 0
	for _, r := range reports {
		fmt.Fprintln(w, renderResults(r.Command.Name, r.Results))
		if !r.Results.OK() {
			failed++
		}
	}

	summary := fmt.Sprintf("%d command(s) checked, %d failed", len(reports), failed)
	if failed > 0 {
		fmt.Fprintf(w, "%s %s\n", failureIcon, ErrorStyle.Render(summary))
	} else {
		fmt.Fprintf(w, "%s %s\n", successIcon, SuccessStyle.Render(summary))
	}
	return failed == 0, nil
}

// renderResults renders the results of one command as a table titled with
// the command name.
func renderResults(title string, results checker.Results) string {
	all := results.All()
	rows := make([][]string, 0, len(all))
	for _, r := range all {
		status := "pass"
		if !r.Passed {
			status = "fail"
		}
		rows = append(rows, []string{status, r.Message})
	}

	return tui.RenderTable(tui.TableOptions{
		Title:   title,
		Headers: []string{"Status", "Message"},
		Rows:    rows,
		Border:  tui.BorderRounded,
		CellStyle: func(row, col int) lipgloss.Style {
			if col != 0 || row < 0 || row >= len(all) {
				return lipgloss.NewStyle()
			}
			if all[row].Passed {
				return SuccessStyle
			}
			return ErrorStyle
		},
	})
}
