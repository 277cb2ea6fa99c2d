// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fopconsole/fop/internal/rename"
	"github.com/fopconsole/fop/internal/replace"
	"github.com/fopconsole/fop/internal/tui"
)

// renameFlags holds the flags of `fop rename`.
type renameFlags struct {
	author  string
	extra   []string
	keepOld bool
	yes     bool
	dryRun  bool
}

// newRenameCommand creates the `fop rename` command.
func newRenameCommand(app *App, root *rootFlags) *cobra.Command {
	flags := &renameFlags{}

	cmd := &cobra.Command{
		Use:   "rename <old> <new>",
		Short: "Copy a module under a new name and rewrite every spelling of the old one",
		Long: `Copy a module under a new name and rewrite every spelling of the old one.

Module names are "Prefix_Base" or "Base", e.g. ps_oldname. The module
directory is the lowercase name inside shop.modules_dir.

fop shows the replacement table and asks before each step:
  1. copy the module and apply the replacements
  2. uninstall and remove the old module (skipped with --keep-old)
  3. install the new module
Declining a step stops the rename and exits successfully.

Examples:
  fop rename ps_oldname ps_newname
  fop rename ps_oldname ps_newname --author "New Author" --replace "Old Title,New Title"
  fop rename ps_oldname ps_newname --dry-run`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, app, root, flags, args[0], args[1])
		},
	}

	cmd.Flags().StringVar(&flags.author, "author", "", "new author name, replacing the one in the module manifest")
	cmd.Flags().StringArrayVar(&flags.extra, "replace", nil, `extra replacement as "search,replace" (repeatable)`)
	cmd.Flags().BoolVar(&flags.keepOld, "keep-old", false, "keep the old module installed and on disk")
	cmd.Flags().BoolVarP(&flags.yes, "yes", "y", false, "answer yes to every confirmation")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "show what would change without writing anything")

	return cmd
}

func runRename(cmd *cobra.Command, app *App, root *rootFlags, flags *renameFlags, oldName, newName string) error {
	ctx := cmd.Context()

	sess, err := app.newSession(ctx, root)
	if err != nil {
		return app.reportError(cmd, nil, err)
	}

	extra, err := replace.ParseExtra(flags.extra)
	if err != nil {
		return app.reportError(cmd, sess, err)
	}

	installer, err := app.NewInstall(sess.cfg, app.stdout, app.stderr, sess.logger)
	if err != nil {
		return app.reportError(cmd, sess, err)
	}

	var prompter tui.Prompter = tui.AutoConfirm{}
	if !flags.yes {
		prompter = app.Prompter
	}

	svc := rename.New(rename.Options{
		ModulesDir:  sess.cfg.Shop.ModulesPath(),
		Exclude:     sess.cfg.Rename.Exclude,
		Installer:   installer,
		Prompter:    prompter,
		RenderTable: renderReplacementTable,
		Logger:      sess.logger,
	})

	res, err := svc.Run(ctx, rename.Request{
		Old:     oldName,
		New:     newName,
		Author:  flags.author,
		Extra:   extra,
		KeepOld: flags.keepOld,
		DryRun:  flags.dryRun,
	})

	out := app.stdout
	if res != nil && (flags.dryRun || flags.yes) {
		fmt.Fprintln(out, renderReplacementTable(res.Table))
		fmt.Fprintln(out)
	}
	if flags.dryRun && err == nil {
		printDryRun(out, res)
		return nil
	}
	if res != nil {
		printRenameSteps(out, res, flags.keepOld)
	}

	var declined *rename.DeclinedError
	if errors.As(err, &declined) {
		fmt.Fprintf(out, "%s Stopped before %q; nothing else was changed.\n", skipIcon, string(declined.Step))
		return nil
	}
	if err != nil {
		return app.reportError(cmd, sess, err)
	}

	fmt.Fprintf(out, "\n%s Renamed %s to %s\n", successIcon,
		CmdStyle.Render(res.Old.ModuleName()), CmdStyle.Render(res.New.ModuleName()))
	return nil
}

// renderReplacementTable renders the occurrence table in application order.
func renderReplacementTable(t *replace.Table) string {
	pairs := t.Pairs()
	rows := make([][]string, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, []string{p.Search, p.Replace})
	}
	return tui.RenderTable(tui.TableOptions{
		Headers: []string{"Occurrence", "Replacement"},
		Rows:    rows,
		Border:  tui.BorderRounded,
	})
}

func printDryRun(w io.Writer, res *rename.Result) {
	fmt.Fprintf(w, "%s %s -> %s (dry run, nothing written)\n", TitleStyle.Render("Rename"),
		CmdStyle.Render(res.OldDir), CmdStyle.Render(res.NewDir))

	if len(res.Report.Rewritten) == 0 && len(res.Report.Renamed) == 0 {
		fmt.Fprintf(w, "  %s\n", SubtitleStyle.Render("(no occurrences found)"))
		return
	}
	if len(res.Report.Rewritten) > 0 {
		fmt.Fprintf(w, "\n%s\n", SubtitleStyle.Render("Files to rewrite:"))
		for _, p := range res.Report.Rewritten {
			fmt.Fprintf(w, "  %s\n", p)
		}
	}
	if len(res.Report.Renamed) > 0 {
		fmt.Fprintf(w, "\n%s\n", SubtitleStyle.Render("Entries to rename:"))
		for _, r := range res.Report.Renamed {
			fmt.Fprintf(w, "  %s -> %s\n", r.From, r.To)
		}
	}
	for _, p := range res.Report.Skipped {
		fmt.Fprintf(w, "  %s\n", VerboseStyle.Render("skipped "+p))
	}
}

// printRenameSteps lists the steps a rename completed.
func printRenameSteps(w io.Writer, res *rename.Result, keepOld bool) {
	step := func(done bool, label string) {
		if done {
			fmt.Fprintf(w, "%s %s\n", successIcon, label)
		}
	}

	step(res.Copied, fmt.Sprintf("Copied %s to %s", res.OldDir, res.NewDir))
	if res.Report != nil {
		step(true, fmt.Sprintf("Rewrote %d file(s) and renamed %d path(s)", len(res.Report.Rewritten), len(res.Report.Renamed)))
	}
	if !keepOld {
		step(res.Uninstalled, "Uninstalled "+res.Old.ModuleName())
		step(res.Removed, "Removed "+res.OldDir)
	}
	step(res.Installed, "Installed "+res.New.ModuleName())
}
