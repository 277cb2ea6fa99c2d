// SPDX-License-Identifier: MPL-2.0

package rename

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/u-root/u-root/pkg/cp"

	"github.com/fopconsole/fop/internal/modhost"
	"github.com/fopconsole/fop/internal/naming"
	"github.com/fopconsole/fop/internal/replace"
	"github.com/fopconsole/fop/internal/transform"
	"github.com/fopconsole/fop/internal/tui"
)

const (
	// StepReplace confirms the replacement table before anything is written.
	StepReplace Step = "apply replacements"
	// StepRemoveOld confirms uninstalling and deleting the old module.
	StepRemoveOld Step = "uninstall and remove old module"
	// StepInstallNew confirms installing the new module.
	StepInstallNew Step = "install new module"
)

type (
	// Step names one confirmation of a rename.
	Step string

	// Options configures a Service.
	Options struct {
		// ModulesDir contains one directory per module, named ModuleName().
		ModulesDir string
		// Exclude is passed to the tree transformer (nil means its defaults).
		Exclude []string
		// Installer manages install state. Required.
		Installer modhost.Installer
		// Prompter asks the confirmations. Required.
		Prompter tui.Prompter
		// RenderTable formats the replacement table shown with the first
		// confirmation. Nil uses a plain "search => replace" listing.
		RenderTable func(*replace.Table) string
		// Logger receives progress output. Nil discards it.
		Logger *log.Logger
	}

	// Request describes one rename.
	Request struct {
		// Old and New are raw identifiers, "Prefix_Base" or "Base".
		Old string
		New string
		// Author, when set and different from the old module's author,
		// adds author renderings to the table.
		Author string
		// Extra pairs are inserted ahead of the derived renderings.
		Extra []naming.Pair
		// KeepOld leaves the old module installed and on disk.
		KeepOld bool
		// DryRun reports what would change without prompting or writing.
		DryRun bool
	}

	// Result describes what a rename did. It is returned alongside
	// ErrDeclined so callers can report the steps that completed.
	Result struct {
		Old    naming.Identifier
		New    naming.Identifier
		OldDir string
		NewDir string
		// OldAuthor is read from the old module manifest ("" without one).
		OldAuthor string
		Table     *replace.Table
		// Report comes from the tree transformer; in dry-run mode its paths
		// are relative to OldDir.
		Report *transform.Report

		Copied      bool
		Uninstalled bool
		Removed     bool
		Installed   bool
	}

	// Service renames modules.
	Service struct {
		opts   Options
		logger *log.Logger
	}
)

// New creates a Service.
func New(opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.RenderTable == nil {
		opts.RenderTable = plainTable
	}
	return &Service{opts: opts, logger: logger}
}

// Plan parses both names, locates the module directories and builds the
// replacement table. It touches nothing.
func (s *Service) Plan(req Request) (*Result, error) {
	oldID, err := naming.ParseIdentifier(req.Old)
	if err != nil {
		return nil, err
	}
	newID, err := naming.ParseIdentifier(req.New)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Old:    oldID,
		New:    newID,
		OldDir: filepath.Join(s.opts.ModulesDir, oldID.ModuleName()),
		NewDir: filepath.Join(s.opts.ModulesDir, newID.ModuleName()),
	}

	info, err := os.Stat(res.OldDir)
	if err != nil || !info.IsDir() {
		return nil, &ModuleError{Module: oldID.ModuleName(), Path: res.OldDir, Err: ErrModuleNotFound}
	}
	if !req.DryRun {
		if _, err := os.Lstat(res.NewDir); err == nil {
			return nil, &ModuleError{Module: newID.ModuleName(), Path: res.NewDir, Err: ErrModuleExists}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, &transform.IOError{Op: "stat", Path: res.NewDir, Err: err}
		}
	}

	if res.OldAuthor, err = modhost.Author(res.OldDir); err != nil {
		return nil, err
	}

	res.Table = replace.Build(replace.BuildOptions{
		Old:       oldID,
		New:       newID,
		OldAuthor: res.OldAuthor,
		NewAuthor: req.Author,
		Extra:     req.Extra,
	})
	return res, nil
}

// Run performs req. Every error other than ErrDeclined aborts the run with the
// completed steps left in place; the returned Result is non-nil once planning
// succeeded.
func (s *Service) Run(ctx context.Context, req Request) (*Result, error) {
	res, err := s.Plan(req)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("replacement table built", "old", res.Old, "new", res.New, "entries", res.Table.Len())

	if req.DryRun {
		t := transform.New(transform.Options{Exclude: s.opts.Exclude, DryRun: true, Logger: s.logger})
		res.Report, err = t.Apply(ctx, res.OldDir, res.Table)
		return res, err
	}

	if err := s.confirm(ctx, StepReplace, tui.ConfirmOptions{
		Title:       fmt.Sprintf("Create %s from %s with these %d replacements?", res.New.ModuleName(), res.Old.ModuleName(), res.Table.Len()),
		Description: s.opts.RenderTable(res.Table),
	}); err != nil {
		return res, err
	}

	if err := ctx.Err(); err != nil {
		return res, fmt.Errorf("rename canceled: %w", err)
	}

	s.logger.Info("copying module", "from", res.OldDir, "to", res.NewDir)
	if err := cp.NoFollowSymlinks.CopyTree(res.OldDir, res.NewDir); err != nil {
		return res, &transform.IOError{Op: "copy", Path: res.NewDir, Err: err}
	}
	res.Copied = true

	t := transform.New(transform.Options{Exclude: s.opts.Exclude, Logger: s.logger})
	if res.Report, err = t.Apply(ctx, res.NewDir, res.Table); err != nil {
		return res, err
	}
	s.logger.Info("module rewritten", "files", len(res.Report.Rewritten), "renamed", len(res.Report.Renamed))

	if !req.KeepOld {
		if err := s.removeOld(ctx, res); err != nil {
			return res, err
		}
	}

	if err := s.confirm(ctx, StepInstallNew, tui.ConfirmOptions{
		Title: fmt.Sprintf("Install %s?", res.New.ModuleName()),
	}); err != nil {
		return res, err
	}
	s.logger.Info("installing module", "module", res.New.ModuleName())
	if err := s.opts.Installer.Install(ctx, res.New.ModuleName()); err != nil {
		return res, err
	}
	res.Installed = true

	return res, nil
}

func (s *Service) removeOld(ctx context.Context, res *Result) error {
	module := res.Old.ModuleName()
	if err := s.confirm(ctx, StepRemoveOld, tui.ConfirmOptions{
		Title:       fmt.Sprintf("Uninstall and remove %s?", module),
		Description: res.OldDir,
	}); err != nil {
		return err
	}

	installed, err := s.opts.Installer.IsInstalled(ctx, module)
	if err != nil {
		return err
	}
	if installed {
		s.logger.Info("uninstalling module", "module", module)
		if err := s.opts.Installer.Uninstall(ctx, module); err != nil {
			return err
		}
		res.Uninstalled = true
	} else {
		s.logger.Debug("module not installed, skipping uninstall", "module", module)
	}

	if err := os.RemoveAll(res.OldDir); err != nil {
		return &transform.IOError{Op: "remove", Path: res.OldDir, Err: err}
	}
	res.Removed = true
	return nil
}

func (s *Service) confirm(ctx context.Context, step Step, opts tui.ConfirmOptions) error {
	ok, err := s.opts.Prompter.Confirm(ctx, opts)
	if errors.Is(err, tui.ErrCancelled) {
		return &DeclinedError{Step: step}
	}
	if err != nil {
		return err
	}
	if !ok {
		return &DeclinedError{Step: step}
	}
	return nil
}

func plainTable(t *replace.Table) string {
	var sb strings.Builder
	for _, p := range t.Pairs() {
		fmt.Fprintf(&sb, "%s => %s\n", p.Search, p.Replace)
	}
	return sb.String()
}
