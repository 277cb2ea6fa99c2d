// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fopconsole/fop/internal/checker"
	"github.com/fopconsole/fop/internal/config"
	"github.com/fopconsole/fop/internal/issue"
	"github.com/fopconsole/fop/internal/modhost"
	"github.com/fopconsole/fop/internal/naming"
	"github.com/fopconsole/fop/internal/rename"
	"github.com/fopconsole/fop/internal/replace"
	"github.com/fopconsole/fop/internal/transform"
	"github.com/fopconsole/fop/pkg/types"
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code types.ExitCode
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// exitCodeFor maps an error to the process exit status.
func exitCodeFor(err error) types.ExitCode {
	var exitErr *ExitError
	switch {
	case err == nil, errors.Is(err, rename.ErrDeclined):
		return types.ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.Is(err, naming.ErrInvalidIdentifier), errors.Is(err, replace.ErrInvalidExtra):
		return types.ExitUsage
	default:
		return types.ExitFailure
	}
}

// issueFor returns the catalog page explaining err, or 0.
func issueFor(err error) issue.Id {
	var ae *issue.ActionableError
	if errors.As(err, &ae) && ae.IssueID != 0 {
		return ae.IssueID
	}
	switch {
	case errors.Is(err, naming.ErrInvalidIdentifier):
		return issue.InvalidIdentifierId
	case errors.Is(err, replace.ErrInvalidExtra):
		return issue.InvalidReplacementId
	case errors.Is(err, rename.ErrModuleNotFound):
		return issue.ModuleNotFoundId
	case errors.Is(err, rename.ErrModuleExists):
		return issue.ModuleExistsId
	case errors.Is(err, modhost.ErrCommandFailed):
		return issue.ModuleCommandFailedId
	case errors.Is(err, transform.ErrIO):
		return issue.TreeRewriteFailedId
	case errors.Is(err, checker.ErrInvalidManifest):
		return issue.InvalidManifestId
	default:
		return 0
	}
}

// renderIssue writes the catalog page for err to w. A rendering failure is
// logged and otherwise ignored since the error itself is still reported.
func renderIssue(w io.Writer, err error, scheme config.ColorScheme, logger *log.Logger) {
	id := issueFor(err)
	if id == 0 {
		return
	}
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	if scheme == "" {
		scheme = config.ColorSchemeDark
	}
	rendered, renderErr := entry.Render(scheme.GlamourStyle())
	if renderErr != nil {
		if logger != nil {
			logger.Warn("failed to render issue catalog entry", "issue", id, "error", renderErr)
		}
		return
	}
	fmt.Fprint(w, rendered)
}

// formatErrorForDisplay formats an error for user display.
// ActionableErrors list their suggestions, and the whole chain in verbose mode.
func formatErrorForDisplay(err error, verbose bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verbose)
	}
	return err.Error()
}

// reportError prints err with its suggestions and catalog page to stderr and
// returns the ExitError carrying its status. Errors that map to a successful
// exit, such as a declined prompt, yield nil. sess may be nil when the
// configuration itself failed to load.
func (a *App) reportError(cmd *cobra.Command, sess *session, err error) error {
	code := exitCodeFor(err)
	if code.IsSuccess() {
		return nil
	}

	var (
		verbose bool
		scheme  config.ColorScheme
		logger  *log.Logger
	)
	if sess != nil {
		verbose, scheme, logger = sess.verbose, sess.cfg.UI.ColorScheme, sess.logger
	}

	fmt.Fprintln(a.stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
	renderIssue(a.stderr, err, scheme, logger)

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return &ExitError{Code: code, Err: err}
}
