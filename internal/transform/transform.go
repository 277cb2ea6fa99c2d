// SPDX-License-Identifier: MPL-2.0

package transform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"

	"github.com/fopconsole/fop/internal/replace"
)

// DefaultExclude lists the subtrees skipped when no exclusion is configured.
var DefaultExclude = []string{"vendor", "node_modules"}

type (
	// Options configures a Transformer.
	Options struct {
		// Exclude holds doublestar patterns. A directory is skipped, with everything
		// below it, when a pattern matches its name or its slash-separated path
		// relative to the root. Nil means DefaultExclude.
		Exclude []string
		// DryRun computes the report without touching the filesystem.
		DryRun bool
		// Logger receives per-entry debug output. Nil discards it.
		Logger *log.Logger
	}

	// Transformer rewrites directory trees with a replacement table.
	Transformer struct {
		exclude []string
		dryRun  bool
		logger  *log.Logger
	}

	// Rename records one renamed entry, as slash-separated paths relative to the root.
	Rename struct {
		From string
		To   string
	}

	// Report summarizes what Apply changed (or would change, in dry-run mode).
	Report struct {
		// Rewritten lists files whose content changed, relative to the root.
		Rewritten []string
		// Renamed lists renamed entries, deepest first.
		Renamed []Rename
		// Skipped lists excluded directories, relative to the root.
		Skipped []string
	}

	entry struct {
		rel     string
		regular bool
		depth   int
	}
)

// New creates a Transformer.
func New(opts Options) *Transformer {
	exclude := opts.Exclude
	if exclude == nil {
		exclude = DefaultExclude
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Transformer{
		exclude: append([]string(nil), exclude...),
		dryRun:  opts.DryRun,
		logger:  logger,
	}
}

// ValidateExclude reports the first malformed pattern in patterns.
func ValidateExclude(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid exclude pattern %q", p)
		}
	}
	return nil
}

// Apply rewrites every regular file under root with table, then renames every
// entry whose relative path contains a key of table.
//
// ctx is only consulted before the first write: once rewriting starts the tree
// is processed to completion or until the first error.
func (t *Transformer) Apply(ctx context.Context, root string, table *replace.Table) (*Report, error) {
	report := &Report{}

	entries, err := t.collect(root, report)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("transform canceled: %w", err)
	}

	if table.Len() == 0 {
		return report, nil
	}

	replacer := table.Replacer()
	for _, e := range entries {
		if !e.regular {
			continue
		}
		changed, err := t.rewrite(filepath.Join(root, filepath.FromSlash(e.rel)), replacer)
		if err != nil {
			return report, err
		}
		if changed {
			t.logger.Debug("rewrote file", "path", e.rel)
			report.Rewritten = append(report.Rewritten, e.rel)
		}
	}

	// Children are renamed before their parents so collected paths stay valid.
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].depth > entries[j].depth })
	for _, e := range entries {
		r, ok, err := t.rename(root, e, table)
		if err != nil {
			return report, err
		}
		if ok {
			t.logger.Debug("renamed entry", "from", r.From, "to", r.To)
			report.Renamed = append(report.Renamed, r)
		}
	}

	return report, nil
}

// collect walks root and returns every entry outside excluded subtrees.
func (t *Transformer) collect(root string, report *Report) ([]entry, error) {
	var entries []entry
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return &IOError{Op: "walk", Path: p, Err: walkErr}
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return &IOError{Op: "walk", Path: p, Err: err}
		}
		if rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() && t.excluded(rel) {
			t.logger.Debug("skipping excluded directory", "path", rel)
			report.Skipped = append(report.Skipped, rel)
			return fs.SkipDir
		}

		entries = append(entries, entry{
			rel:     rel,
			regular: d.Type().IsRegular(),
			depth:   strings.Count(rel, "/"),
		})
		return nil
	})
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			return nil, err
		}
		return nil, &IOError{Op: "walk", Path: root, Err: err}
	}
	return entries, nil
}

func (t *Transformer) excluded(rel string) bool {
	name := path.Base(rel)
	for _, pattern := range t.exclude {
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// rewrite applies replacer to the file at p and writes it back when it changed.
// Content is handled as opaque bytes.
func (t *Transformer) rewrite(p string, replacer *strings.Replacer) (bool, error) {
	data, err := os.ReadFile(p)
	if err != nil {
		return false, &IOError{Op: "read", Path: p, Err: err}
	}
	original := string(data)
	updated := replacer.Replace(original)
	if updated == original {
		return false, nil
	}
	if t.dryRun {
		return true, nil
	}

	info, err := os.Stat(p)
	if err != nil {
		return false, &IOError{Op: "stat", Path: p, Err: err}
	}
	if err := os.WriteFile(p, []byte(updated), info.Mode().Perm()); err != nil {
		return false, &IOError{Op: "write", Path: p, Err: err}
	}
	return true, nil
}

// rename renames e when a table key occurs in its relative path. Only the first
// matching key, in table order, is looked for; once it triggers, every key is
// substituted in the entry's own name. A match that lies only in a parent
// segment is left to the parent's own rename.
func (t *Transformer) rename(root string, e entry, table *replace.Table) (Rename, bool, error) {
	if _, ok := table.FirstMatch(e.rel); !ok {
		return Rename{}, false, nil
	}

	dir, base := path.Split(e.rel)
	newBase := table.Apply(base)
	if newBase == base {
		return Rename{}, false, nil
	}

	from := filepath.Join(root, filepath.FromSlash(e.rel))
	if newBase == "" || strings.ContainsAny(newBase, `/\`) {
		return Rename{}, false, &IOError{Op: "rename", Path: from, Err: fmt.Errorf("replacement yields invalid name %q", newBase)}
	}

	r := Rename{From: e.rel, To: dir + newBase}
	if t.dryRun {
		return r, true, nil
	}

	to := filepath.Join(root, filepath.FromSlash(r.To))
	if _, err := os.Lstat(to); err == nil {
		return Rename{}, false, &IOError{Op: "rename", Path: from, Err: fmt.Errorf("target %s: %w", to, fs.ErrExist)}
	}
	if err := os.Rename(from, to); err != nil {
		return Rename{}, false, &IOError{Op: "rename", Path: from, Err: err}
	}
	return r, true, nil
}
