/*
MIT License

Copyright (c) 2025 Jayson Clark

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

// Package apply runs the theme propagation flow: load the theme, diff it
// against the snapshot, rewrite changed values across the configured
// tree, then persist the new snapshot.
package apply

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/jayson-clark/rice/internal/config"
	"github.com/jayson-clark/rice/internal/history"
	"github.com/jayson-clark/rice/internal/logging"
	"github.com/jayson-clark/rice/internal/render"
	"github.com/jayson-clark/rice/internal/rewrite"
	"github.com/jayson-clark/rice/internal/scan"
	"github.com/jayson-clark/rice/internal/theme"
)

// Options controls a single run.
type Options struct {
	DryRun  bool
	Preview bool   // with DryRun: print highlighted before/after lines
	Filter  string // fuzzy key filter; empty applies every change
	Plain   bool   // disable styled output
}

// Result summarizes what a run did.
type Result struct {
	Mode          string // "init", "noop", "dry-run", "apply"
	Changes       []theme.Change
	FilesScanned  int
	FilesModified int
	Replacements  int
}

// Runner wires the loader, snapshot store, diff, scanner and rewriter
// together for one dotfiles tree.
type Runner struct {
	cfg *config.Config
	out io.Writer
}

// NewRunner creates a runner writing user-facing output to out.
func NewRunner(cfg *config.Config, out io.Writer) *Runner {
	return &Runner{cfg: cfg, out: out}
}

// Init forces a snapshot baseline from the current theme document without
// diffing or rewriting anything.
func (r *Runner) Init() error {
	logging.Info("initializing snapshot from current %s", r.cfg.Paths.Theme)

	flat, err := theme.Load(r.cfg.ThemePath())
	if err != nil {
		return err
	}

	store := theme.NewStore(r.cfg.SnapshotPath())
	if err := store.Save(flat); err != nil {
		return err
	}

	logging.Info("saved snapshot to %s", r.cfg.Paths.Snapshot)
	r.recordRun(history.Run{StartedAt: time.Now(), Mode: "init", Changes: 0}, nil)
	return nil
}

// Run executes the apply flow. A missing or unparsable theme document is
// the only fatal outcome; per-file failures are logged and skipped.
func (r *Runner) Run(opts Options) (*Result, error) {
	startedAt := time.Now()
	renderer := render.New(opts.Plain)

	flat, err := theme.Load(r.cfg.ThemePath())
	if err != nil {
		return nil, err
	}

	store := theme.NewStore(r.cfg.SnapshotPath())

	// First run after adoption: baseline the snapshot and stop. Without
	// this, every theme value would count as "changed" and mass-rewrite
	// the tree.
	if !store.Exists() {
		logging.Warn("no snapshot found, creating initial snapshot")
		if err := store.Save(flat); err != nil {
			return nil, err
		}
		logging.Info("no changes to apply (snapshot just created)")
		r.recordRun(history.Run{StartedAt: startedAt, Mode: "init"}, nil)
		return &Result{Mode: "init"}, nil
	}

	old, err := store.Load()
	if err != nil {
		return nil, err
	}

	allChanges := theme.Diff(old, flat)
	changes := theme.FilterChanges(allChanges, opts.Filter)
	if opts.Filter != "" && len(changes) < len(allChanges) {
		logging.Info("filter %q selected %d of %d changes", opts.Filter, len(changes), len(allChanges))
	}

	if len(changes) == 0 {
		logging.Info("no theme changes detected")
		return &Result{Mode: "noop"}, nil
	}

	fmt.Fprintf(r.out, "Found %d theme value change(s):\n", len(changes))
	for _, change := range changes {
		fmt.Fprintf(r.out, "  %s\n", renderer.Change(change))
	}

	scanner := scan.New(r.cfg.Root, r.cfg.Scan.Roots, r.cfg.Scan.Include,
		r.cfg.Scan.Exclude, r.cfg.OwnFiles())
	files := scanner.Find()
	logging.Info("scanning %d config files", len(files))

	if opts.DryRun {
		fmt.Fprintln(r.out, renderer.Warn("=== DRY RUN MODE ==="))
	}

	rewriter := rewrite.New(r.cfg.Root, r.cfg.BackupDir())
	highlighter := render.NewHighlighter(opts.Plain)

	result := &Result{
		Mode:         "apply",
		Changes:      changes,
		FilesScanned: len(files),
	}
	if opts.DryRun {
		result.Mode = "dry-run"
	}

	for _, file := range files {
		if opts.DryRun && opts.Preview {
			r.printPreview(renderer, highlighter, file, changes)
		}
		count := rewriter.Apply(file, changes, opts.DryRun)
		result.Replacements += count
		if count > 0 {
			result.FilesModified++
		}
	}

	verb := "Replaced"
	if opts.DryRun {
		verb = "Would replace"
	}
	fmt.Fprintln(r.out, renderer.Summary("%s %d occurrence(s) across %d file(s)",
		verb, result.Replacements, result.FilesScanned))

	if opts.DryRun {
		if result.Replacements > 0 {
			fmt.Fprintln(r.out, "Re-run without --dry-run to apply changes.")
		}
		return result, nil
	}

	// Persist the new snapshot unconditionally once the rewrite pass ran,
	// even at zero replacements, so the same diff never reappears.
	if err := store.Save(r.appliedSnapshot(old, flat, allChanges, changes)); err != nil {
		return nil, err
	}
	if result.Replacements > 0 {
		fmt.Fprintln(r.out, renderer.Summary("Theme applied successfully."))
		fmt.Fprintf(r.out, "Backups saved to: %s\n", r.cfg.BackupDir())
	}

	r.recordRun(history.Run{
		StartedAt:     startedAt,
		Mode:          "apply",
		Changes:       len(changes),
		FilesScanned:  result.FilesScanned,
		FilesModified: result.FilesModified,
		Replacements:  result.Replacements,
	}, changes)

	return result, nil
}

// appliedSnapshot is the current theme, except that changes excluded by a
// key filter keep their old value so they stay pending for the next run.
func (r *Runner) appliedSnapshot(old, flat theme.Flat, all, applied []theme.Change) theme.Flat {
	appliedKeys := make(map[string]bool, len(applied))
	for _, change := range applied {
		appliedKeys[change.Key] = true
	}

	snapshot := make(theme.Flat, len(flat))
	for key, value := range flat {
		snapshot[key] = value
	}
	for _, change := range all {
		if !appliedKeys[change.Key] {
			snapshot[change.Key] = old[change.Key]
		}
	}
	return snapshot
}

func (r *Runner) printPreview(renderer *render.Renderer, highlighter *render.Highlighter,
	file string, changes []theme.Change) {
	preview := rewrite.Preview(file, changes)
	if len(preview) == 0 {
		return
	}

	rel := file
	if p, err := filepath.Rel(r.cfg.Root, file); err == nil {
		rel = p
	}
	fmt.Fprintln(r.out, renderer.File(rel))
	for _, line := range preview {
		fmt.Fprintf(r.out, "  %4d - %s\n", line.Number, highlighter.HighlightLine(line.Before, file))
		fmt.Fprintf(r.out, "  %4d + %s\n", line.Number, highlighter.HighlightLine(line.After, file))
	}
}

// recordRun appends the run to the sqlite history. History is best-effort:
// failures are logged, never fatal, and apply outcomes never depend on it.
func (r *Runner) recordRun(run history.Run, changes []theme.Change) {
	if r.cfg.History.Disabled {
		return
	}

	store, err := history.Open(r.cfg.HistoryDBPath(), r.cfg.History.MaxRuns)
	if err != nil {
		logging.Warn("run history unavailable: %v", err)
		return
	}
	defer store.Close()

	if _, err := store.Record(run, changes); err != nil {
		logging.Warn("failed to record run history: %v", err)
	}
}
