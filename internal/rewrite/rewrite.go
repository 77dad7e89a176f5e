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

package rewrite

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jayson-clark/rice/internal/logging"
	"github.com/jayson-clark/rice/internal/theme"
)

// Rewriter performs literal substring replacement of changed theme values
// inside configuration files, backing up each file it modifies.
//
// Replacement is unconditional: there is no word-boundary or syntax
// awareness, so a theme value that happens to be a substring of unrelated
// text will be rewritten too. That is the documented contract of this
// tool, inherited from how theme values are embedded verbatim in config
// files.
type Rewriter struct {
	root      string
	backupDir string
	stamp     string
}

// New creates a rewriter for one run. All backups of that run share a
// single timestamp subtree under backupDir.
func New(root, backupDir string) *Rewriter {
	return &Rewriter{
		root:      root,
		backupDir: backupDir,
		stamp:     time.Now().Format("20060102_150405"),
	}
}

// Stamp returns the timestamp namespace this run's backups are stored
// under.
func (r *Rewriter) Stamp() string {
	return r.stamp
}

// Apply replaces every literal occurrence of each change's old value in
// the file at path and returns the total occurrence count. When dryRun is
// false and at least one replacement happened, the original file is
// backed up first and then overwritten. Any I/O failure is logged and
// counts as zero replacements; it never aborts the run.
func (r *Rewriter) Apply(path string, changes []theme.Change, dryRun bool) int {
	data, err := os.ReadFile(path)
	if err != nil {
		logging.Error("error processing %s: %v", path, err)
		return 0
	}

	rel := r.relPath(path)
	content := string(data)
	replacements := 0

	for _, change := range changes {
		if change.Old == "" {
			// Replacing the empty string would touch every byte offset
			continue
		}
		count := strings.Count(content, change.Old)
		if count == 0 {
			continue
		}
		if !dryRun {
			content = strings.ReplaceAll(content, change.Old, change.New)
		}
		replacements += count
		logging.Info("  %s: %s → %s (%dx)", rel, change.Old, change.New, count)
	}

	if replacements > 0 && !dryRun {
		if err := r.backup(path, data); err != nil {
			logging.Error("error backing up %s: %v", path, err)
			return 0
		}
		mode := os.FileMode(0644)
		if info, err := os.Stat(path); err == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(path, []byte(content), mode); err != nil {
			logging.Error("error writing %s: %v", path, err)
			return 0
		}
	}

	return replacements
}

// backup copies the pre-modification content into the run's timestamped
// backup tree, mirroring the file's path relative to the root and
// preserving mode and modification time.
func (r *Rewriter) backup(path string, data []byte) error {
	backupPath := filepath.Join(r.backupDir, r.stamp, r.relPath(path))
	if err := os.MkdirAll(filepath.Dir(backupPath), 0755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat original file: %w", err)
	}

	if err := os.WriteFile(backupPath, data, info.Mode()); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}
	if err := os.Chtimes(backupPath, time.Now(), info.ModTime()); err != nil {
		return fmt.Errorf("failed to preserve backup mtime: %w", err)
	}

	return nil
}

func (r *Rewriter) relPath(path string) string {
	if rel, err := filepath.Rel(r.root, path); err == nil {
		return rel
	}
	return path
}
