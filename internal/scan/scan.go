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

package scan

import (
	"io/fs"
	"path/filepath"

	"github.com/jayson-clark/rice/internal/logging"
)

// Scanner discovers the configuration files a run may rewrite.
type Scanner struct {
	root     string
	roots    []string
	patterns []string
	excluded map[string]bool
	ownFiles map[string]bool
}

// New creates a scanner rooted at root. roots are scanned relative to
// root unless absolute; patterns are *.ext globs matched against base
// names; excluded names prune whole subtrees; ownFiles are the tool's own
// data files, excluded unconditionally.
func New(root string, roots, patterns, excluded, ownFiles []string) *Scanner {
	s := &Scanner{
		root:     root,
		roots:    roots,
		patterns: patterns,
		excluded: make(map[string]bool, len(excluded)),
		ownFiles: make(map[string]bool, len(ownFiles)),
	}
	for _, name := range excluded {
		s.excluded[name] = true
	}
	for _, path := range ownFiles {
		s.ownFiles[resolvePath(path)] = true
	}
	return s
}

// Find walks the configured roots and returns every matching file,
// deduplicated by resolved path, in walk order. Unreadable directories
// are logged and skipped.
func (s *Scanner) Find() []string {
	seen := make(map[string]bool)
	var files []string

	for _, r := range s.roots {
		dir := r
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(s.root, r)
		}

		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logging.Warn("skipping %s: %v", path, err)
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			name := d.Name()
			if d.IsDir() {
				if path != dir && s.excluded[name] {
					return fs.SkipDir
				}
				return nil
			}

			if s.excluded[name] || !s.matches(name) {
				return nil
			}

			resolved := resolvePath(path)
			if s.ownFiles[resolved] || seen[resolved] {
				return nil
			}
			seen[resolved] = true
			files = append(files, path)
			return nil
		})
		if err != nil {
			logging.Warn("failed to walk %s: %v", dir, err)
		}
	}

	return files
}

func (s *Scanner) matches(name string) bool {
	for _, pattern := range s.patterns {
		if ok, err := filepath.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// resolvePath follows symlinks so identity checks compare real files.
func resolvePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
