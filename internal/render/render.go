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

package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jayson-clark/rice/internal/theme"
)

// Renderer styles CLI output. With plain set, everything passes through
// unstyled for basic terminals and piped output.
type Renderer struct {
	plain bool

	key     lipgloss.Style
	old     lipgloss.Style
	new     lipgloss.Style
	file    lipgloss.Style
	summary lipgloss.Style
	warn    lipgloss.Style
}

// New creates a renderer.
func New(plain bool) *Renderer {
	r := &Renderer{plain: plain}
	if plain {
		return r
	}

	r.key = lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true)
	r.old = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	r.new = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	r.file = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	r.summary = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	r.warn = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)

	return r
}

// Change renders one change record as "key: old → new".
func (r *Renderer) Change(c theme.Change) string {
	if r.plain {
		return fmt.Sprintf("%s: %s → %s", c.Key, c.Old, c.New)
	}
	return fmt.Sprintf("%s: %s → %s",
		r.key.Render(c.Key), r.old.Render(c.Old), r.new.Render(c.New))
}

// File renders a file path heading.
func (r *Renderer) File(path string) string {
	if r.plain {
		return path
	}
	return r.file.Render(path)
}

// Summary renders an end-of-run summary line.
func (r *Renderer) Summary(format string, args ...interface{}) string {
	s := fmt.Sprintf(format, args...)
	if r.plain {
		return s
	}
	return r.summary.Render(s)
}

// Warn renders a warning line.
func (r *Renderer) Warn(format string, args ...interface{}) string {
	s := fmt.Sprintf(format, args...)
	if r.plain {
		return s
	}
	return r.warn.Render(s)
}
