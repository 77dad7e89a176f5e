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
	"os"
	"strings"

	"github.com/jayson-clark/rice/internal/theme"
)

// PreviewLine shows one line a dry run would rewrite, before and after.
type PreviewLine struct {
	Number int
	Before string
	After  string
}

// Preview returns the lines of the file at path that contain at least one
// changed value, paired with the text they would become. Read errors
// yield an empty preview, matching Apply's zero-replacement treatment.
func Preview(path string, changes []theme.Change) []PreviewLine {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var preview []PreviewLine
	for i, line := range strings.Split(string(data), "\n") {
		after := line
		for _, change := range changes {
			if change.Old == "" {
				continue
			}
			after = strings.ReplaceAll(after, change.Old, change.New)
		}
		if after != line {
			preview = append(preview, PreviewLine{Number: i + 1, Before: line, After: after})
		}
	}

	return preview
}
