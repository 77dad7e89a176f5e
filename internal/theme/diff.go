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

package theme

import (
	"sort"

	"github.com/sahilm/fuzzy"
)

// Change records one theme value that differs from the snapshot. Old and
// New hold the textual forms used for replacement.
type Change struct {
	Key string
	Old string
	New string
}

// Diff compares the snapshot against the current flattened theme and
// returns one Change per key whose value differs. Keys present only in the
// current theme have no prior value to replace and are not emitted; keys
// present only in the snapshot are removed properties and are ignored.
// Keys are visited in sorted order so identical inputs always produce
// identical output.
func Diff(old, current Flat) []Change {
	keys := make([]string, 0, len(current))
	for key := range current {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var changes []Change
	for _, key := range keys {
		oldValue, ok := old[key]
		if !ok {
			continue
		}
		oldStr := Stringify(oldValue)
		newStr := Stringify(current[key])
		if oldStr != newStr {
			changes = append(changes, Change{Key: key, Old: oldStr, New: newStr})
		}
	}

	return changes
}

// FilterChanges narrows changes to those whose key fuzzy-matches query.
// An empty query returns changes unchanged. Input order is preserved.
func FilterChanges(changes []Change, query string) []Change {
	if query == "" {
		return changes
	}

	keys := make([]string, len(changes))
	for i, change := range changes {
		keys[i] = change.Key
	}

	matched := make(map[int]bool)
	for _, match := range fuzzy.Find(query, keys) {
		matched[match.Index] = true
	}

	var filtered []Change
	for i, change := range changes {
		if matched[i] {
			filtered = append(filtered, change)
		}
	}

	return filtered
}
