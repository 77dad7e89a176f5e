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
	"reflect"
	"testing"
)

func TestDiff_OnlyChangedKeysWithPriorValues(t *testing.T) {
	old := Flat{"a.b": "1"}
	current := Flat{"a.b": "2", "a.c": "3"}

	changes := Diff(old, current)

	expected := []Change{{Key: "a.b", Old: "1", New: "2"}}
	if !reflect.DeepEqual(changes, expected) {
		t.Errorf("Diff mismatch:\n got: %v\nwant: %v", changes, expected)
	}
}

func TestDiff_IgnoresRemovedKeys(t *testing.T) {
	old := Flat{"gone": "#000000", "kept": "#ffffff"}
	current := Flat{"kept": "#ffffff"}

	changes := Diff(old, current)
	if len(changes) != 0 {
		t.Errorf("Expected no changes when values match, got %v", changes)
	}
}

func TestDiff_Deterministic(t *testing.T) {
	old := Flat{"b": "1", "a": "1", "c": "1"}
	current := Flat{"b": "2", "a": "2", "c": "2"}

	first := Diff(old, current)
	second := Diff(old, current)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Diff not deterministic:\nfirst:  %v\nsecond: %v", first, second)
	}

	// Sorted key order
	if first[0].Key != "a" || first[1].Key != "b" || first[2].Key != "c" {
		t.Errorf("Expected sorted change order, got %v", first)
	}
}

func TestDiff_EqualValuesNotEmitted(t *testing.T) {
	old := Flat{"x": "#89b4fa"}
	current := Flat{"x": "#89b4fa"}

	if changes := Diff(old, current); len(changes) != 0 {
		t.Errorf("Expected no changes for identical themes, got %v", changes)
	}
}

func TestFilterChanges_EmptyQueryReturnsAll(t *testing.T) {
	changes := []Change{
		{Key: "colors.bg", Old: "1", New: "2"},
		{Key: "font.size", Old: "3", New: "4"},
	}

	filtered := FilterChanges(changes, "")
	if !reflect.DeepEqual(filtered, changes) {
		t.Errorf("Expected all changes for empty query, got %v", filtered)
	}
}

func TestFilterChanges_MatchesKeySubsequence(t *testing.T) {
	changes := []Change{
		{Key: "colors.bg", Old: "1", New: "2"},
		{Key: "font.size", Old: "3", New: "4"},
		{Key: "colors.fg", Old: "5", New: "6"},
	}

	filtered := FilterChanges(changes, "colors")

	if len(filtered) != 2 {
		t.Fatalf("Expected 2 matching changes, got %d: %v", len(filtered), filtered)
	}
	if filtered[0].Key != "colors.bg" || filtered[1].Key != "colors.fg" {
		t.Errorf("Expected input order to be preserved, got %v", filtered)
	}
}

func TestFilterChanges_NoMatches(t *testing.T) {
	changes := []Change{{Key: "colors.bg", Old: "1", New: "2"}}

	if filtered := FilterChanges(changes, "xyzzy"); len(filtered) != 0 {
		t.Errorf("Expected no matches, got %v", filtered)
	}
}
