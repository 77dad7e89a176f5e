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
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Separator joins nested keys into flattened dotted paths.
const Separator = "."

// Document is a parsed theme document: nested string-keyed maps whose
// leaves are scalars. Arrays are treated as opaque leaves, not recursed
// into.
type Document map[string]any

// Flat maps dotted-path keys to their leaf values.
type Flat map[string]any

// LoadDocument parses the theme document at path. Numbers are decoded as
// json.Number so their literal source text survives for replacement.
func LoadDocument(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open theme document: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse theme document %s: %w", path, err)
	}

	return doc, nil
}

// Load parses and flattens the theme document at path.
func Load(path string) (Flat, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return Flatten(doc), nil
}

// Flatten converts a nested document into dotted-path keys.
func Flatten(doc Document) Flat {
	flat := make(Flat)
	flattenInto(flat, "", doc)
	return flat
}

func flattenInto(flat Flat, prefix string, m map[string]any) {
	for key, value := range m {
		path := key
		if prefix != "" {
			path = prefix + Separator + key
		}
		if child, ok := value.(map[string]any); ok {
			flattenInto(flat, path, child)
		} else {
			flat[path] = value
		}
	}
}

// Unflatten rebuilds a nested document from dotted-path keys. It inverts
// Flatten for any document whose keys do not themselves contain the
// separator.
func Unflatten(flat Flat) Document {
	doc := make(Document)
	for key, value := range flat {
		parts := strings.Split(key, Separator)
		node := map[string]any(doc)
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = value
	}
	return doc
}

// Stringify returns the textual form of a leaf value, the exact text the
// rewriter searches for and writes into files.
func Stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%v", t)
	}
}
