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

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestInitLoggerConsoleOnly(t *testing.T) {
	if err := InitLogger("", "debug", 7, 10, 3); err != nil {
		t.Fatalf("InitLogger with no file should not fail: %v", err)
	}

	if GetLogger().GetLevel() != zerolog.DebugLevel {
		t.Errorf("Expected debug level, got %v", GetLogger().GetLevel())
	}
}

func TestInitLoggerInvalidLevelDefaultsToInfo(t *testing.T) {
	if err := InitLogger("", "not-a-level", 7, 10, 3); err != nil {
		t.Fatalf("InitLogger should not fail on invalid level: %v", err)
	}

	if GetLogger().GetLevel() != zerolog.InfoLevel {
		t.Errorf("Expected info level fallback, got %v", GetLogger().GetLevel())
	}
}

func TestInitLoggerCreatesLogDirectory(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "rice-logging-test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	logFile := filepath.Join(tmpDir, "logs", "themectl.log")
	if err := InitLogger(logFile, "info", 7, 10, 3); err != nil {
		t.Fatalf("InitLogger failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, "logs")); err != nil {
		t.Errorf("Expected log directory to be created: %v", err)
	}
}

func TestSetLevel(t *testing.T) {
	if err := InitLogger("", "info", 7, 10, 3); err != nil {
		t.Fatalf("InitLogger failed: %v", err)
	}

	SetLevel("warn")
	if GetLogger().GetLevel() != zerolog.WarnLevel {
		t.Errorf("Expected warn level, got %v", GetLogger().GetLevel())
	}

	SetLevel("bogus")
	if GetLogger().GetLevel() != zerolog.InfoLevel {
		t.Errorf("Expected info level fallback, got %v", GetLogger().GetLevel())
	}
}
