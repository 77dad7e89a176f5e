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

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jayson-clark/rice/internal/apply"
	"github.com/jayson-clark/rice/internal/config"
	"github.com/jayson-clark/rice/internal/history"
	"github.com/jayson-clark/rice/internal/logging"
	"github.com/jayson-clark/rice/internal/version"
)

func main() {
	// Define command line flags
	dryRun := flag.Bool("dry-run", false, "Preview theme changes without modifying any file")
	dryRunShort := flag.Bool("d", false, "Preview theme changes without modifying any file")
	initSnapshot := flag.Bool("init", false, "Create the snapshot baseline from the current theme without diffing")
	initSnapshotShort := flag.Bool("i", false, "Create the snapshot baseline from the current theme without diffing")
	showHistoryFlag := flag.Bool("history", false, "Show recent apply runs")
	filter := flag.String("filter", "", "Only apply changes whose key fuzzy-matches the query")
	filterShort := flag.String("f", "", "Only apply changes whose key fuzzy-matches the query")
	preview := flag.Bool("preview", false, "With --dry-run, show highlighted before/after lines")
	previewShort := flag.Bool("p", false, "With --dry-run, show highlighted before/after lines")
	root := flag.String("root", ".", "Root of the dotfiles tree")
	rootShort := flag.String("r", "", "Root of the dotfiles tree")
	plain := flag.Bool("plain", false, "Disable colored output")
	plainShort := flag.Bool("b", false, "Disable colored output")
	help := flag.Bool("help", false, "Show help information")
	helpShort := flag.Bool("h", false, "Show help information")
	versionFlag := flag.Bool("version", false, "Display version and build information")
	versionShort := flag.Bool("v", false, "Display version and build information")
	flag.Parse()

	// Show version if requested
	if *versionFlag || *versionShort {
		fmt.Printf("themectl version %s | %s (%s)\n",
			version.Version,
			version.BuildTime,
			version.CommitHash,
		)
		os.Exit(0)
	}

	// Show help if requested
	if *help || *helpShort {
		showHelp()
		return
	}

	rootDir := *root
	if *rootShort != "" {
		rootDir = *rootShort
	}

	cfg, err := config.Load(rootDir)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logging.InitLogger(cfg.Logging.File, cfg.Logging.Level,
		cfg.Logging.MaxAge, cfg.Logging.MaxSize, cfg.Logging.MaxBackups); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}

	usePlain := *plain || *plainShort

	// Handle the history listing
	if *showHistoryFlag {
		if err := showHistory(cfg); err != nil {
			logging.Fatal("failed to show run history: %v", err)
		}
		return
	}

	runner := apply.NewRunner(cfg, os.Stdout)

	// Handle forced snapshot initialization
	if *initSnapshot || *initSnapshotShort {
		if err := runner.Init(); err != nil {
			logging.Fatal("failed to initialize snapshot: %v", err)
		}
		fmt.Println("Snapshot initialized. Edit the theme and run themectl to apply.")
		return
	}

	opts := apply.Options{
		DryRun:  *dryRun || *dryRunShort,
		Preview: *preview || *previewShort,
		Plain:   usePlain,
		Filter:  *filter,
	}
	if opts.Filter == "" {
		opts.Filter = *filterShort
	}

	if _, err := runner.Run(opts); err != nil {
		logging.Fatal("%v", err)
	}
}

func showHistory(cfg *config.Config) error {
	if cfg.History.Disabled {
		fmt.Println("Run history is disabled in the configuration.")
		return nil
	}

	store, err := history.Open(cfg.HistoryDBPath(), cfg.History.MaxRuns)
	if err != nil {
		return err
	}
	defer store.Close()

	runs := store.Recent(20)
	if len(runs) == 0 {
		fmt.Println("No recorded runs yet.")
		return nil
	}

	for _, run := range runs {
		fmt.Printf("%s  %-5s  %d change(s), %d replacement(s) across %d of %d file(s)\n",
			run.StartedAt.Format("2006-01-02 15:04:05"),
			run.Mode, run.Changes, run.Replacements, run.FilesModified, run.FilesScanned)
	}

	return nil
}

func showHelp() {
	fmt.Println("themectl - propagate theme value changes across the dotfiles tree")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  themectl                      Apply pending theme changes")
	fmt.Println("  themectl --dry-run, -d        Preview changes without writing anything")
	fmt.Println("  themectl --init, -i           Baseline the snapshot from the current theme")
	fmt.Println("  themectl --history            Show recent apply runs")
	fmt.Println("  themectl --filter KEY, -f KEY Apply only changes whose key matches")
	fmt.Println("  themectl --preview, -p        With --dry-run, show before/after lines")
	fmt.Println("  themectl --root DIR, -r DIR   Dotfiles tree root (default: current directory)")
	fmt.Println("  themectl --plain, -b          Disable colors for basic terminals")
	fmt.Println("  themectl --version, -v        Display version and build information")
	fmt.Println("  themectl --help, -h           Show this help message")
	fmt.Println()
	fmt.Println("themectl reads theme.json, diffs it against theme.snapshot.json (the")
	fmt.Println("state applied by the previous run), and replaces every literal")
	fmt.Println("occurrence of each changed value in the configuration files under the")
	fmt.Println("tree. Modified files are backed up to .theme_backups/<timestamp>/")
	fmt.Println("before being overwritten, and the snapshot is updated afterwards so")
	fmt.Println("repeated runs are idempotent.")
	fmt.Println()
	fmt.Println("On the first run (no snapshot present) themectl only records the")
	fmt.Println("baseline and changes nothing.")
	fmt.Println()
	fmt.Println("Replacement is literal substring substitution with no syntax")
	fmt.Println("awareness: a theme value that happens to appear inside unrelated")
	fmt.Println("text will be rewritten as well. Review --dry-run output before")
	fmt.Println("applying if your theme uses short values.")
	fmt.Println()
	fmt.Println("Optional per-tree settings live in themectl.toml at the tree root;")
	fmt.Println("see the repository README for the available keys.")
}
