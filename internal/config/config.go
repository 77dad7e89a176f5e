package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is the optional per-tree override file, looked up in the
// root of the dotfiles tree.
const ConfigFileName = "themectl.toml"

type Config struct {
	Paths   PathsConfig   `toml:"paths"`
	Scan    ScanConfig    `toml:"scan"`
	Logging LoggingConfig `toml:"logging"`
	History HistoryConfig `toml:"history"`

	// Root is the resolved absolute path of the dotfiles tree. It comes
	// from the CLI, never from the config file.
	Root string `toml:"-"`
}

type PathsConfig struct {
	Theme    string `toml:"theme"`
	Snapshot string `toml:"snapshot"`
	Backups  string `toml:"backups"`
}

type ScanConfig struct {
	Roots   []string `toml:"roots"`
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`
}

type LoggingConfig struct {
	Level      string `toml:"level"`
	File       string `toml:"file"`
	MaxAge     int    `toml:"max_age"`
	MaxSize    int    `toml:"max_size"`
	MaxBackups int    `toml:"max_backups"`
}

type HistoryConfig struct {
	Disabled bool `toml:"disabled"`
	MaxRuns  int  `toml:"max_runs"`
}

// Default returns the compiled-in configuration. The include patterns and
// exclusion set are deliberately broad: the tool rewrites anything textual
// that could embed a theme value.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Theme:    "theme.json",
			Snapshot: "theme.snapshot.json",
			Backups:  ".theme_backups",
		},
		Scan: ScanConfig{
			Roots: []string{"."},
			Include: []string{
				"*.css", "*.conf", "*.py", "*.rs", "*.toml", "*.json", "*.html", "*.js",
				"*.jsx", "*.tsx", "*.md", "*.yaml", "*.yml", "*.ini", "*.sh", "*.zsh", "*.bash",
				"*.lua", "*.vim", "*.vimrc", "*.properties", "*.xml", "*.plist", "*.scss", "*.sass",
				"*.less", "*.java", "*.kt", "*.gradle", "*.ps1",
				"*.c", "*.h", "*.cpp", "*.hpp", "*.cs",
			},
			Exclude: []string{
				".theme_backups", "target", "build", "node_modules", "dist", ".git",
				"configs_out", "pkg", ".venv", "venv", ".cache", ".gradle", ".idea",
				".vscode", "__pycache__", ".parcel-cache", ".next", "out",
				"dist-packages", "CMakeFiles", "cmake-build-debug", "vendor", ".tox",
				".mypy_cache", "coverage", "coverage_html_report", ".pytest_cache",
			},
		},
		Logging: LoggingConfig{
			Level:      "info",
			File:       "",
			MaxAge:     7,  // days
			MaxSize:    10, // MB
			MaxBackups: 3,
		},
		History: HistoryConfig{
			Disabled: false,
			MaxRuns:  200,
		},
	}
}

// Load resolves root and returns the defaults, overridden by any subset of
// keys present in <root>/themectl.toml.
func Load(root string) (*Config, error) {
	rootAbs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root directory: %w", err)
	}

	config := Default()
	config.Root = rootAbs

	configPath := filepath.Join(rootAbs, ConfigFileName)
	if _, err := os.Stat(configPath); err == nil {
		// Decode on top of the defaults so unset keys keep their values
		if _, err := toml.DecodeFile(configPath, config); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	}

	// Validate configuration
	if len(config.Scan.Roots) == 0 {
		config.Scan.Roots = []string{"."}
	}
	if config.History.MaxRuns <= 0 {
		config.History.MaxRuns = 200 // Default fallback
	}

	return config, nil
}

// ThemePath returns the absolute path of the theme document.
func (c *Config) ThemePath() string {
	return filepath.Join(c.Root, c.Paths.Theme)
}

// SnapshotPath returns the absolute path of the snapshot file.
func (c *Config) SnapshotPath() string {
	return filepath.Join(c.Root, c.Paths.Snapshot)
}

// BackupDir returns the absolute path of the backup directory.
func (c *Config) BackupDir() string {
	return filepath.Join(c.Root, c.Paths.Backups)
}

// HistoryDBPath returns the absolute path of the run history database.
func (c *Config) HistoryDBPath() string {
	return filepath.Join(c.BackupDir(), "history.db")
}

// OwnFiles returns the files the tool itself owns. These are always
// excluded from discovery, whatever the include patterns say.
func (c *Config) OwnFiles() []string {
	return []string{
		c.ThemePath(),
		c.SnapshotPath(),
		filepath.Join(c.Root, ConfigFileName),
	}
}
