package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the tsearch tool.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Scan    ScanConfig    `yaml:"scan"`
	History HistoryConfig `yaml:"history"`
}

// SearchConfig holds the tunables of a single-file search.
type SearchConfig struct {
	// BlockSize is the read granularity in bytes. Files smaller than one
	// block are always scanned sequentially.
	BlockSize int `yaml:"block_size"`
	// MaxWordLength caps the search word; longer input is truncated.
	MaxWordLength int `yaml:"max_word_length"`
	// Workers is the default worker count; 0 or 1 means sequential.
	Workers int `yaml:"workers"`
}

// ScanConfig holds the file selection patterns for directory scans.
type ScanConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// HistoryConfig controls the search history store.
type HistoryConfig struct {
	Enabled bool `yaml:"enabled"`
	Limit   int  `yaml:"limit"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			BlockSize:     4096,
			MaxWordLength: 128,
			Workers:       0,
		},
		Scan: ScanConfig{
			Includes: []string{"**/*.txt", "**/*.log", "**/*.md", "**/*.csv"},
			Excludes: []string{"**/.git/**", "**/node_modules/**", "**/.tsearch/**"},
		},
		History: HistoryConfig{
			Enabled: true,
			Limit:   20,
		},
	}
}

// Load reads a config file, applying defaults for anything unset. A
// missing file yields the defaults without error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Search.BlockSize <= 0 {
		cfg.Search.BlockSize = 4096
	}
	if cfg.Search.MaxWordLength <= 0 {
		cfg.Search.MaxWordLength = 128
	}

	return cfg, nil
}

// LoadFromDir loads tsearch.yaml from the given directory.
func LoadFromDir(dir string) (*Config, error) {
	return Load(filepath.Join(dir, "tsearch.yaml"))
}

// HistoryDBPath returns the path to the history database under dir.
func HistoryDBPath(dir string) string {
	return filepath.Join(dir, ".tsearch", "history.db")
}

// EnsureStateDir ensures the .tsearch directory exists under dir.
func EnsureStateDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".tsearch"), 0755)
}
