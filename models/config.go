// Package models defines data structures for configuration, requests and reports.
package models

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no --config is given.
const DefaultConfigFile = "wordcalc.yaml"

// Config holds runtime configuration. Values come from the YAML file and
// are overridden by CLI flags / WORDCALC_* environment variables.
type Config struct {
	Locale           string `yaml:"locale"`
	MinOccurrences   int    `yaml:"min_occurrences"`
	ExcludeStopwords bool   `yaml:"exclude_stopwords"`

	Source  SourceConfig  `yaml:"source"`
	Grammar GrammarConfig `yaml:"grammar"`
	History HistoryConfig `yaml:"history"`
	Serve   ServeConfig   `yaml:"serve"`
	Watch   WatchConfig   `yaml:"watch"`
}

// SourceConfig configures URL loading.
type SourceConfig struct {
	Timeout  time.Duration `yaml:"timeout"`
	CacheDir string        `yaml:"cache_dir"` // empty disables the page cache
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// GrammarConfig configures the external grammar service.
type GrammarConfig struct {
	Endpoint string        `yaml:"endpoint"`
	Language string        `yaml:"language"`
	Timeout  time.Duration `yaml:"timeout"`
	CacheDir string        `yaml:"cache_dir"` // empty disables the response cache
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

// HistoryConfig configures the SQLite report log.
type HistoryConfig struct {
	Enabled       bool          `yaml:"enabled"`
	DBPath        string        `yaml:"db_path"`
	Retention     time.Duration `yaml:"retention"`
	PruneSchedule string        `yaml:"prune_schedule"` // cron expression, used by serve
}

// ServeConfig configures the HTTP server.
type ServeConfig struct {
	Addr string `yaml:"addr"`
}

// WatchConfig configures the file watcher.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Locale:         "en-US",
		MinOccurrences: 1,
		Source: SourceConfig{
			Timeout:  30 * time.Second,
			CacheTTL: 24 * time.Hour,
		},
		Grammar: GrammarConfig{
			Endpoint: "https://api.languagetool.org/v2/check",
			Language: DefaultGrammarLanguage,
			Timeout:  15 * time.Second,
			CacheTTL: time.Hour,
		},
		History: HistoryConfig{
			DBPath:        "wordcalc.db",
			Retention:     30 * 24 * time.Hour,
			PruneSchedule: "0 3 * * *",
		},
		Serve: ServeConfig{
			Addr: ":8080",
		},
		Watch: WatchConfig{
			Debounce: 250 * time.Millisecond,
		},
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig. A missing
// file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.MinOccurrences < 1 {
		return fmt.Errorf("min_occurrences must be a positive integer, got %d", c.MinOccurrences)
	}
	if c.Source.Timeout < 0 {
		return fmt.Errorf("source.timeout must not be negative")
	}
	if c.Grammar.Timeout < 0 {
		return fmt.Errorf("grammar.timeout must not be negative")
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	return nil
}
