package common

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordcalc/models"
)

// LoadConfig reads --config (or wordcalc.yaml) and applies flag and
// WORDCALC_* environment overrides on top.
func LoadConfig(c *cli.Context) (*models.Config, error) {
	path := c.String("config")
	if path == "" {
		path = models.DefaultConfigFile
	}

	cfg, err := models.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if c.IsSet("locale") {
		cfg.Locale = c.String("locale")
	}
	if c.IsSet("min-occurrences") {
		cfg.MinOccurrences = c.Int("min-occurrences")
	}
	if c.IsSet("exclude-stopwords") {
		cfg.ExcludeStopwords = c.Bool("exclude-stopwords")
	}
	if c.IsSet("fetch-timeout") {
		cfg.Source.Timeout = c.Duration("fetch-timeout")
	}
	if c.IsSet("page-cache-dir") {
		cfg.Source.CacheDir = c.String("page-cache-dir")
	}
	if c.IsSet("endpoint") {
		cfg.Grammar.Endpoint = c.String("endpoint")
	}
	if c.IsSet("language") {
		cfg.Grammar.Language = c.String("language")
	}
	if c.IsSet("timeout") {
		cfg.Grammar.Timeout = c.Duration("timeout")
	}
	if c.IsSet("cache-dir") {
		cfg.Grammar.CacheDir = c.String("cache-dir")
	}
	if c.IsSet("db") {
		cfg.History.DBPath = c.String("db")
	}
	if c.IsSet("record") {
		cfg.History.Enabled = c.Bool("record")
	}
	if c.IsSet("addr") {
		cfg.Serve.Addr = c.String("addr")
	}
	if c.IsSet("debounce") {
		cfg.Watch.Debounce = c.Duration("debounce")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

