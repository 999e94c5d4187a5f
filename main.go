package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordcalc/internal/analyze"
	"github.com/dtnitsch/wordcalc/internal/convert"
	dbactions "github.com/dtnitsch/wordcalc/internal/db"
	"github.com/dtnitsch/wordcalc/internal/proofread"
	"github.com/dtnitsch/wordcalc/internal/serve"
	"github.com/dtnitsch/wordcalc/internal/watch"
	"github.com/dtnitsch/wordcalc/pkg/help"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "wordcalc",
		Usage: "Word counts, readability, keywords, text transforms and grammar checks",
		Flags: globalFlags(),
		Commands: []*cli.Command{
			{
				Name:      "stats",
				Usage:     "Compute counts, readability, reading time and keywords",
				ArgsUsage: "[inputs...]",
				Flags:     analysisFlags(),
				Action:    analyze.StatsAction,
			},
			{
				Name:      "keywords",
				Usage:     "List the top keywords with density",
				ArgsUsage: "[inputs...]",
				Flags:     analysisFlags(),
				Action:    analyze.KeywordsAction,
			},
			{
				Name:      "transform",
				Usage:     "Apply a case or whitespace transform",
				ArgsUsage: "[input]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "kind", Aliases: []string{"k"}, Required: true, Usage: "upper, lower, title, sentence, camel, invert, trim-spaces, remove-line-breaks"},
					&cli.StringFlag{Name: "selection", Usage: "Rune range start:end to transform (default: whole text)"},
				},
				Action: convert.TransformAction,
			},
			{
				Name:      "replace",
				Usage:     "Find and replace every occurrence",
				ArgsUsage: "[input]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "find", Required: true, Usage: "Regular expression (RE2 syntax) to find"},
					&cli.StringFlag{Name: "replace", Usage: "Replacement text; $1 expands capture groups"},
					&cli.BoolFlag{Name: "literal", Usage: "Treat --find as plain text"},
				},
				Action: convert.ReplaceAction,
			},
			{
				Name:  "grammar",
				Usage: "Check grammar with a LanguageTool server and apply fixes",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "endpoint", EnvVars: []string{"WORDCALC_GRAMMAR_ENDPOINT"}, Usage: "LanguageTool check endpoint"},
					&cli.StringFlag{Name: "language", EnvVars: []string{"WORDCALC_GRAMMAR_LANGUAGE"}, Usage: "Language code sent to the service"},
					&cli.DurationFlag{Name: "timeout", EnvVars: []string{"WORDCALC_GRAMMAR_TIMEOUT"}, Usage: "Request timeout"},
					&cli.StringFlag{Name: "cache-dir", EnvVars: []string{"WORDCALC_GRAMMAR_CACHE_DIR"}, Usage: "Cache service responses in this directory"},
				},
				Subcommands: []*cli.Command{
					{
						Name:      "check",
						Usage:     "List grammar and spelling issues",
						ArgsUsage: "[input]",
						Action:    proofread.CheckAction,
					},
					{
						Name:      "apply",
						Usage:     "Replace one issue by offset and length",
						ArgsUsage: "[input]",
						Flags: []cli.Flag{
							&cli.IntFlag{Name: "offset", Required: true, Usage: "Match offset in UTF-16 units"},
							&cli.IntFlag{Name: "length", Required: true, Usage: "Match length in UTF-16 units"},
							&cli.StringFlag{Name: "value", Usage: "Replacement text"},
						},
						Action: proofread.ApplyAction,
					},
					{
						Name:      "apply-all",
						Usage:     "Apply the first suggestion of every issue",
						ArgsUsage: "[input]",
						Flags: []cli.Flag{
							&cli.StringSliceFlag{Name: "skip", Usage: "Ignore the issue at offset:length (repeatable)"},
						},
						Action: proofread.ApplyAllAction,
					},
				},
			},
			{
				Name:      "watch",
				Usage:     "Print live stats whenever a file changes",
				ArgsUsage: "<file>",
				Flags: append(analysisFlags(),
					&cli.DurationFlag{Name: "debounce", EnvVars: []string{"WORDCALC_WATCH_DEBOUNCE"}, Usage: "Quiet period before recomputing"},
				),
				Action: watch.WatchAction,
			},
			{
				Name:  "serve",
				Usage: "Serve the HTTP API",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", EnvVars: []string{"WORDCALC_ADDR"}, Usage: "Listen address"},
					&cli.BoolFlag{Name: "record", EnvVars: []string{"WORDCALC_RECORD"}, Usage: "Store every stats report in history"},
				},
				Action: serve.ServeAction,
			},
			{
				Name:  "history",
				Usage: "Inspect recorded reports",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List recent reports",
						Flags:  []cli.Flag{&cli.IntFlag{Name: "limit", Value: 20, Usage: "Maximum reports to list"}},
						Action: dbactions.ListAction,
					},
					{
						Name:      "show",
						Usage:     "Show a report (default: latest)",
						ArgsUsage: "[id]",
						Action:    dbactions.ShowAction,
					},
					{
						Name:   "terms",
						Usage:  "Most frequent keywords across reports",
						Flags:  []cli.Flag{&cli.IntFlag{Name: "limit", Value: 10, Usage: "Maximum terms to list"}},
						Action: dbactions.TermsAction,
					},
					{
						Name:   "prune",
						Usage:  "Delete old reports and expired grammar cache entries",
						Flags:  []cli.Flag{&cli.DurationFlag{Name: "older-than", Usage: "Age cutoff (default: history.retention)"}},
						Action: dbactions.PruneAction,
					},
				},
			},
			{
				Name:  "quickstart",
				Usage: "Print the quick reference",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, EnvVars: []string{"WORDCALC_CONFIG"}, Usage: "Config file (default: wordcalc.yaml)"},
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "text", EnvVars: []string{"WORDCALC_FORMAT"}, Usage: "Output format: text, json, yaml"},
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Write output to this file instead of stdout"},
		&cli.StringFlag{Name: "locale", EnvVars: []string{"WORDCALC_LOCALE"}, Usage: "Locale for number formatting"},
		&cli.StringFlag{Name: "db", EnvVars: []string{"WORDCALC_DB"}, Usage: "History database path"},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Only log errors"},
		&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Log debug output"},
	}
}

func analysisFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "kind", Value: "auto", Usage: "Input kind: auto, text, html, url"},
		&cli.StringFlag{Name: "selection", Usage: "Rune range start:end to analyze (single input only)"},
		&cli.IntFlag{Name: "min-occurrences", EnvVars: []string{"WORDCALC_MIN_OCCURRENCES"}, Usage: "Minimum occurrences for a keyword"},
		&cli.BoolFlag{Name: "exclude-stopwords", EnvVars: []string{"WORDCALC_EXCLUDE_STOPWORDS"}, Usage: "Drop common English words from keywords"},
		&cli.BoolFlag{Name: "detect-language", Usage: "Detect the language of the text"},
		&cli.BoolFlag{Name: "record", EnvVars: []string{"WORDCALC_RECORD"}, Usage: "Store the report in history"},
		&cli.StringFlag{Name: "fields", Usage: "Comma-separated top-level fields to keep in json/yaml output"},
		&cli.IntFlag{Name: "workers", Value: analyze.DefaultWorkers, Usage: "Concurrent loads for several inputs"},
		&cli.DurationFlag{Name: "fetch-timeout", EnvVars: []string{"WORDCALC_FETCH_TIMEOUT"}, Usage: "URL fetch timeout"},
		&cli.StringFlag{Name: "page-cache-dir", EnvVars: []string{"WORDCALC_PAGE_CACHE_DIR"}, Usage: "Cache fetched web pages in this directory"},
	}
}
