// Package analyze implements the stats and keywords commands.
package analyze

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordcalc/internal/common"
	"github.com/dtnitsch/wordcalc/models"
	"github.com/dtnitsch/wordcalc/pkg/analytics"
	"github.com/dtnitsch/wordcalc/pkg/caching"
	"github.com/dtnitsch/wordcalc/pkg/db"
	"github.com/dtnitsch/wordcalc/pkg/language"
	"github.com/dtnitsch/wordcalc/pkg/source"
	"github.com/dtnitsch/wordcalc/pkg/storage"
)

// InputSummary reports how one input of a batch fared.
type InputSummary struct {
	Source string `json:"source" yaml:"source"`
	Words  int    `json:"words,omitempty" yaml:"words,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// BatchOutput is printed when several inputs are analyzed together.
type BatchOutput struct {
	Status    string         `json:"status" yaml:"status"`
	Inputs    []InputSummary `json:"inputs" yaml:"inputs"`
	Aggregate *models.Report `json:"aggregate" yaml:"aggregate"`
	ReportID  int64          `json:"report_id,omitempty" yaml:"report_id,omitempty"`
}

// Session carries what a command needs to analyze inputs.
type Session struct {
	Config   *models.Config
	Logger   *slog.Logger
	Loader   *source.Loader
	Analyzer *analytics.Analyzer
	Kind     source.Kind
	Workers  int
}

// NewSession builds a Session from CLI flags and configuration.
func NewSession(c *cli.Context) (*Session, error) {
	cfg, err := common.LoadConfig(c)
	if err != nil {
		return nil, err
	}
	logger := common.NewLogger(c)

	kind, err := source.ParseKind(c.String("kind"))
	if err != nil {
		return nil, err
	}

	fetcher := source.NewFetcher(cfg.Source.Timeout)
	if cfg.Source.CacheDir != "" {
		cache, err := caching.NewCache(cfg.Source.CacheDir, cfg.Source.CacheTTL)
		if err != nil {
			return nil, fmt.Errorf("failed to open page cache: %w", err)
		}
		fetcher = fetcher.WithCache(cache, logger)
	}

	var detector *language.Detector
	if c.Bool("detect-language") {
		detector = language.NewDetector()
	}

	return &Session{
		Config: cfg,
		Logger: logger,
		Loader: source.NewLoader(storage.New(), fetcher),
		Analyzer: analytics.New(analytics.Options{
			MinOccurrences:   cfg.MinOccurrences,
			ExcludeStopwords: cfg.ExcludeStopwords,
			Locale:           cfg.Locale,
		}, detector, logger),
		Kind:    kind,
		Workers: c.Int("workers"),
	}, nil
}

// Request builds the per-text request from flags.
func Request(c *cli.Context, doc *models.Document) (models.StatsRequest, error) {
	sel, err := models.ParseSelection(c.String("selection"))
	if err != nil {
		return models.StatsRequest{}, err
	}
	req := models.StatsRequest{
		Source:           doc.Source,
		Text:             doc.ToPlainText(),
		Selection:        sel,
		ExcludeStopwords: c.Bool("exclude-stopwords"),
		DetectLanguage:   c.Bool("detect-language"),
	}
	if c.IsSet("min-occurrences") {
		req.MinOccurrences = c.Int("min-occurrences")
	}
	return req, nil
}

// Analyze loads refs and returns a single-input report or a batch output.
func (s *Session) Analyze(ctx context.Context, c *cli.Context, refs []string) (*models.Report, *BatchOutput, int, error) {
	if len(refs) == 0 {
		refs = []string{storage.StdinName}
	}
	if len(refs) > 1 && c.String("selection") != "" {
		return nil, nil, 0, fmt.Errorf("--selection applies to a single input, got %d", len(refs))
	}

	results := LoadAll(ctx, s.Logger, s.Loader, s.Kind, refs, s.Workers)

	if len(results) == 1 {
		r := results[0]
		if r.Error != nil {
			return nil, nil, 0, fmt.Errorf("failed to load %s: %w", r.Ref, r.Error)
		}
		req, err := Request(c, r.Document)
		if err != nil {
			return nil, nil, 0, err
		}
		return s.Analyzer.Analyze(req), nil, len(req.Text), nil
	}

	batch := &BatchOutput{Status: "success"}
	texts := make([]string, 0, len(results))
	textBytes := 0
	for _, r := range results {
		if r.Error != nil {
			batch.Status = "partial"
			batch.Inputs = append(batch.Inputs, InputSummary{Source: r.Ref, Error: r.Error.Error()})
			continue
		}
		text := r.Text()
		texts = append(texts, text)
		textBytes += len(text)
		batch.Inputs = append(batch.Inputs, InputSummary{
			Source: r.Document.Source,
			Words:  analytics.ComputeStats(text).Counts.Words,
		})
	}
	if len(texts) == 0 {
		return nil, nil, 0, fmt.Errorf("all %d inputs failed to load", len(refs))
	}

	req, err := Request(c, &models.Document{})
	if err != nil {
		return nil, nil, 0, err
	}
	name := fmt.Sprintf("%d inputs", len(texts))
	batch.Aggregate = s.Analyzer.Aggregate(name, texts, req)
	return batch.Aggregate, batch, textBytes, nil
}

// Record stores report in the history database when recording is enabled.
func (s *Session) Record(report *models.Report, textBytes int) (int64, error) {
	if !s.Config.History.Enabled {
		return 0, nil
	}

	database, err := db.Open(s.Config.History.DBPath)
	if err != nil {
		return 0, err
	}
	defer database.Close()

	requestID := uuid.NewString()
	id, err := database.InsertReport(report, requestID, textBytes)
	if err != nil {
		return 0, fmt.Errorf("failed to record report: %w", err)
	}
	s.Logger.Info("Recorded report", "report_id", id, "request_id", requestID, "db", database.Path())
	return id, nil
}

func StatsAction(c *cli.Context) error {
	s, err := NewSession(c)
	if err != nil {
		return err
	}

	report, batch, textBytes, err := s.Analyze(c.Context, c, c.Args().Slice())
	if err != nil {
		return err
	}

	id, err := s.Record(report, textBytes)
	if err != nil {
		return err
	}

	f := s.Analyzer.Formatter()
	if batch != nil {
		batch.ReportID = id
		return common.Write(c, filtered(c, batch), func() string {
			var sb strings.Builder
			for _, in := range batch.Inputs {
				if in.Error != "" {
					fmt.Fprintf(&sb, "%-30s error: %s\n", in.Source, in.Error)
					continue
				}
				fmt.Fprintf(&sb, "%-30s %s words\n", in.Source, f.Count(in.Words))
			}
			sb.WriteString(strings.Repeat("-", 40) + "\n")
			sb.WriteString(f.Summary(batch.Aggregate))
			return sb.String()
		})
	}

	return common.Write(c, filtered(c, report), func() string {
		return f.Summary(report)
	})
}

func KeywordsAction(c *cli.Context) error {
	s, err := NewSession(c)
	if err != nil {
		return err
	}

	report, _, _, err := s.Analyze(c.Context, c, c.Args().Slice())
	if err != nil {
		return err
	}

	resp := models.KeywordsResponse{
		TotalWords: report.Stats.Counts.Words,
		Keywords:   report.Keywords,
	}
	if resp.Keywords == nil {
		resp.Keywords = []models.KeywordEntry{}
	}

	f := s.Analyzer.Formatter()
	return common.Write(c, resp, func() string {
		if len(resp.Keywords) == 0 {
			return "No keywords found."
		}
		var sb strings.Builder
		for i, k := range resp.Keywords {
			fmt.Fprintf(&sb, "%2d. %s\n", i+1, f.Keyword(k))
		}
		return sb.String()
	})
}

func filtered(c *cli.Context, v interface{}) interface{} {
	if fields := c.String("fields"); fields != "" {
		return common.FilterResultFields(v, fields)
	}
	return v
}
