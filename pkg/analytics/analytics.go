// Package analytics wires the tokenizer, metrics and keyword packages into
// a single stats pipeline.
package analytics

import (
	"log/slog"

	"github.com/dtnitsch/wordcalc/models"
	"github.com/dtnitsch/wordcalc/pkg/formatter"
	"github.com/dtnitsch/wordcalc/pkg/keywords"
	"github.com/dtnitsch/wordcalc/pkg/language"
	"github.com/dtnitsch/wordcalc/pkg/mapreduce"
	"github.com/dtnitsch/wordcalc/pkg/metrics"
	"github.com/dtnitsch/wordcalc/pkg/tokenizer"
)

// ComputeStats tokenizes text and derives its metrics.
func ComputeStats(text string) models.Stats {
	return metrics.Compute(tokenizer.Count(text))
}

// ExtractKeywords returns the top keywords of text.
func ExtractKeywords(text string, totalWords, minOccurrences int) []models.KeywordEntry {
	return keywords.Extract(text, totalWords, minOccurrences)
}

// Options are the defaults applied to requests that leave a knob unset.
type Options struct {
	MinOccurrences   int
	ExcludeStopwords bool
	Locale           string
}

// Analyzer builds reports. The zero value is not usable; call New.
type Analyzer struct {
	opts      Options
	formatter *formatter.Formatter
	detector  *language.Detector
	logger    *slog.Logger
}

// New creates an Analyzer. detector may be nil, which disables language detection.
func New(opts Options, detector *language.Detector, logger *slog.Logger) *Analyzer {
	if opts.MinOccurrences < 1 {
		opts.MinOccurrences = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		opts:      opts,
		formatter: formatter.New(opts.Locale),
		detector:  detector,
		logger:    logger.With("component", "analytics"),
	}
}

// Formatter returns the formatter used for report display strings.
func (a *Analyzer) Formatter() *formatter.Formatter {
	return a.formatter
}

// Analyze computes a full report for the span selected by req.
func (a *Analyzer) Analyze(req models.StatsRequest) *models.Report {
	span, scope := req.Span()
	stats := ComputeStats(span)

	report := &models.Report{
		Source:    req.Source,
		Scope:     scope,
		Stats:     stats,
		Keywords:  keywords.ExtractWithOptions(span, stats.Counts.Words, a.keywordOptions(req)),
		Formatted: a.formatter.Format(stats),
	}
	a.detect(report, span, req.DetectLanguage)

	a.logger.Debug("analyzed text",
		"source", req.Source,
		"scope", scope,
		"words", stats.Counts.Words,
		"keywords", len(report.Keywords))
	return report
}

// Aggregate computes one report over several texts. Counts are summed and
// keyword tables merged, so densities are relative to the combined word count.
func (a *Analyzer) Aggregate(source string, texts []string, req models.StatsRequest) *models.Report {
	opts := a.keywordOptions(req)

	partials := make([]mapreduce.Partial, 0, len(texts))
	for _, text := range texts {
		partials = append(partials, mapreduce.Map(text, opts.Exclude))
	}
	total := mapreduce.Reduce(partials)
	stats := metrics.Compute(total.Counts)

	report := &models.Report{
		Source:    source,
		Scope:     models.ScopeDocument,
		Stats:     stats,
		Keywords:  keywords.Rank(total.Terms, total.Counts.Words, opts.MinOccurrences),
		Formatted: a.formatter.Format(stats),
	}
	a.logger.Debug("aggregated texts",
		"documents", total.Documents,
		"words", total.Counts.Words,
		"top", mapreduce.TopKeywords(total, 5, opts.MinOccurrences))
	return report
}

func (a *Analyzer) keywordOptions(req models.StatsRequest) keywords.Options {
	opts := keywords.Options{MinOccurrences: a.opts.MinOccurrences}
	if req.MinOccurrences > 0 {
		opts.MinOccurrences = req.MinOccurrences
	}
	if req.ExcludeStopwords || a.opts.ExcludeStopwords {
		opts.Exclude = IsStopword
	}
	return opts
}

func (a *Analyzer) detect(report *models.Report, span string, want bool) {
	if !want || a.detector == nil {
		return
	}
	result, ok := a.detector.Detect(span)
	if !ok {
		a.logger.Debug("language undetermined", "source", report.Source)
		return
	}
	report.Language = result.Code
	report.LanguageConfidence = result.Confidence
}
