// Package formatter renders stats as display strings.
package formatter

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dtnitsch/wordcalc/models"
)

// DefaultLocale is used when the configured locale does not parse.
const DefaultLocale = "en-US"

// Formatter renders numbers for one locale. It is safe for concurrent use.
type Formatter struct {
	printer *message.Printer
}

// New returns a Formatter for a BCP 47 locale such as "en-US" or "de-DE".
// Unknown or malformed locales fall back to DefaultLocale.
func New(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Count renders n with the locale's thousands separators.
func (f *Formatter) Count(n int) string {
	return f.printer.Sprintf("%d", n)
}

// Duration renders seconds as "N sec" below a minute and "M min S sec" otherwise.
func Duration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	if seconds < 60 {
		return fmt.Sprintf("%d sec", seconds)
	}
	return fmt.Sprintf("%d min %d sec", seconds/60, seconds%60)
}

// Format renders every displayed field of stats.
func (f *Formatter) Format(stats models.Stats) *models.FormattedStats {
	return &models.FormattedStats{
		Words:        f.Count(stats.Counts.Words),
		Characters:   f.Count(stats.Counts.Characters),
		Sentences:    f.Count(stats.Counts.Sentences),
		Paragraphs:   f.Count(stats.Counts.Paragraphs),
		ReadingLevel: stats.Readability.GradeLabel,
		ReadingTime:  Duration(stats.ReadingTimeSeconds),
		SpeakingTime: Duration(stats.SpeakingTimeSeconds),
	}
}

// Headline is the one-line "N words M characters" summary.
func (f *Formatter) Headline(counts models.TokenCounts) string {
	return fmt.Sprintf("%s words %s characters", f.Count(counts.Words), f.Count(counts.Characters))
}

// Keyword renders an entry as "term count (density%)".
func (f *Formatter) Keyword(entry models.KeywordEntry) string {
	return fmt.Sprintf("%s %s (%.1f%%)", entry.Term, f.Count(entry.Occurrences), entry.DensityPercent)
}

// Summary renders a report as labelled lines followed by its keywords.
func (f *Formatter) Summary(report *models.Report) string {
	formatted := report.Formatted
	if formatted == nil {
		formatted = f.Format(report.Stats)
	}

	var b strings.Builder
	if report.Source != "" {
		fmt.Fprintf(&b, "%s (%s)\n", report.Source, report.Scope)
	}
	b.WriteString(f.Headline(report.Stats.Counts))
	b.WriteString("\n")

	rows := [][2]string{
		{"Words", formatted.Words},
		{"Characters", formatted.Characters},
		{"Sentences", formatted.Sentences},
		{"Paragraphs", formatted.Paragraphs},
		{"Reading Level", formatted.ReadingLevel},
		{"Reading Time", formatted.ReadingTime},
		{"Speaking Time", formatted.SpeakingTime},
	}
	if report.Language != "" {
		rows = append(rows, [2]string{"Language", fmt.Sprintf("%s (%.2f)", report.Language, report.LanguageConfidence)})
	}
	for _, row := range rows {
		fmt.Fprintf(&b, "  %-14s %s\n", row[0]+":", row[1])
	}

	if len(report.Keywords) > 0 {
		b.WriteString("Keywords:\n")
		for i, entry := range report.Keywords {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, f.Keyword(entry))
		}
	}
	return b.String()
}
