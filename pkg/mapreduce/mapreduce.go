// Package mapreduce aggregates statistics over several documents.
package mapreduce

import (
	"fmt"

	"github.com/dtnitsch/wordcalc/models"
	"github.com/dtnitsch/wordcalc/pkg/keywords"
	"github.com/dtnitsch/wordcalc/pkg/tokenizer"
)

// Partial is the intermediate result for one or more documents.
type Partial struct {
	Documents int
	Counts    models.TokenCounts
	Terms     *keywords.TermTable
}

// Map tokenizes one document's text. exclude filters keyword terms and may be nil.
func Map(text string, exclude func(string) bool) Partial {
	return Partial{
		Documents: 1,
		Counts:    tokenizer.Count(text),
		Terms:     keywords.Frequencies(text, exclude),
	}
}

// Reduce sums counts and merges term tables. Term order follows the order
// of intermediate, so ties keep the first document's ordering.
func Reduce(intermediate []Partial) Partial {
	final := Partial{Terms: keywords.NewTermTable()}

	for _, p := range intermediate {
		final.Documents += p.Documents
		final.Counts = addCounts(final.Counts, p.Counts)
		final.Terms.Merge(p.Terms)
	}

	return final
}

func addCounts(a, b models.TokenCounts) models.TokenCounts {
	return models.TokenCounts{
		Words:      a.Words + b.Words,
		Characters: a.Characters + b.Characters,
		Sentences:  a.Sentences + b.Sentences,
		Paragraphs: a.Paragraphs + b.Paragraphs,
		Syllables:  a.Syllables + b.Syllables,
	}
}

// TopKeywords returns the top n terms of p formatted as "term:count"
// (e.g., "learning:1153").
func TopKeywords(p Partial, n, minOccurrences int) []string {
	ranked := keywords.Rank(p.Terms, p.Counts.Words, minOccurrences)
	if n < len(ranked) {
		ranked = ranked[:max(n, 0)]
	}

	out := make([]string, len(ranked))
	for i, entry := range ranked {
		out[i] = fmt.Sprintf("%s:%d", entry.Term, entry.Occurrences)
	}
	return out
}
