// Package keywords computes term frequency and density over a text span.
package keywords

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/dtnitsch/wordcalc/models"
)

const (
	// MaxKeywords is the number of entries returned at most.
	MaxKeywords = 10

	minTermLength = 4  // shorter tokens are mostly stopwords
	maxTermLength = 19 // longer tokens are mostly URLs and other junk
)

// nonWord matches anything that is neither a word character nor whitespace.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

// Options tunes extraction.
type Options struct {
	// MinOccurrences drops terms seen fewer times. Values below 1 mean 1.
	MinOccurrences int
	// Exclude, when set, drops terms for which it returns true.
	Exclude func(term string) bool
}

// Extract returns up to MaxKeywords entries for text, with densities
// relative to totalWords.
func Extract(text string, totalWords, minOccurrences int) []models.KeywordEntry {
	return ExtractWithOptions(text, totalWords, Options{MinOccurrences: minOccurrences})
}

// ExtractWithOptions is Extract with the full option set.
func ExtractWithOptions(text string, totalWords int, opts Options) []models.KeywordEntry {
	if totalWords <= 0 || strings.TrimSpace(text) == "" {
		return []models.KeywordEntry{}
	}
	return Rank(Frequencies(text, opts.Exclude), totalWords, opts.MinOccurrences)
}

// Terms normalizes text and returns candidate terms in source order.
func Terms(text string) []string {
	normalized := nonWord.ReplaceAllString(strings.ToLower(text), " ")

	var terms []string
	for _, token := range strings.Fields(normalized) {
		n := utf8.RuneCountInString(token)
		if n < minTermLength || n > maxTermLength {
			continue
		}
		terms = append(terms, token)
	}
	return terms
}

// Frequencies counts candidate terms of text. exclude may be nil.
func Frequencies(text string, exclude func(string) bool) *TermTable {
	table := NewTermTable()
	for _, term := range Terms(text) {
		if exclude != nil && exclude(term) {
			continue
		}
		table.Add(term, 1)
	}
	return table
}

// Rank filters table by minOccurrences, orders by occurrences descending
// (first-seen order breaks ties) and keeps the top MaxKeywords.
func Rank(table *TermTable, totalWords, minOccurrences int) []models.KeywordEntry {
	entries := []models.KeywordEntry{}
	if table == nil || totalWords <= 0 {
		return entries
	}
	if minOccurrences < 1 {
		minOccurrences = 1
	}

	for _, term := range table.terms {
		count := table.counts[term]
		if count < minOccurrences {
			continue
		}
		entries = append(entries, models.KeywordEntry{Term: term, Occurrences: count})
	}

	// Stable sort keeps first-seen order among equal counts
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Occurrences > entries[j].Occurrences
	})

	if len(entries) > MaxKeywords {
		entries = entries[:MaxKeywords]
	}
	for i := range entries {
		entries[i].DensityPercent = Density(entries[i].Occurrences, totalWords)
	}
	return entries
}

// Density is occurrences as a percentage of totalWords, rounded to one
// decimal place and capped at 100.
func Density(occurrences, totalWords int) float64 {
	if totalWords <= 0 {
		return 0
	}
	d := math.Round(float64(occurrences)/float64(totalWords)*1000) / 10
	return math.Min(d, 100)
}
