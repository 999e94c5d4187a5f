// Package tokenizer derives word, character, sentence, paragraph and
// syllable counts from a text span.
package tokenizer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dtnitsch/wordcalc/models"
)

var (
	sentenceBreak = regexp.MustCompile(`[.!?]+`)
	vowelCluster  = regexp.MustCompile(`[aeiou]{1,2}`)
)

// Count computes every TokenCounts field for text.
func Count(text string) models.TokenCounts {
	return models.TokenCounts{
		Words:      Words(text),
		Characters: Characters(text),
		Sentences:  Sentences(text),
		Paragraphs: Paragraphs(text),
		Syllables:  Syllables(text),
	}
}

// Words counts whitespace-separated tokens.
func Words(text string) int {
	return len(strings.Fields(text)) // strings.Fields ignores leading/trailing whitespace
}

// Characters is the length of text as received, in code points.
func Characters(text string) int {
	return utf8.RuneCountInString(text)
}

// Sentences counts the non-blank fragments between runs of '.', '!' and '?'.
func Sentences(text string) int {
	clean := strings.TrimSpace(text)
	if clean == "" {
		return 0
	}
	return countNonBlank(sentenceBreak.Split(clean, -1))
}

// Paragraphs counts non-blank lines of the untrimmed text.
func Paragraphs(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return countNonBlank(strings.Split(text, "\n"))
}

// Syllables approximates syllables as one- or two-letter vowel clusters.
func Syllables(text string) int {
	if text == "" {
		return 0
	}
	return len(vowelCluster.FindAllStringIndex(strings.ToLower(text), -1))
}

func countNonBlank(fragments []string) int {
	n := 0
	for _, f := range fragments {
		if strings.TrimSpace(f) != "" {
			n++
		}
	}
	return n
}
