// Package metrics turns token counts into timing estimates and a
// Flesch Reading Ease grade.
package metrics

import (
	"math"

	"github.com/dtnitsch/wordcalc/models"
)

const (
	// ReadingWordsPerMinute is the silent reading pace.
	ReadingWordsPerMinute = 200
	// SpeakingWordsPerMinute is the read-aloud pace.
	SpeakingWordsPerMinute = 150
)

// grade brackets, evaluated top-down; each lower bound is inclusive.
var gradeBrackets = []struct {
	min   float64
	label string
}{
	{90, "5th Grade"},
	{80, "6th Grade"},
	{70, "7th Grade"},
	{60, "8–9th Grade"},
	{50, "10–12th Grade"},
	{30, "College"},
}

const lowestGrade = "College Graduate"

// Compute derives Stats from counts.
func Compute(counts models.TokenCounts) models.Stats {
	return models.Stats{
		Counts:              counts,
		Readability:         Readability(counts),
		ReadingTimeSeconds:  ReadingTimeSeconds(counts.Words),
		SpeakingTimeSeconds: SpeakingTimeSeconds(counts.Words),
	}
}

// ReadingTimeSeconds estimates silent reading time.
func ReadingTimeSeconds(words int) int {
	return durationSeconds(words, ReadingWordsPerMinute)
}

// SpeakingTimeSeconds estimates read-aloud time.
func SpeakingTimeSeconds(words int) int {
	return durationSeconds(words, SpeakingWordsPerMinute)
}

func durationSeconds(words, wordsPerMinute int) int {
	if words <= 0 {
		return 0
	}
	wordsPerSecond := float64(wordsPerMinute) / 60
	return int(math.Ceil(float64(words) / wordsPerSecond))
}

// FleschScore returns the Flesch Reading Ease score. ok is false when
// words or sentences is zero.
func FleschScore(words, sentences, syllables int) (score float64, ok bool) {
	if words <= 0 || sentences <= 0 {
		return 0, false
	}
	w := float64(words)
	return 206.835 - 1.015*(w/float64(sentences)) - 84.6*(float64(syllables)/w), true
}

// GradeLabel maps a Flesch score to its school-grade label.
func GradeLabel(score float64) string {
	for _, b := range gradeBrackets {
		if score >= b.min {
			return b.label
		}
	}
	return lowestGrade
}

// Readability computes the Flesch result for counts.
func Readability(counts models.TokenCounts) models.Readability {
	score, ok := FleschScore(counts.Words, counts.Sentences, counts.Syllables)
	if !ok {
		return models.Readability{GradeLabel: models.NotApplicable}
	}
	return models.Readability{
		Applicable:  true,
		FleschScore: score,
		GradeLabel:  GradeLabel(score),
	}
}
