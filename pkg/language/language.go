// Package language guesses the natural language of a text span.
package language

import (
	"strings"
	"unicode"

	"github.com/pemistahl/lingua-go"
)

// minLetters is the least amount of letters worth running detection on.
const minLetters = 10

// DefaultLanguages keeps the detector's model footprint small.
var DefaultLanguages = []lingua.Language{
	lingua.English,
	lingua.French,
	lingua.German,
	lingua.Spanish,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
}

// Result is a detected language.
type Result struct {
	Code       string  `json:"code" yaml:"code"` // ISO-639-1, lowercase
	Name       string  `json:"name" yaml:"name"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
}

// Detector wraps a lingua detector. It is safe for concurrent use.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector builds a detector for languages, or DefaultLanguages when none are given.
func NewDetector(languages ...lingua.Language) *Detector {
	if len(languages) < 2 {
		languages = DefaultLanguages
	}
	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			WithPreloadedLanguageModels().
			Build(),
	}
}

// Detect returns the most likely language of text. ok is false when text is
// too short or no language could be decided.
func (d *Detector) Detect(text string) (Result, bool) {
	if countLetters(text) < minLetters {
		return Result{}, false
	}

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return Result{}, false
	}
	return Result{
		Code:       strings.ToLower(lang.IsoCode639_1().String()),
		Name:       strings.ToLower(lang.String()),
		Confidence: d.detector.ComputeLanguageConfidence(text, lang),
	}, true
}

func countLetters(text string) int {
	n := 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}
