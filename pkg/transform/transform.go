// Package transform implements the case and whitespace transforms plus
// find/replace. Every transform is total: the empty string maps to itself.
package transform

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dtnitsch/wordcalc/models"
)

// ErrInvalidPattern is returned by Replace when the find pattern cannot be used.
var ErrInvalidPattern = errors.New("invalid pattern")

// Func is a string-to-string transform.
type Func func(string) string

var (
	titleWord      = regexp.MustCompile(`[\p{L}\p{N}_]\S*`)
	sentenceStart  = regexp.MustCompile(`(^\s*|[.!?]\s+)([\p{L}\p{N}_])`)
	horizontalRuns = regexp.MustCompile(`[ \t]+`)
	blankLineRuns  = regexp.MustCompile(`\n{3,}`)
	lineBreakRuns  = regexp.MustCompile(`[\r\n]+`)
)

var funcs = map[models.TransformKind]Func{
	models.TransformUpper:            strings.ToUpper,
	models.TransformLower:            strings.ToLower,
	models.TransformTitle:            Title,
	models.TransformSentence:         Sentence,
	models.TransformCamel:            Camel,
	models.TransformInvert:           Invert,
	models.TransformTrimSpaces:       TrimSpaces,
	models.TransformRemoveLineBreaks: RemoveLineBreaks,
}

// Lookup returns the transform for kind.
func Lookup(kind models.TransformKind) (Func, error) {
	fn, ok := funcs[kind]
	if !ok {
		return nil, fmt.Errorf("unsupported transform %s", kind)
	}
	return fn, nil
}

// Apply runs the transform named by kind over text.
func Apply(text string, kind models.TransformKind) (string, error) {
	fn, err := Lookup(kind)
	if err != nil {
		return "", err
	}
	return fn(text), nil
}

// ApplyRequest applies req.Kind to req.Selection of req.Text, or to the
// whole text when the selection is empty.
func ApplyRequest(req models.TransformRequest) (string, error) {
	fn, err := Lookup(req.Kind)
	if err != nil {
		return "", err
	}
	return ApplyToSelection(req.Text, req.Selection, fn), nil
}

// ApplyToSelection transforms only the selected rune range of buffer and
// splices the result back. An empty selection transforms the whole buffer.
func ApplyToSelection(buffer string, sel models.Selection, fn Func) string {
	if sel.IsEmpty() {
		return fn(buffer)
	}
	runes := []rune(buffer)
	sel = sel.Clamp(len(runes))
	if sel.IsEmpty() {
		return fn(buffer)
	}

	var b strings.Builder
	b.Grow(len(buffer))
	b.WriteString(string(runes[:sel.Start]))
	b.WriteString(fn(string(runes[sel.Start:sel.End])))
	b.WriteString(string(runes[sel.End:]))
	return b.String()
}

// Title uppercases the first word character of each whitespace-delimited
// token and lowercases the rest of it. Leading punctuation is left alone.
func Title(text string) string {
	return titleWord.ReplaceAllStringFunc(text, func(word string) string {
		r, size := utf8.DecodeRuneInString(word)
		return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
	})
}

// Sentence lowercases text, then uppercases the first word character of
// the text and each one following '.', '!' or '?' plus whitespace.
func Sentence(text string) string {
	lower := strings.ToLower(text)
	matches := sentenceStart.FindAllStringSubmatchIndex(lower, -1)
	if len(matches) == 0 {
		return lower
	}

	var b strings.Builder
	b.Grow(len(lower))
	last := 0
	for _, m := range matches {
		// m[4]:m[5] is the letter to capitalize
		r, size := utf8.DecodeRuneInString(lower[m[4]:])
		b.WriteString(lower[last:m[4]])
		b.WriteRune(unicode.ToUpper(r))
		last = m[4] + size
	}
	b.WriteString(lower[last:])
	return b.String()
}

// Camel lowercases text, capitalizes the start of every word after the
// first and drops all whitespace. Punctuation is kept.
func Camel(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	seenWord := false
	prevWord := false
	for _, r := range strings.ToLower(text) {
		if unicode.IsSpace(r) {
			prevWord = false
			continue
		}
		word := isWordRune(r)
		if word && !prevWord {
			if seenWord {
				r = unicode.ToUpper(r)
			}
			seenWord = true
		}
		prevWord = word
		b.WriteRune(r)
	}
	return b.String()
}

// Invert swaps the case of every cased letter.
func Invert(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		}
		return r
	}, text)
}

// TrimSpaces collapses space/tab runs to one space and three or more
// newlines to a blank line, then trims the ends.
func TrimSpaces(text string) string {
	text = horizontalRuns.ReplaceAllString(text, " ")
	text = blankLineRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// RemoveLineBreaks replaces each run of line breaks with a single space.
func RemoveLineBreaks(text string) string {
	return lineBreakRuns.ReplaceAllString(text, " ")
}

// Replace replaces every match of pattern in text. In literal mode the
// pattern and replacement are taken as-is; otherwise pattern is a regular
// expression and replacement may reference groups as $1 or ${name}.
func Replace(text, pattern, replacement string, literal bool) (string, error) {
	if pattern == "" {
		return "", fmt.Errorf("%w: empty find pattern", ErrInvalidPattern)
	}
	if literal {
		return strings.ReplaceAll(text, pattern, replacement), nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	return re.ReplaceAllString(text, replacement), nil
}

// ReplaceRequest runs Replace with the fields of req.
func ReplaceRequest(req models.ReplaceRequest) (string, error) {
	return Replace(req.Text, req.Find, req.Replacement, req.Literal)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
