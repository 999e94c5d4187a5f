package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Selection is a half-open rune range [Start, End) inside a buffer.
// The zero value selects nothing, which callers treat as "whole buffer".
type Selection struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// IsEmpty reports whether the selection covers no text.
func (s Selection) IsEmpty() bool {
	return s.End <= s.Start
}

// Clamp bounds the selection to a buffer of n runes.
func (s Selection) Clamp(n int) Selection {
	if s.Start < 0 {
		s.Start = 0
	}
	if s.End > n {
		s.End = n
	}
	if s.Start > s.End {
		s.Start = s.End
	}
	return s
}

// ParseSelection parses "start:end" rune offsets. An empty string is the zero Selection.
func ParseSelection(str string) (Selection, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return Selection{}, nil
	}

	parts := strings.SplitN(str, ":", 2)
	if len(parts) != 2 {
		return Selection{}, fmt.Errorf("invalid selection %q: want start:end", str)
	}
	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Selection{}, fmt.Errorf("invalid selection start %q: %w", parts[0], err)
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Selection{}, fmt.Errorf("invalid selection end %q: %w", parts[1], err)
	}
	if start < 0 || end < start {
		return Selection{}, fmt.Errorf("invalid selection %q: need 0 <= start <= end", str)
	}
	return Selection{Start: start, End: end}, nil
}

// StatsRequest carries every parameter of a stats computation explicitly.
type StatsRequest struct {
	Source string `json:"source,omitempty"`
	Text   string `json:"text"`

	// Optional knobs
	Selection        Selection `json:"selection,omitempty"`
	MinOccurrences   int       `json:"min_occurrences,omitempty"`
	ExcludeStopwords bool      `json:"exclude_stopwords,omitempty"`
	DetectLanguage   bool      `json:"detect_language,omitempty"`
}

// Span returns the text the request applies to and its scope. A non-empty
// selection yields the selected substring; otherwise the whole text.
func (r StatsRequest) Span() (string, string) {
	if r.Selection.IsEmpty() {
		return r.Text, ScopeDocument
	}
	runes := []rune(r.Text)
	sel := r.Selection.Clamp(len(runes))
	if sel.IsEmpty() {
		return r.Text, ScopeDocument
	}
	return string(runes[sel.Start:sel.End]), ScopeSelection
}

// TransformRequest is the input of a transform call.
type TransformRequest struct {
	Text      string        `json:"text"`
	Kind      TransformKind `json:"kind"`
	Selection Selection     `json:"selection,omitempty"`
}

// ReplaceRequest is the input of a find/replace call.
type ReplaceRequest struct {
	Text        string `json:"text"`
	Find        string `json:"find"`
	Replacement string `json:"replace"`
	Literal     bool   `json:"literal,omitempty"`
}
