package grammar

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf16"

	"github.com/dtnitsch/wordcalc/models"
)

// ErrMatchOutOfRange means a match does not address a valid range of the text.
var ErrMatchOutOfRange = errors.New("match out of range")

// Fixable returns the matches that carry at least one replacement.
func Fixable(matches []models.Match) []models.Match {
	out := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		if len(m.Replacements) > 0 {
			out = append(out, m)
		}
	}
	return out
}

// Ignore drops every match located at offset with the given length.
func Ignore(matches []models.Match, offset, length int) []models.Match {
	out := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		if m.Offset == offset && m.Length == length {
			continue
		}
		out = append(out, m)
	}
	return out
}

// ApplyMatch replaces length units at offset with replacement. Offsets and
// lengths are UTF-16 code units, the unit the service reports.
func ApplyMatch(text string, offset, length int, replacement string) (string, error) {
	units := utf16.Encode([]rune(text))
	if err := checkRange(units, offset, length); err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(text) + len(replacement))
	b.WriteString(string(utf16.Decode(units[:offset])))
	b.WriteString(replacement)
	b.WriteString(string(utf16.Decode(units[offset+length:])))
	return b.String(), nil
}

// ApplyAll applies the first replacement of every fixable match, from the
// highest offset down so earlier offsets stay valid. Matches that overlap
// an already applied one, or fall outside text, are skipped. It returns the
// new text and the number of replacements made.
func ApplyAll(text string, matches []models.Match) (string, int) {
	fixes := Fixable(matches)
	sort.SliceStable(fixes, func(i, j int) bool {
		return fixes[i].Offset > fixes[j].Offset
	})

	applied := 0
	limit := -1 // start of the lowest applied match
	for _, m := range fixes {
		if limit >= 0 && m.Offset+m.Length > limit {
			continue
		}
		next, err := ApplyMatch(text, m.Offset, m.Length, m.Replacements[0].Value)
		if err != nil {
			continue
		}
		text = next
		limit = m.Offset
		applied++
	}
	return text, applied
}

// Excerpt returns up to radius units of context on each side of a match,
// with newlines flattened to spaces.
func Excerpt(text string, m models.Match, radius int) string {
	units := utf16.Encode([]rune(text))
	start := max(0, m.Offset-radius)
	end := min(len(units), m.Offset+m.Length+radius)
	if start >= end {
		return ""
	}
	return strings.ReplaceAll(string(utf16.Decode(units[start:end])), "\n", " ")
}

func checkRange(units []uint16, offset, length int) error {
	if offset < 0 || length < 0 || offset+length > len(units) {
		return fmt.Errorf("%w: offset %d length %d in text of %d units", ErrMatchOutOfRange, offset, length, len(units))
	}
	// A boundary must not split a surrogate pair
	for _, at := range []int{offset, offset + length} {
		if at < len(units) && utf16.IsSurrogate(rune(units[at])) && units[at] >= 0xDC00 {
			return fmt.Errorf("%w: offset %d splits a character", ErrMatchOutOfRange, at)
		}
	}
	return nil
}
