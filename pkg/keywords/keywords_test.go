package keywords

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/dtnitsch/wordcalc/models"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		totalWords     int
		minOccurrences int
		want           []models.KeywordEntry
	}{
		{
			name:           "min occurrences filter",
			text:           "test test test demo demo",
			totalWords:     5,
			minOccurrences: 2,
			want: []models.KeywordEntry{
				{Term: "test", Occurrences: 3, DensityPercent: 60.0},
				{Term: "demo", Occurrences: 2, DensityPercent: 40.0},
			},
		},
		{
			name:           "short and long tokens are dropped",
			text:           "the cat sat on thisisaverylongtokenindeed word",
			totalWords:     6,
			minOccurrences: 1,
			want: []models.KeywordEntry{
				{Term: "word", Occurrences: 1, DensityPercent: 16.7},
			},
		},
		{
			name:           "punctuation and case are normalized",
			text:           "Golang, golang! GOLANG? (rust)",
			totalWords:     4,
			minOccurrences: 1,
			want: []models.KeywordEntry{
				{Term: "golang", Occurrences: 3, DensityPercent: 75.0},
				{Term: "rust", Occurrences: 1, DensityPercent: 25.0},
			},
		},
		{
			name:           "ties keep first-seen order",
			text:           "zeta alpha mango alpha zeta mango",
			totalWords:     6,
			minOccurrences: 1,
			want: []models.KeywordEntry{
				{Term: "zeta", Occurrences: 2, DensityPercent: 33.3},
				{Term: "alpha", Occurrences: 2, DensityPercent: 33.3},
				{Term: "mango", Occurrences: 2, DensityPercent: 33.3},
			},
		},
		{
			name:           "zero min occurrences behaves like one",
			text:           "word",
			totalWords:     1,
			minOccurrences: 0,
			want: []models.KeywordEntry{
				{Term: "word", Occurrences: 1, DensityPercent: 100.0},
			},
		},
		{
			name:       "blank text",
			text:       "   ",
			totalWords: 3,
			want:       []models.KeywordEntry{},
		},
		{
			name:       "zero total words",
			text:       "something here",
			totalWords: 0,
			want:       []models.KeywordEntry{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text, tt.totalWords, tt.minOccurrences)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestExtractLimitsToTen(t *testing.T) {
	var words []string
	for i := 0; i < 15; i++ {
		term := fmt.Sprintf("term%c", 'a'+i)
		for j := 0; j <= i; j++ {
			words = append(words, term)
		}
	}
	text := strings.Join(words, " ")

	got := Extract(text, len(words), 1)
	if len(got) != MaxKeywords {
		t.Fatalf("len(Extract()) = %d, want %d", len(got), MaxKeywords)
	}
	if got[0].Term != "termo" || got[0].Occurrences != 15 {
		t.Errorf("first entry = %+v, want termo x15", got[0])
	}
	for i := 1; i < len(got); i++ {
		if got[i].Occurrences > got[i-1].Occurrences {
			t.Errorf("entries not sorted at %d: %+v after %+v", i, got[i], got[i-1])
		}
	}
}

func TestDensityNeverExceedsHundred(t *testing.T) {
	// Hyphenated words count once as words but split into several terms
	text := "word-word-word"
	got := Extract(text, 1, 1)
	if len(got) != 1 {
		t.Fatalf("len(Extract()) = %d, want 1", len(got))
	}
	if got[0].Occurrences != 3 {
		t.Errorf("Occurrences = %d, want 3", got[0].Occurrences)
	}
	if got[0].DensityPercent != 100.0 {
		t.Errorf("DensityPercent = %v, want 100", got[0].DensityPercent)
	}
}

func TestExtractWithOptionsExclude(t *testing.T) {
	exclude := func(term string) bool { return term == "have" }
	got := ExtractWithOptions("have have have data", 4, Options{Exclude: exclude})

	want := []models.KeywordEntry{{Term: "data", Occurrences: 1, DensityPercent: 25.0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractWithOptions() = %+v, want %+v", got, want)
	}
}

func TestTermTableMerge(t *testing.T) {
	a := Frequencies("alpha beta beta", nil)
	b := Frequencies("gamma beta alpha delta", nil)

	a.Merge(b)

	wantOrder := []string{"alpha", "beta", "gamma", "delta"}
	if got := a.Terms(); !reflect.DeepEqual(got, wantOrder) {
		t.Errorf("Terms() = %v, want %v", got, wantOrder)
	}
	if a.Count("beta") != 3 || a.Count("alpha") != 2 || a.Count("delta") != 1 {
		t.Errorf("counts = %v", a.Map())
	}
}
