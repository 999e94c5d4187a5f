package mapreduce

import (
	"reflect"
	"testing"

	"github.com/dtnitsch/wordcalc/models"
)

func TestMapReduce(t *testing.T) {
	docs := []string{
		"Golang makes tools. Tools matter!",
		"Writing golang daily.\nDaily writing helps.",
	}

	var partials []Partial
	for _, d := range docs {
		partials = append(partials, Map(d, nil))
	}
	got := Reduce(partials)

	if got.Documents != 2 {
		t.Errorf("Documents = %d, want 2", got.Documents)
	}
	want := models.TokenCounts{Words: 11, Characters: 75, Sentences: 4, Paragraphs: 3, Syllables: 17}
	if got.Counts != want {
		t.Errorf("Counts = %+v, want %+v", got.Counts, want)
	}
	if got.Terms.Count("golang") != 2 || got.Terms.Count("tools") != 2 {
		t.Errorf("Terms = %v", got.Terms.Map())
	}
}

func TestReduceEmpty(t *testing.T) {
	got := Reduce(nil)
	if got.Documents != 0 || got.Counts != (models.TokenCounts{}) || got.Terms.Len() != 0 {
		t.Errorf("Reduce(nil) = %+v, want zero partial", got)
	}
}

func TestTopKeywords(t *testing.T) {
	p := Reduce([]Partial{
		Map("alpha beta beta gamma", nil),
		Map("gamma gamma alpha", nil),
	})

	tests := []struct {
		n    int
		min  int
		want []string
	}{
		{n: 10, min: 1, want: []string{"gamma:3", "alpha:2", "beta:2"}},
		{n: 1, min: 1, want: []string{"gamma:3"}},
		{n: 10, min: 3, want: []string{"gamma:3"}},
		{n: 0, min: 1, want: []string{}},
	}

	for _, tt := range tests {
		got := TopKeywords(p, tt.n, tt.min)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("TopKeywords(n=%d, min=%d) = %v, want %v", tt.n, tt.min, got, tt.want)
		}
	}
}

func TestMapExclude(t *testing.T) {
	p := Map("these words these words", func(term string) bool { return term == "these" })
	if p.Terms.Count("these") != 0 || p.Terms.Count("words") != 2 {
		t.Errorf("Terms = %v, want only words", p.Terms.Map())
	}
	if p.Counts.Words != 4 {
		t.Errorf("Counts.Words = %d, want 4", p.Counts.Words)
	}
}
