package analytics

import (
	"reflect"
	"testing"

	"github.com/dtnitsch/wordcalc/models"
)

func TestComputeStatsScenarios(t *testing.T) {
	stats := ComputeStats("Hello world. This is great!")
	if stats.Counts.Words != 5 || stats.Counts.Sentences != 2 || stats.Counts.Characters != 27 {
		t.Errorf("ComputeStats() counts = %+v, want words=5 sentences=2 characters=27", stats.Counts)
	}

	empty := ComputeStats("")
	if empty.Counts != (models.TokenCounts{}) {
		t.Errorf("ComputeStats(\"\") counts = %+v, want zeros", empty.Counts)
	}
	if empty.Readability.GradeLabel != models.NotApplicable {
		t.Errorf("ComputeStats(\"\") grade = %q, want N/A", empty.Readability.GradeLabel)
	}
}

func TestExtractKeywordsScenario(t *testing.T) {
	got := ExtractKeywords("test test test demo demo", 5, 2)
	want := []models.KeywordEntry{
		{Term: "test", Occurrences: 3, DensityPercent: 60.0},
		{Term: "demo", Occurrences: 2, DensityPercent: 40.0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractKeywords() = %+v, want %+v", got, want)
	}
}

func TestAnalyzeSelection(t *testing.T) {
	a := New(Options{Locale: "en-US"}, nil, nil)

	report := a.Analyze(models.StatsRequest{
		Source:    "inline",
		Text:      "Ignore this part. Count these words here.",
		Selection: models.Selection{Start: 18, End: 41},
	})

	if report.Scope != models.ScopeSelection {
		t.Errorf("Scope = %q, want %q", report.Scope, models.ScopeSelection)
	}
	if report.Stats.Counts.Words != 4 {
		t.Errorf("Words = %d, want 4", report.Stats.Counts.Words)
	}
	if report.Formatted == nil || report.Formatted.Words != "4" {
		t.Errorf("Formatted = %+v, want Words=4", report.Formatted)
	}
	for _, k := range report.Keywords {
		if k.Term == "ignore" {
			t.Errorf("keywords include text outside the selection: %+v", report.Keywords)
		}
	}
	if report.Language != "" {
		t.Errorf("Language = %q, want empty without a detector", report.Language)
	}
}

func TestAnalyzeStopwords(t *testing.T) {
	text := "there there there network network"

	plain := New(Options{}, nil, nil).Analyze(models.StatsRequest{Text: text})
	if len(plain.Keywords) != 2 || plain.Keywords[0].Term != "there" {
		t.Fatalf("keywords without exclusion = %+v", plain.Keywords)
	}

	filtered := New(Options{}, nil, nil).Analyze(models.StatsRequest{Text: text, ExcludeStopwords: true})
	want := []models.KeywordEntry{{Term: "network", Occurrences: 2, DensityPercent: 40.0}}
	if !reflect.DeepEqual(filtered.Keywords, want) {
		t.Errorf("keywords with exclusion = %+v, want %+v", filtered.Keywords, want)
	}
}

func TestAnalyzeMinOccurrencesDefault(t *testing.T) {
	a := New(Options{MinOccurrences: 2}, nil, nil)
	text := "alpha alpha beta"

	if got := a.Analyze(models.StatsRequest{Text: text}).Keywords; len(got) != 1 {
		t.Errorf("default min 2 keywords = %+v, want only alpha", got)
	}
	if got := a.Analyze(models.StatsRequest{Text: text, MinOccurrences: 1}).Keywords; len(got) != 2 {
		t.Errorf("request min 1 keywords = %+v, want alpha and beta", got)
	}
}

func TestAggregate(t *testing.T) {
	a := New(Options{}, nil, nil)
	report := a.Aggregate("2 inputs", []string{"alpha beta.", "beta gamma!"}, models.StatsRequest{})

	if report.Stats.Counts.Words != 4 || report.Stats.Counts.Sentences != 2 {
		t.Errorf("Counts = %+v, want words=4 sentences=2", report.Stats.Counts)
	}
	if len(report.Keywords) == 0 || report.Keywords[0].Term != "beta" || report.Keywords[0].DensityPercent != 50.0 {
		t.Errorf("Keywords = %+v, want beta first at 50%%", report.Keywords)
	}
}

func TestIsStopword(t *testing.T) {
	tests := map[string]bool{"the": true, "THERE": true, "however": true, "network": false, "": false}
	for word, want := range tests {
		if got := IsStopword(word); got != want {
			t.Errorf("IsStopword(%q) = %v, want %v", word, got, want)
		}
	}
}
