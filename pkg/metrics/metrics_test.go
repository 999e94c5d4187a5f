package metrics

import (
	"math"
	"testing"

	"github.com/dtnitsch/wordcalc/models"
)

func TestTimingEstimates(t *testing.T) {
	tests := []struct {
		words        int
		wantReading  int
		wantSpeaking int
	}{
		{words: 0, wantReading: 0, wantSpeaking: 0},
		{words: 1, wantReading: 1, wantSpeaking: 1},
		{words: 5, wantReading: 2, wantSpeaking: 2},
		{words: 10, wantReading: 3, wantSpeaking: 4},
		{words: 100, wantReading: 30, wantSpeaking: 40},
		{words: 250, wantReading: 75, wantSpeaking: 100},
		{words: 1001, wantReading: 301, wantSpeaking: 401},
	}

	for _, tt := range tests {
		if got := ReadingTimeSeconds(tt.words); got != tt.wantReading {
			t.Errorf("ReadingTimeSeconds(%d) = %d, want %d", tt.words, got, tt.wantReading)
		}
		if got := SpeakingTimeSeconds(tt.words); got != tt.wantSpeaking {
			t.Errorf("SpeakingTimeSeconds(%d) = %d, want %d", tt.words, got, tt.wantSpeaking)
		}
	}
}

func TestFleschScore(t *testing.T) {
	score, ok := FleschScore(100, 5, 150)
	if !ok {
		t.Fatal("FleschScore() ok = false, want true")
	}
	if math.Abs(score-59.635) > 1e-9 {
		t.Errorf("FleschScore() = %v, want 59.635", score)
	}
	if got := GradeLabel(score); got != "10–12th Grade" {
		t.Errorf("GradeLabel(%v) = %q, want 10–12th Grade", score, got)
	}

	for _, c := range [][3]int{{0, 5, 10}, {10, 0, 10}, {0, 0, 0}} {
		if _, ok := FleschScore(c[0], c[1], c[2]); ok {
			t.Errorf("FleschScore(%v) ok = true, want false", c)
		}
	}
}

func TestGradeLabel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{120, "5th Grade"},
		{90, "5th Grade"},
		{89.99, "6th Grade"},
		{80, "6th Grade"},
		{70, "7th Grade"},
		{69.5, "8–9th Grade"},
		{60, "8–9th Grade"},
		{59.635, "10–12th Grade"},
		{50, "10–12th Grade"},
		{49.9, "College"},
		{30, "College"},
		{29.99, "College Graduate"},
		{-40, "College Graduate"},
	}

	for _, tt := range tests {
		if got := GradeLabel(tt.score); got != tt.want {
			t.Errorf("GradeLabel(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestCompute(t *testing.T) {
	stats := Compute(models.TokenCounts{Words: 5, Characters: 27, Sentences: 2, Paragraphs: 1, Syllables: 6})

	if !stats.Readability.Applicable {
		t.Fatal("Readability.Applicable = false, want true")
	}
	// 206.835 - 1.015*2.5 - 84.6*1.2
	if math.Abs(stats.Readability.FleschScore-102.7775) > 1e-9 {
		t.Errorf("FleschScore = %v, want 102.7775", stats.Readability.FleschScore)
	}
	if stats.Readability.GradeLabel != "5th Grade" {
		t.Errorf("GradeLabel = %q, want 5th Grade", stats.Readability.GradeLabel)
	}
	if stats.ReadingTimeSeconds != 2 || stats.SpeakingTimeSeconds != 2 {
		t.Errorf("times = (%d, %d), want (2, 2)", stats.ReadingTimeSeconds, stats.SpeakingTimeSeconds)
	}

	empty := Compute(models.TokenCounts{})
	if empty.Readability.Applicable || empty.Readability.GradeLabel != models.NotApplicable {
		t.Errorf("empty Readability = %+v, want not applicable", empty.Readability)
	}
	if empty.ReadingTimeSeconds != 0 || empty.SpeakingTimeSeconds != 0 {
		t.Errorf("empty times = (%d, %d), want zeros", empty.ReadingTimeSeconds, empty.SpeakingTimeSeconds)
	}
}
