package models

// NotApplicable is the grade label reported when readability cannot be computed.
const NotApplicable = "N/A"

// Scope values for a Report.
const (
	ScopeDocument  = "document"
	ScopeSelection = "selection"
)

// TokenCounts holds the raw counts derived from a text span.
type TokenCounts struct {
	Words      int `json:"words" yaml:"words"`
	Characters int `json:"characters" yaml:"characters"` // as received, whitespace included
	Sentences  int `json:"sentences" yaml:"sentences"`
	Paragraphs int `json:"paragraphs" yaml:"paragraphs"`
	Syllables  int `json:"syllables" yaml:"syllables"`
}

// Readability is the Flesch Reading Ease result. It is only meaningful when
// Applicable is true; otherwise GradeLabel is NotApplicable.
type Readability struct {
	Applicable  bool    `json:"applicable" yaml:"applicable"`
	FleschScore float64 `json:"flesch_score" yaml:"flesch_score"`
	GradeLabel  string  `json:"grade_label" yaml:"grade_label"`
}

// Stats is the output of the metrics pipeline for one span.
type Stats struct {
	Counts              TokenCounts `json:"counts" yaml:"counts"`
	Readability         Readability `json:"readability" yaml:"readability"`
	ReadingTimeSeconds  int         `json:"reading_time_seconds" yaml:"reading_time_seconds"`
	SpeakingTimeSeconds int         `json:"speaking_time_seconds" yaml:"speaking_time_seconds"`
}

// KeywordEntry is a single keyword with its frequency and density.
type KeywordEntry struct {
	Term           string  `json:"term" yaml:"term"`
	Occurrences    int     `json:"occurrences" yaml:"occurrences"`
	DensityPercent float64 `json:"density_percent" yaml:"density_percent"`
}

// Report bundles everything computed for one input.
type Report struct {
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	Scope  string `json:"scope" yaml:"scope"` // document | selection

	Stats    Stats          `json:"stats" yaml:"stats"`
	Keywords []KeywordEntry `json:"keywords" yaml:"keywords"`

	// Language detection (optional)
	Language           string  `json:"language,omitempty" yaml:"language,omitempty"` // ISO-639-1
	LanguageConfidence float64 `json:"language_confidence,omitempty" yaml:"language_confidence,omitempty"`

	// Human-readable renderings
	Formatted *FormattedStats `json:"formatted,omitempty" yaml:"formatted,omitempty"`
}

// FormattedStats holds display strings produced by the formatter.
type FormattedStats struct {
	Words        string `json:"words" yaml:"words"`
	Characters   string `json:"characters" yaml:"characters"`
	Sentences    string `json:"sentences" yaml:"sentences"`
	Paragraphs   string `json:"paragraphs" yaml:"paragraphs"`
	ReadingLevel string `json:"reading_level" yaml:"reading_level"`
	ReadingTime  string `json:"reading_time" yaml:"reading_time"`
	SpeakingTime string `json:"speaking_time" yaml:"speaking_time"`
}
