package models

// DefaultGrammarLanguage is the language sent to the grammar service.
const DefaultGrammarLanguage = "en-US"

// CheckRequest is sent to the grammar service.
type CheckRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// CheckResponse is the grammar service reply.
type CheckResponse struct {
	Matches []Match `json:"matches" yaml:"matches"`
}

// Match is one issue reported by the grammar service. Offset and Length
// are in UTF-16 code units, as the service reports them.
type Match struct {
	Offset       int           `json:"offset" yaml:"offset"`
	Length       int           `json:"length" yaml:"length"`
	Message      string        `json:"message" yaml:"message"`
	Replacements []Replacement `json:"replacements" yaml:"replacements"`
	Rule         Rule          `json:"rule" yaml:"rule"`
}

// Replacement is a suggested fix.
type Replacement struct {
	Value string `json:"value" yaml:"value"`
}

// Rule identifies the check that produced a match.
type Rule struct {
	ID        string `json:"id" yaml:"id"`
	IssueType string `json:"issueType" yaml:"issue_type"`
}

// BestReplacement returns the first suggestion, if any.
func (m Match) BestReplacement() (string, bool) {
	if len(m.Replacements) == 0 {
		return "", false
	}
	return m.Replacements[0].Value, true
}
