package models

// Error types reported in ErrorInfo.
const (
	ErrorTypeInvalidInput       = "invalid_input"
	ErrorTypeInvalidPattern     = "invalid_pattern"
	ErrorTypeServiceUnavailable = "service_unavailable"
	ErrorTypeNotFound           = "not_found"
	ErrorTypeInternal           = "internal_error"
)

// ErrorInfo provides structured error information.
type ErrorInfo struct {
	Type             string   `json:"error_type" yaml:"error_type"`
	Message          string   `json:"message" yaml:"message"`
	SuggestedActions []string `json:"suggested_actions,omitempty" yaml:"suggested_actions,omitempty"`
}

// ErrorResponse wraps an ErrorInfo for API output.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error" yaml:"error"`
}

// NewInvalidPatternError describes a find pattern that does not compile.
func NewInvalidPatternError(msg string) *ErrorInfo {
	return &ErrorInfo{
		Type:    ErrorTypeInvalidPattern,
		Message: msg,
		SuggestedActions: []string{
			"Check the regular expression syntax",
			"Pass literal=true to match the text as-is",
		},
	}
}

// NewServiceUnavailableError describes a grammar service outage. Stats,
// keywords and transforms keep working.
func NewServiceUnavailableError(msg string) *ErrorInfo {
	return &ErrorInfo{
		Type:    ErrorTypeServiceUnavailable,
		Message: msg,
		SuggestedActions: []string{
			"Retry later",
			"Configure grammar.endpoint to point at a reachable LanguageTool server",
		},
	}
}

// TransformResponse is the output of a transform or replace call.
type TransformResponse struct {
	Text string `json:"text" yaml:"text"`
}

// KeywordsResponse is the output of a keywords call.
type KeywordsResponse struct {
	TotalWords int            `json:"total_words" yaml:"total_words"`
	Keywords   []KeywordEntry `json:"keywords" yaml:"keywords"`
}

// NewNotFoundError describes a missing stored report.
func NewNotFoundError(msg string) *ErrorInfo {
	return &ErrorInfo{
		Type:             ErrorTypeNotFound,
		Message:          msg,
		SuggestedActions: []string{"List stored reports with: wordcalc history list"},
	}
}

// ApplyResponse is the output of applying grammar fixes.
type ApplyResponse struct {
	Text    string `json:"text" yaml:"text"`
	Applied int    `json:"applied" yaml:"applied"`
}
